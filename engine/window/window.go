// Package window hosts the globe on a GLFW window. It turns platform events into
// the frame, resize, pointer, scroll and key callbacks a scene host consumes.
package window

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is the hosting render surface: a drawable area, a message loop and
// input callbacks.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetPointerDragCallback sets the callback for pointer movement while the
	// primary button is held.
	//
	// Parameters:
	//   - callback: function receiving the movement since the previous event in pixels
	SetPointerDragCallback(callback func(dx, dy float32))

	// SetCloseCallback sets the function called once when the window starts closing.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetCloseCallback(callback func())

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor for creating a WebGPU surface
	// on this window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still open.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// hostWindow is the implementation of the Window interface.
type hostWindow struct {
	title     string
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int
	width     int
	height    int

	// internalWindow holds the platform window (*glfwWindow).
	internalWindow any

	pointer pointerTracker

	onUpdate  func()
	onResize  func(width, height int)
	onScroll  func(delta float32)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
	onDrag    func(dx, dy float32)
	onClose   func()
	closed    bool
}

var _ Window = &hostWindow{}

// NewWindow creates and opens a Window with the specified options.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if the platform window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newHostWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func newHostWindow(options ...WindowBuilderOption) *hostWindow {
	w := &hostWindow{
		title:     "Globe",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *hostWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *hostWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *hostWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *hostWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *hostWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *hostWindow) SetPointerDragCallback(callback func(dx, dy float32)) {
	w.onDrag = callback
}

func (w *hostWindow) SetCloseCallback(callback func()) {
	w.onClose = callback
}

func (w *hostWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *hostWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *hostWindow) Close() error {
	w.notifyClose()
	return platformCloseWindow(w)
}

func (w *hostWindow) ProcessMessages() {
	for w.IsRunning() {
		if ok := platformProcessMessages(w); !ok {
			break
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
	w.notifyClose()
}

func (w *hostWindow) Width() int {
	return w.width
}

func (w *hostWindow) Height() int {
	return w.height
}

// notifyClose runs the close callback the first time the window closes.
func (w *hostWindow) notifyClose() {
	if w.closed {
		return
	}
	w.closed = true
	if w.onClose != nil {
		w.onClose()
	}
}

// resize records a framebuffer size and forwards it. Zero sizes (minimized) are dropped.
func (w *hostWindow) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// pointerMoved forwards a cursor movement as a drag while the primary button is held.
func (w *hostWindow) pointerMoved(x, y float64) {
	dx, dy, dragging := w.pointer.move(x, y)
	if dragging && w.onDrag != nil && (dx != 0 || dy != 0) {
		w.onDrag(dx, dy)
	}
}

// pointerTracker turns absolute cursor positions into drag deltas.
type pointerTracker struct {
	pressed    bool
	lastX      float64
	lastY      float64
	hasLastPos bool
}

func (p *pointerTracker) press(x, y float64) {
	p.pressed = true
	p.lastX, p.lastY, p.hasLastPos = x, y, true
}

func (p *pointerTracker) release() {
	p.pressed = false
}

// move records the position and returns the delta from the previous one and
// whether the button is held.
func (p *pointerTracker) move(x, y float64) (dx, dy float32, dragging bool) {
	if p.hasLastPos {
		dx, dy = float32(x-p.lastX), float32(y-p.lastY)
	}
	p.lastX, p.lastY, p.hasLastPos = x, y, true
	return dx, dy, p.pressed
}
