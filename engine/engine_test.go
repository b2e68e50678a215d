package engine

import (
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

var quiet = log.New(io.Discard, "", 0)

// fakeWindow replays a resize, a drag, a scroll and a key press, then blocks
// in ProcessMessages until closed.
type fakeWindow struct {
	closeCh   chan struct{}
	closeOnce sync.Once

	onResize  func(width, height int)
	onScroll  func(delta float32)
	onKeyDown func(keyCode uint32)
	onDrag    func(dx, dy float32)
	onClose   func()
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{closeCh: make(chan struct{})}
}

func (w *fakeWindow) SetUpdateCallback(func()) {}
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(delta float32)) { w.onScroll = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32)) { w.onKeyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(func(keyCode uint32)) {}
func (w *fakeWindow) SetPointerDragCallback(cb func(dx, dy float32)) { w.onDrag = cb }
func (w *fakeWindow) SetCloseCallback(cb func()) { w.onClose = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) Width() int { return 800 }
func (w *fakeWindow) Height() int { return 400 }

func (w *fakeWindow) IsRunning() bool {
	select {
	case <-w.closeCh:
		return false
	default:
		return true
	}
}

func (w *fakeWindow) Close() error {
	w.closeOnce.Do(func() { close(w.closeCh) })
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	w.onResize(1024, 512)
	if w.onDrag != nil {
		w.onDrag(3, 4)
	}
	if w.onScroll != nil {
		w.onScroll(1)
	}
	if w.onKeyDown != nil {
		w.onKeyDown(32)
	}
	<-w.closeCh
	if w.onClose != nil {
		w.onClose()
	}
}

type fakeHost struct {
	mu       sync.Mutex
	loadErr  error
	loads    int
	ticks    int
	sizes    [][2]int
	drags    int
	scrolls  int
	keys     []uint32
	shutdown int
	ticked   chan struct{}
	once     sync.Once
}

func newFakeHost() *fakeHost {
	return &fakeHost{ticked: make(chan struct{})}
}

func (h *fakeHost) DidLoad() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loads++
	return h.loadErr
}

func (h *fakeHost) OnFrameTick(dt float32) {
	h.mu.Lock()
	h.ticks++
	n := h.ticks
	h.mu.Unlock()
	if n >= 3 {
		h.once.Do(func() { close(h.ticked) })
	}
}

func (h *fakeHost) OnResize(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sizes = append(h.sizes, [2]int{width, height})
}

func (h *fakeHost) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shutdown++
}

func (h *fakeHost) OnPointerDrag(dx, dy float32) { h.drags++ }
func (h *fakeHost) OnScroll(delta float32) { h.scrolls++ }
func (h *fakeHost) OnKeyDown(keyCode uint32) { h.keys = append(h.keys, keyCode) }

func TestRunDrivesHost(t *testing.T) {
	host := newFakeHost()
	win := newFakeWindow()
	e := NewEngine(host, WithWindow(win), WithTickRate(500), WithLogger(quiet))

	go func() {
		select {
		case <-host.ticked:
		case <-time.After(2 * time.Second):
		}
		win.Close()
	}()
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	host.mu.Lock()
	defer host.mu.Unlock()
	if host.loads != 1 || host.shutdown != 1 {
		t.Fatalf("Run: loads=%d shutdowns=%d, want 1 each", host.loads, host.shutdown)
	}
	if host.ticks < 3 || e.Ticks() != uint64(host.ticks) {
		t.Fatalf("Run: host ticks %d, engine ticks %d", host.ticks, e.Ticks())
	}
	if len(host.sizes) != 2 || host.sizes[0] != [2]int{800, 400} || host.sizes[1] != [2]int{1024, 512} {
		t.Fatalf("Run: resizes %v", host.sizes)
	}
	if host.drags != 1 || host.scrolls != 1 || len(host.keys) != 1 || host.keys[0] != 32 {
		t.Fatalf("Run: input drags=%d scrolls=%d keys=%v", host.drags, host.scrolls, host.keys)
	}
	if e.Window() != win {
		t.Fatal("Window: want the configured window")
	}
}

func TestRunWithoutInputHandlers(t *testing.T) {
	host := newFakeHost()
	win := newFakeWindow()
	var h Host = struct{ Host }{host}
	e := NewEngine(h, WithWindow(win), WithTickRate(500), WithLogger(quiet))
	go func() {
		<-host.ticked
		win.Close()
	}()
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if host.drags != 0 || host.scrolls != 0 || len(host.keys) != 0 {
		t.Fatal("Run: input must not reach a host without handlers")
	}
}

func TestRunLoadError(t *testing.T) {
	host := newFakeHost()
	host.loadErr = errors.New("bad radius")
	e := NewEngine(host, WithWindow(newFakeWindow()), WithLogger(quiet))
	if err := e.Run(); !errors.Is(err, host.loadErr) {
		t.Fatalf("Run: got %v, want the DidLoad error", err)
	}
	if host.ticks != 0 || host.shutdown != 1 {
		t.Fatalf("Run: ticks=%d shutdowns=%d", host.ticks, host.shutdown)
	}
}

func TestRunWithoutWindow(t *testing.T) {
	if err := NewEngine(newFakeHost(), WithLogger(quiet)).Run(); !errors.Is(err, ErrNoWindow) {
		t.Fatalf("Run: got %v, want ErrNoWindow", err)
	}
}

func TestNewEnginePanicsOnNilHost(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewEngine(nil): want panic")
		}
	}()
	NewEngine(nil)
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(0); got != time.Second/60 {
		t.Fatalf("tickInterval(0): got %v", got)
	}
	if got := tickInterval(120); got != time.Second/120 {
		t.Fatalf("tickInterval(120): got %v", got)
	}
	e := NewEngine(newFakeHost()).(*engine)
	e.SetTickRate(30)
	if got := e.tickRate(); got != time.Second/30 {
		t.Fatalf("SetTickRate: got %v", got)
	}
}

func TestSetTickRateAcrossRun(t *testing.T) {
	host := newFakeHost()
	win := newFakeWindow()
	e := NewEngine(host, WithWindow(win), WithTickRate(500), WithLogger(quiet)).(*engine)

	applied := make(chan bool, 1)
	go func() {
		<-host.ticked
		for i := range 50 {
			e.SetTickRate(float64(200 + i))
		}
		want := tickInterval(249)
		deadline := time.Now().Add(2 * time.Second)
		for e.tickRate() != want && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		applied <- e.tickRate() == want
		win.Close()
	}()
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !<-applied {
		t.Fatalf("SetTickRate: running clock left rate at %v", e.tickRate())
	}

	// The clock has exited; later changes queue on the channel without touching the rate.
	e.SetTickRate(10)
	e.SetTickRate(20)
	if got := e.tickRate(); got != tickInterval(249) {
		t.Fatalf("SetTickRate after Run: rate changed to %v", got)
	}
}
