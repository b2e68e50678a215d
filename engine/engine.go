package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-globe/engine/profiler"
	"github.com/Carmen-Shannon/oxy-globe/engine/window"
)

// ErrNoWindow is returned by Run when the engine has no hosting window.
var ErrNoWindow = errors.New("engine: no window configured")

// Host is the scene owner the engine drives. DidLoad runs once before the first
// tick and Shutdown once after the last.
type Host interface {
	DidLoad() error
	OnFrameTick(deltaTime float32)
	OnResize(width, height int)
	Shutdown()
}

// PointerHandler is implemented by hosts that react to pointer drags.
type PointerHandler interface {
	OnPointerDrag(dx, dy float32)
}

// ScrollHandler is implemented by hosts that react to the scroll wheel.
type ScrollHandler interface {
	OnScroll(delta float32)
}

// KeyHandler is implemented by hosts that react to key presses.
type KeyHandler interface {
	OnKeyDown(keyCode uint32)
}

// engine implements the Engine interface.
// The window message loop owns the calling goroutine; ticks run on their own goroutine.
type engine struct {
	host   Host
	window window.Window
	logger *log.Logger

	rateMu          *sync.Mutex
	tickRateChannel chan time.Duration
	engineTickRate  time.Duration
	started         bool
	ticks           atomic.Uint64

	running     atomic.Bool
	wg          sync.WaitGroup
	quitChannel chan struct{}
	quitOnce    sync.Once

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool
}

// Engine runs a Host on a hosting window: it loads the host, forwards window
// events, drives the frame clock and shuts the host down when the window closes.
type Engine interface {
	// Window returns the hosting window.
	//
	// Returns:
	//   - window.Window: the window, nil if none was configured
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the frame clock rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// Ticks returns the number of frame ticks delivered to the host.
	//
	// Returns:
	//   - uint64: the tick count
	Ticks() uint64

	// Run loads the host and blocks until the window closes, then stops the
	// frame clock and shuts the host down.
	//
	// Returns:
	//   - error: ErrNoWindow without a window, or the host's DidLoad error
	Run() error

	// Quit stops the frame clock. Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates an Engine driving host. Panics if host is nil.
//
// Parameters:
//   - host: the scene owner to drive
//   - options: functional options for engine configuration (window, profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(host Host, options ...EngineBuilderOption) Engine {
	if host == nil {
		panic("engine: NewEngine requires a non-nil Host")
	}
	e := &engine{
		host:            host,
		logger:          log.Default(),
		rateMu:          &sync.Mutex{},
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		engineTickRate:  time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Ticks() uint64 {
	return e.ticks.Load()
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	if err := e.host.DidLoad(); err != nil {
		e.host.Shutdown()
		return fmt.Errorf("load host: %w", err)
	}
	e.bindWindow()
	e.host.OnResize(e.window.Width(), e.window.Height())

	e.rateMu.Lock()
	e.started = true
	rate := e.engineTickRate
	e.rateMu.Unlock()
	e.logger.Printf("[Engine] Host loaded, ticking at %.0f Hz", float64(time.Second)/float64(rate))

	e.running.Store(true)
	e.wg.Add(1)
	go e.handleEngine()

	e.window.ProcessMessages()

	e.signalQuit()
	e.wg.Wait()
	e.host.Shutdown()
	e.logger.Printf("[Engine] Stopped after %d ticks", e.Ticks())
	return nil
}

// bindWindow forwards window events to the host and the handler interfaces it implements.
func (e *engine) bindWindow() {
	e.window.SetResizeCallback(e.host.OnResize)
	if h, ok := e.host.(PointerHandler); ok {
		e.window.SetPointerDragCallback(h.OnPointerDrag)
	}
	if h, ok := e.host.(ScrollHandler); ok {
		e.window.SetScrollCallback(h.OnScroll)
	}
	if h, ok := e.host.(KeyHandler); ok {
		e.window.SetKeyDownCallback(h.OnKeyDown)
	}
	e.window.SetCloseCallback(e.signalQuit)
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate frame clock. Fires the host tick at the
// configured rate and listens for rate changes via tickRateChannel. Exits when
// the quit channel is closed; a panicking host stops the clock instead of the process.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("[Engine] Tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.tickRate())
	defer ticker.Stop()
	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.host.OnFrameTick(dt)
			e.ticks.Add(1)
			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.rateMu.Lock()
			e.engineTickRate = newRate
			e.rateMu.Unlock()
		}
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the frame clock rate. Before Run starts the clock the field
// is updated directly; afterwards the change always goes through tickRateChannel
// and is applied by the clock goroutine, or dropped once it has exited.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)
	e.rateMu.Lock()
	defer e.rateMu.Unlock()
	if !e.started {
		e.engineTickRate = newRate
		return
	}
	// Replace a pending update rather than block. Senders are serialized by rateMu.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// tickRate returns the current ticker period.
func (e *engine) tickRate() time.Duration {
	e.rateMu.Lock()
	defer e.rateMu.Unlock()
	return e.engineTickRate
}

// tickInterval converts a rate to a ticker period, defaulting to 60 Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
