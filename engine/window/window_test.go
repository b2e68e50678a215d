package window

import "testing"

func TestNewHostWindowDefaults(t *testing.T) {
	w := newHostWindow(WithTitle("Earth"), WithWidth(800), WithHeight(600))
	if w.title != "Earth" || w.Width() != 800 || w.Height() != 600 {
		t.Fatalf("newHostWindow: got %q %dx%d", w.title, w.Width(), w.Height())
	}
	if w.IsRunning() {
		t.Fatal("IsRunning: a window without a platform window is not running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Fatal("SurfaceDescriptor: want nil without a platform window")
	}
}

func TestPointerDrag(t *testing.T) {
	w := newHostWindow()
	var got [][2]float32
	w.SetPointerDragCallback(func(dx, dy float32) {
		got = append(got, [2]float32{dx, dy})
	})

	w.pointerMoved(10, 10)
	w.pointer.press(10, 10)
	w.pointerMoved(15, 8)
	w.pointerMoved(15, 8)
	w.pointerMoved(20, 12)
	w.pointer.release()
	w.pointerMoved(40, 40)

	want := [][2]float32{{5, -2}, {5, 4}}
	if len(got) != len(want) {
		t.Fatalf("drag events: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drag %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResizeDropsEmptySizes(t *testing.T) {
	w := newHostWindow()
	calls := 0
	w.SetResizeCallback(func(width, height int) {
		calls++
	})
	w.resize(0, 0)
	w.resize(1024, 512)
	if calls != 1 || w.Width() != 1024 || w.Height() != 512 {
		t.Fatalf("resize: calls=%d size=%dx%d", calls, w.Width(), w.Height())
	}
}

func TestCloseCallbackRunsOnce(t *testing.T) {
	w := newHostWindow()
	calls := 0
	w.SetCloseCallback(func() { calls++ })
	w.ProcessMessages()
	if err := w.Close(); err == nil {
		t.Fatal("Close: want error for an uninitialized window")
	}
	if calls != 1 {
		t.Fatalf("close callback: got %d calls, want 1", calls)
	}
}
