package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestTickLogsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(0, 0)
	p := NewProfiler(
		WithLogger(log.New(&buf, "", 0)),
		WithInterval(time.Second),
		WithReporter(func() string { return "Nodes: 5" }),
		withClock(func() time.Time { return clock }),
	)

	for range 49 {
		clock = clock.Add(20 * time.Millisecond)
		if p.Tick() {
			t.Fatal("Tick: logged before the interval elapsed")
		}
	}
	clock = clock.Add(20 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("Tick: want a log line once the interval elapsed")
	}
	out := buf.String()
	if !strings.Contains(out, "[Profiler] FPS: 50.00") || !strings.Contains(out, "| Nodes: 5") {
		t.Fatalf("Tick: unexpected line %q", out)
	}
	if p.Tick() {
		t.Fatal("Tick: counter should restart after logging")
	}
}

func TestTickWithoutReporter(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(0, 0)
	p := NewProfiler(WithLogger(log.New(&buf, "", 0)), withClock(func() time.Time { return clock }))
	clock = clock.Add(2 * time.Second)
	p.Tick()
	if strings.Contains(buf.String(), "Nodes") || !strings.HasSuffix(strings.TrimSpace(buf.String()), "MB") {
		t.Fatalf("Tick: unexpected line %q", buf.String())
	}
}
