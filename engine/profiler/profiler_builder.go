package profiler

import (
	"log"
	"time"
)

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often statistics are logged. Non-positive values are ignored.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithLogger sets the logger statistics are written to. A nil logger is ignored.
//
// Parameters:
//   - logger: the destination logger
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithReporter appends the string returned by report to every log line.
//
// Parameters:
//   - report: function returning a one-line summary, e.g. scene statistics
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithReporter(report func() string) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.reporter = report
	}
}

// withClock replaces the time source.
func withClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.now = now
	}
}
