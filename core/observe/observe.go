// core/observe/observe.go

// Package observe decouples progress reporting from the assignment stages.
// Callers inject an Observer; the stages never touch a global logger, so
// they stay silent and testable by default.
package observe

import (
	"fmt"
	"io"
	"time"
)

// Observer receives progress lines and per-stage timings.
type Observer interface {
	Logf(format string, args ...any)
	Timing(stage string, d time.Duration)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Logf(string, ...any) {}

func (Nop) Timing(string, time.Duration) {}

// Writer logs to W, one line per event.
type Writer struct{ W io.Writer }

func (o Writer) Logf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.W, format+"\n", args...)
}

func (o Writer) Timing(stage string, d time.Duration) {
	_, _ = fmt.Fprintf(o.W, "time %s (s): %.3f\n", stage, d.Seconds())
}
