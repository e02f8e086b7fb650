// Package stopwatch measures elapsed wall-clock time for one benchmark phase.
//
// A Stopwatch is single-shot per Start/Stop pair and may be restarted after a
// read. Readings come from time.Now, whose monotonic component makes Sub
// immune to wall-clock steps.
package stopwatch

import (
	"errors"
	"time"

	"ordercompare/debug"
)

// ErrRunning is returned when the elapsed time is read before Stop.
var ErrRunning = errors.New("stopwatch: not stopped")

// Stopwatch records a start and an end instant. The zero value is idle and
// reports zero elapsed time.
type Stopwatch struct {
	start, end time.Time
	running    bool
}

// Start records the start instant and marks the watch running. Any previous
// reading is discarded.
//
//go:nosplit
//go:inline
func (s *Stopwatch) Start() {
	s.running = true
	s.start = time.Now()
}

// Stop records the end instant and marks the watch idle.
//
//go:nosplit
//go:inline
func (s *Stopwatch) Stop() {
	s.end = time.Now()
	s.running = false
}

// Running reports whether Start was called without a matching Stop.
func (s *Stopwatch) Running() bool { return s.running }

// Elapsed returns end-start. While running it returns 0 and ErrRunning.
func (s *Stopwatch) Elapsed() (time.Duration, error) {
	if s.running {
		return 0, ErrRunning
	}
	return s.end.Sub(s.start), nil
}

// Seconds returns the elapsed time in fractional seconds. Misuse is logged
// and degrades to 0 so a single bad reading can't abort a run.
func (s *Stopwatch) Seconds() float64 {
	d, err := s.Elapsed()
	if err != nil {
		debug.DropError("STOPWATCH", err)
		return 0
	}
	return d.Seconds()
}
