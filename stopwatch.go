package arbitime

import (
	"fmt"
	"time"
)

// Stopwatch is the manual-stop form of the timing primitive, with
// optional naming. It starts running when created.
type Stopwatch struct {
	start    time.Time
	name     string
	duration time.Duration
}

// NewStopwatch creates a new stopwatch and starts it.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// NewNamedStopwatch creates a new stopwatch with the given name and starts it.
func NewNamedStopwatch(name string) *Stopwatch {
	return &Stopwatch{
		name:  name,
		start: time.Now(),
	}
}

// Stop stops the stopwatch and returns the elapsed duration.
func (s *Stopwatch) Stop() time.Duration {
	s.duration = time.Since(s.start)
	return s.duration
}

// Duration returns the recorded duration (only valid after Stop()).
func (s *Stopwatch) Duration() time.Duration {
	return s.duration
}

// Name returns the stopwatch name (empty string if unnamed).
func (s *Stopwatch) Name() string {
	return s.name
}

// String returns a formatted string representation of the stopwatch.
func (s *Stopwatch) String() string {
	if s.name != "" {
		return fmt.Sprintf("%s: %s", s.name, FormatDuration(s.duration))
	}
	return FormatDuration(s.duration)
}
