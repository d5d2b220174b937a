// Package arbitime measures the wall-clock execution time of arbitrary
// computations and reports the measurement in three escalating forms:
// a raw duration (Measure), a human-readable message (Format and
// friends), and an automatically written diagnostic line (Log and
// friends).
//
// Every operation evaluates the supplied computation exactly once,
// synchronously, on the calling goroutine. Timing uses the monotonic
// clock reading carried by time.Time, so durations are never negative
// and are unaffected by wall-clock adjustments. A panic in a
// computation propagates unchanged to the caller; no duration, message
// or diagnostic line is produced for the panicking computation.
package arbitime

import "time"

// Measure evaluates fn exactly once and returns the elapsed wall-clock
// time together with fn's result.
func Measure[T any](fn func() T) (time.Duration, T) {
	sw := NewStopwatch()
	result := fn()
	return sw.Stop(), result
}
