package arbitime

import (
	"fmt"
	"time"
)

// Block pairs a human-readable label with a computation to be timed.
// The computation is evaluated exactly once and is never retained.
type Block[T any] struct {
	Label string
	Fn    func() T
}

// Formatted holds the timing message for one computation together with
// the computation's result.
type Formatted[T any] struct {
	Message string
	Result  T
}

// Format evaluates fn exactly once and returns a message of the form
// "Execution time: <duration>" together with fn's result.
func Format[T any](fn func() T) (string, T) {
	duration, result := Measure(fn)
	return "Execution time: " + FormatDuration(duration), result
}

// FormatNamed evaluates fn exactly once and returns a message of the
// form "<label> - Execution time: <duration>" together with fn's result.
func FormatNamed[T any](label string, fn func() T) (string, T) {
	duration, result := Measure(fn)
	return fmt.Sprintf("%s - Execution time: %s", label, FormatDuration(duration)), result
}

// FormatAll times each block independently, strictly sequentially and
// in input order, and returns one Formatted per block in the same
// order. Input order matters: computations may have observable side
// effects that later blocks depend on. A panic in one block unwinds
// the whole call; later blocks are never evaluated and no partial
// slice is returned.
func FormatAll[T any](blocks []Block[T]) []Formatted[T] {
	formatted := make([]Formatted[T], 0, len(blocks))
	for _, block := range blocks {
		message, result := FormatNamed(block.Label, block.Fn)
		formatted = append(formatted, Formatted[T]{Message: message, Result: result})
	}
	return formatted
}

// FormatDuration renders d with Go's default unit auto-scaling:
// durations under a microsecond render in nanoseconds (e.g. "512ns"),
// under a millisecond in microseconds, under a second in milliseconds
// with fractional digits (e.g. "1.234567ms"), and larger durations in
// seconds, minutes and hours (e.g. "1m12.5s").
func FormatDuration(d time.Duration) string {
	return d.String()
}
