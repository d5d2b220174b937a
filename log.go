package arbitime

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// The diagnostic stream is process-wide. The mutex serializes writes so
// concurrent callers never interleave partial lines.
var (
	outputMu sync.Mutex
	output   io.Writer = os.Stderr
)

// SetOutput replaces the diagnostic stream used by Log, LogNamed and
// LogAll, returning the previous one. The default is os.Stderr.
func SetOutput(w io.Writer) io.Writer {
	outputMu.Lock()
	defer outputMu.Unlock()
	prev := output
	output = w
	return prev
}

func writeLine(message string) {
	outputMu.Lock()
	defer outputMu.Unlock()
	_, _ = fmt.Fprintln(output, message)
}

// Log evaluates fn exactly once, writes "Execution time: <duration>"
// as one line to the diagnostic stream and returns fn's result.
func Log[T any](fn func() T) T {
	message, result := Format(fn)
	writeLine(message)
	return result
}

// LogNamed evaluates fn exactly once, writes
// "<label> - Execution time: <duration>" as one line to the diagnostic
// stream and returns fn's result.
func LogNamed[T any](label string, fn func() T) T {
	message, result := FormatNamed(label, fn)
	writeLine(message)
	return result
}

// LogAll times each block sequentially in input order, writing one
// diagnostic line per block immediately after it completes, and returns
// the results in the same order. If a block panics, lines already
// written for earlier blocks remain; no line is written for the
// panicking block or any later one.
func LogAll[T any](blocks []Block[T]) []T {
	results := make([]T, 0, len(blocks))
	for _, block := range blocks {
		message, result := FormatNamed(block.Label, block.Fn)
		writeLine(message)
		results = append(results, result)
	}
	return results
}
