package arbitime

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects the diagnostic stream to a buffer for the
// duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	t.Cleanup(func() { SetOutput(prev) })
	return buf
}

func TestLog(t *testing.T) {
	buf := captureOutput(t)

	result := Log(func() int {
		sum := 0
		for i := 1; i <= 100; i++ {
			sum += i
		}
		return sum
	})

	assert.Equal(t, 5050, result)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Execution time: "), "unexpected line: %q", lines[0])
}

func TestLogNamed(t *testing.T) {
	buf := captureOutput(t)

	result := LogNamed("Database query", func() int { return 42 })

	assert.Equal(t, 42, result)
	assert.True(t, strings.HasPrefix(buf.String(), "Database query - Execution time: "))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestLogAll(t *testing.T) {
	buf := captureOutput(t)

	results := LogAll([]Block[int]{
		{Label: "First operation", Fn: func() int { return 25 }},
		{Label: "Second operation", Fn: func() int { return 25 }},
	})

	assert.Equal(t, []int{25, 25}, results)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "First operation - Execution time: "))
	assert.True(t, strings.HasPrefix(lines[1], "Second operation - Execution time: "))
}

func TestLogAllPanicKeepsEarlierLines(t *testing.T) {
	buf := captureOutput(t)

	require.PanicsWithValue(t, "boom", func() {
		LogAll([]Block[int]{
			{Label: "completed", Fn: func() int { return 1 }},
			{Label: "failing", Fn: func() int { panic("boom") }},
			{Label: "unreached", Fn: func() int { return 3 }},
		})
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "completed - Execution time: "))
}

func TestSetOutputReturnsPrevious(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}

	prev := SetOutput(first)
	defer SetOutput(prev)

	returned := SetOutput(second)
	assert.Same(t, first, returned)

	Log(func() int { return 1 })
	assert.Empty(t, first.String())
	assert.NotEmpty(t, second.String())
}

func TestLogConcurrentWholeLines(t *testing.T) {
	buf := captureOutput(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			LogNamed("worker", func() int { return 0 })
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 16)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "worker - Execution time: "), "interleaved line: %q", line)
	}
}
