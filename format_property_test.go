package arbitime

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genLabels generates a slice of arbitrary labels.
func genLabels() gopter.Gen {
	return gen.SliceOf(gen.AlphaString())
}

// TestFormatAll_OneResultPerBlock verifies N blocks produce exactly N results.
func TestFormatAll_OneResultPerBlock(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result count matches block count", prop.ForAll(
		func(labels []string) bool {
			blocks := make([]Block[int], len(labels))
			for i, label := range labels {
				i := i
				blocks[i] = Block[int]{Label: label, Fn: func() int { return i }}
			}

			return len(FormatAll(blocks)) == len(blocks)
		},
		genLabels(),
	))

	properties.TestingRun(t)
}

// TestFormatAll_PreservesOrderAndLabels verifies each output slot carries
// its own block's result and a message built from its own label.
func TestFormatAll_PreservesOrderAndLabels(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("each message uses its own label, results in input order", prop.ForAll(
		func(labels []string) bool {
			blocks := make([]Block[int], len(labels))
			for i, label := range labels {
				i := i
				blocks[i] = Block[int]{Label: label, Fn: func() int { return i * 10 }}
			}

			formatted := FormatAll(blocks)
			for i, f := range formatted {
				if f.Result != i*10 {
					return false
				}
				if !strings.HasPrefix(f.Message, labels[i]+" - Execution time: ") {
					return false
				}
			}
			return true
		},
		genLabels(),
	))

	properties.TestingRun(t)
}

// TestMeasure_ResultIdentity verifies measuring a pure computation
// returns exactly the computation's value with a non-negative duration.
func TestMeasure_ResultIdentity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("measure returns the computation's value", prop.ForAll(
		func(value int64) bool {
			duration, result := Measure(func() int64 { return value })
			return result == value && duration >= 0
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
