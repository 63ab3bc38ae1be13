package harness

import (
	"fmt"

	"github.com/cwbudde/algo-pixcmp/internal/buffer"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// Outcome is the verdict of one slot comparison.
type Outcome struct {
	Agree bool

	// Offset into buffer A of the first disagreement. Candidate and
	// Reference hold the two results there. All three are zero on Agree.
	Offset    int
	Candidate int
	Reference int

	// Evaluated counts the offsets compared, including the failing one.
	Evaluated int
}

// Checker compares a candidate against the reference over an offset sweep.
type Checker struct {
	Positions int
	Step      int
	Stride    int
}

// maxBlock is the width and height of the largest partition.
const maxBlock = 64

// Fits returns ErrBufferTooSmall unless every read of the sweep, the
// largest partition at the last offset, lies within length samples.
func (c Checker) Fits(length int) error {
	if c.Positions <= 0 || c.Step < 0 || c.Stride <= 0 {
		return fmt.Errorf("%w: positions %d, step %d, stride %d", ErrBufferTooSmall, c.Positions, c.Step, c.Stride)
	}
	room := length - maxBlock
	if room < 0 || c.Stride > room/(maxBlock-1) {
		return fmt.Errorf("%w: stride %d reads more than %d samples", ErrBufferTooSmall, c.Stride, length)
	}
	room -= (maxBlock - 1) * c.Stride
	if c.Step > 0 && c.Positions-1 > room/c.Step {
		return fmt.Errorf("%w: %d positions %d apart with stride %d read more than %d samples",
			ErrBufferTooSmall, c.Positions, c.Step, c.Stride, length)
	}
	return nil
}

// Check evaluates cand and then ref at offsets 0, Step, 2*Step, ... into a,
// always against b at offset zero, and stops at the first unequal pair.
func (c Checker) Check(ref, cand primitives.CompareFunc, a, b *buffer.Buffer) Outcome {
	pb := b.At(0)
	for i := 0; i < c.Positions; i++ {
		off := i * c.Step
		pa := a.At(off)

		got := cand(pa, c.Stride, pb, c.Stride)
		want := ref(pa, c.Stride, pb, c.Stride)
		if got != want {
			return Outcome{Offset: off, Candidate: got, Reference: want, Evaluated: i + 1}
		}
	}
	return Outcome{Agree: true, Evaluated: c.Positions}
}
