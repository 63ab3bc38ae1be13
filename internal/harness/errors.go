package harness

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// ErrConformanceMismatch is matched by every *MismatchError.
var ErrConformanceMismatch = errors.New("conformance mismatch")

// ErrBufferTooSmall reports a sweep that would read past the end of the
// input buffers.
var ErrBufferTooSmall = errors.New("sweep exceeds buffer length")

// ErrInvalidPartition reports a single-partition index out of range.
var ErrInvalidPartition = errors.New("invalid partition index")

// MismatchError describes the first disagreement of a sweep.
type MismatchError struct {
	Variant   primitives.Variant
	Slot      primitives.Slot
	Offset    int
	Candidate int
	Reference int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s %s: candidate %d != reference %d at offset %d",
		e.Variant, e.Slot, e.Candidate, e.Reference, e.Offset)
}

// Is makes errors.Is(err, ErrConformanceMismatch) succeed.
func (e *MismatchError) Is(target error) bool {
	return target == ErrConformanceMismatch
}
