// Package pixel defines the sample type shared by buffers and kernels.
package pixel

import "fmt"

// Sample is one pixel component. 8-bit content uses the low byte only.
type Sample = uint16

// Supported bit depths.
const (
	Depth8  = 8
	Depth10 = 10
)

// Max returns the largest sample value representable at depth.
func Max(depth int) Sample {
	return Sample(1<<uint(depth) - 1)
}

// ValidateDepth returns an error unless depth is 8 or 10.
func ValidateDepth(depth int) error {
	if depth != Depth8 && depth != Depth10 {
		return fmt.Errorf("unsupported bit depth %d: must be %d or %d", depth, Depth8, Depth10)
	}
	return nil
}
