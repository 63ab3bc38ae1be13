package primitives

import "github.com/cwbudde/algo-pixcmp/internal/pixel"

// Metric is a block comparison metric kind.
type Metric int

const (
	// SATD is the sum of absolute 4x4 Hadamard-transformed differences.
	SATD Metric = iota

	// SAD is the sum of absolute differences.
	SAD

	// SA8D8x8 is the 8x8 Hadamard cost of an 8x8 block.
	SA8D8x8

	// SA8D16x16 is the 8x8 Hadamard cost of a 16x16 block.
	SA8D16x16
)

// Metrics lists every metric kind in sweep order.
var Metrics = []Metric{SATD, SAD, SA8D8x8, SA8D16x16}

// String returns the name printed in bench output.
func (m Metric) String() string {
	switch m {
	case SATD:
		return "satd"
	case SAD:
		return "sad"
	case SA8D8x8:
		return "sa8d_8x8"
	case SA8D16x16:
		return "sa8d_16x16"
	default:
		return "unknown"
	}
}

// PerPartition reports whether the metric has one slot per partition.
// SA8D kinds exist only at their fixed geometry.
func (m Metric) PerPartition() bool {
	return m == SATD || m == SAD
}

// FixedPartition returns the geometry of a non-per-partition metric.
func (m Metric) FixedPartition() (Partition, bool) {
	switch m {
	case SA8D8x8:
		return P8x8, true
	case SA8D16x16:
		return P16x16, true
	default:
		return 0, false
	}
}

// CompareFunc compares the block at a (row stride strideA) against the
// block at b (row stride strideB) and returns the cost. Implementations
// read only; geometry is implied by the slot the function is installed in.
type CompareFunc func(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int
