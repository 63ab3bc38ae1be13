package vector

import (
	"math/bits"

	"github.com/cwbudde/algo-pixcmp/internal/pixel"
)

const signShift = bits.UintSize - 1

func abs(v int) int {
	m := v >> signShift
	return (v ^ m) - m
}

func absDiff(p, q pixel.Sample) int {
	return abs(int(p) - int(q))
}
