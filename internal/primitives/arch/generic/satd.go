package generic

import (
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// Satd4x4 returns half the transformed absolute sum of one 4x4 block.
func Satd4x4(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	return transformedAbsSum(4, a, strideA, b, strideB) >> 1
}

// SATD returns the reference SATD for a w x h block: the sum of Satd4x4 over
// its 4x4 sub-blocks. w and h must be multiples of 4.
func SATD(w, h int) primitives.CompareFunc {
	return func(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
		sum := 0
		for y := 0; y < h; y += 4 {
			for x := 0; x < w; x += 4 {
				sum += Satd4x4(a[y*strideA+x:], strideA, b[y*strideB+x:], strideB)
			}
		}
		return sum
	}
}
