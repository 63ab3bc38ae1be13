package generic

import "github.com/cwbudde/algo-pixcmp/internal/pixel"

// Sa8d8x8 returns the rounded quarter of the 8x8 transformed absolute sum.
func Sa8d8x8(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	return (transformedAbsSum(8, a, strideA, b, strideB) + 2) >> 2
}

// Sa8d16x16 sums the raw 8x8 transformed absolute sums of the four
// quadrants before rounding once.
func Sa8d16x16(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	sum := 0
	for y := 0; y < 16; y += 8 {
		for x := 0; x < 16; x += 8 {
			sum += transformedAbsSum(8, a[y*strideA+x:], strideA, b[y*strideB+x:], strideB)
		}
	}
	return (sum + 2) >> 2
}
