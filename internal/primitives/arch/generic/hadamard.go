package generic

import "github.com/cwbudde/algo-pixcmp/internal/pixel"

// hadamard applies an in-place unnormalized Walsh-Hadamard transform to v.
// len(v) must be a power of two.
func hadamard(v []int) {
	n := len(v)
	for step := 1; step < n; step <<= 1 {
		for i := 0; i < n; i += 2 * step {
			for j := i; j < i+step; j++ {
				x, y := v[j], v[j+step]
				v[j], v[j+step] = x+y, x-y
			}
		}
	}
}

// transformedAbsSum returns the sum of absolute values of the 2-D Hadamard
// transform of the n x n difference block a - b. n is 4 or 8.
func transformedAbsSum(n int, a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	var m [64]int
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			m[y*n+x] = int(a[y*strideA+x]) - int(b[y*strideB+x])
		}
		hadamard(m[y*n : y*n+n])
	}

	var buf [8]int
	col := buf[:n]
	sum := 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			col[y] = m[y*n+x]
		}
		hadamard(col)
		for _, c := range col {
			if c < 0 {
				c = -c
			}
			sum += c
		}
	}
	return sum
}
