//go:build amd64 && !purego

package avx2

import "github.com/cwbudde/algo-pixcmp/internal/pixel"

// Sa8d8x8 transforms columns before rows. The 2-D Hadamard transform is
// separable, so the coefficients match the row-first reference exactly.
// It is a Go kernel standing in for the Assembly family on amd64.
func Sa8d8x8(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	var m [8][8]int
	for y := 0; y < 8; y++ {
		pa := a[y*strideA : y*strideA+8]
		pb := b[y*strideB : y*strideB+8]
		for x := 0; x < 8; x++ {
			m[x][y] = int(pa[x]) - int(pb[x])
		}
	}

	for x := range m {
		wht8(&m[x])
	}

	sum := 0
	var row [8]int
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			row[x] = m[x][y]
		}
		wht8(&row)
		for _, c := range row {
			if c < 0 {
				c = -c
			}
			sum += c
		}
	}
	return (sum + 2) >> 2
}

func wht8(v *[8]int) {
	for step := 1; step < 8; step <<= 1 {
		for i := 0; i < 8; i += 2 * step {
			for j := i; j < i+step; j++ {
				v[j], v[j+step] = v[j]+v[j+step], v[j]-v[j+step]
			}
		}
	}
}
