//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// SAD returns a kernel that walks two rows per iteration, eight samples per
// row at a time, mirroring the lane layout of a VPSADBW-style routine. w must
// be a multiple of 8 and h even.
// It is a Go kernel standing in for the Assembly family on amd64.
func SAD(w, h int) primitives.CompareFunc {
	return func(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
		var lo, hi int
		for y := 0; y < h; y += 2 {
			r0a := a[y*strideA : y*strideA+w]
			r0b := b[y*strideB : y*strideB+w]
			r1a := a[(y+1)*strideA : (y+1)*strideA+w]
			r1b := b[(y+1)*strideB : (y+1)*strideB+w]
			for x := 0; x+7 < w; x += 8 {
				lo += lane8(r0a[x:x+8], r0b[x:x+8])
				hi += lane8(r1a[x:x+8], r1b[x:x+8])
			}
		}
		return lo + hi
	}
}

func lane8(a, b []pixel.Sample) int {
	_ = a[7]
	_ = b[7]
	return absDiff(a[0], b[0]) + absDiff(a[1], b[1]) + absDiff(a[2], b[2]) + absDiff(a[3], b[3]) +
		absDiff(a[4], b[4]) + absDiff(a[5], b[5]) + absDiff(a[6], b[6]) + absDiff(a[7], b[7])
}

func absDiff(p, q pixel.Sample) int {
	if p > q {
		return int(p - q)
	}
	return int(q - p)
}
