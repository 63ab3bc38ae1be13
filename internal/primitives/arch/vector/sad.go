package vector

import (
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// SAD returns a 4x-unrolled SAD kernel for a w x h block. w must be a
// multiple of 4.
func SAD(w, h int) primitives.CompareFunc {
	return func(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
		var s0, s1, s2, s3 int
		for y := 0; y < h; y++ {
			ra := a[y*strideA : y*strideA+w]
			rb := b[y*strideB : y*strideB+w]
			for x := 0; x+3 < w; x += 4 {
				s0 += absDiff(ra[x], rb[x])
				s1 += absDiff(ra[x+1], rb[x+1])
				s2 += absDiff(ra[x+2], rb[x+2])
				s3 += absDiff(ra[x+3], rb[x+3])
			}
		}
		return s0 + s1 + s2 + s3
	}
}
