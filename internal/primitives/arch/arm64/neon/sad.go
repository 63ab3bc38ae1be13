//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// SAD processes four samples per step with four independent accumulators,
// the shape of a UABAL-based routine. w must be a multiple of 4.
// It is a Go kernel standing in for the Assembly family on arm64.
func SAD(w, h int) primitives.CompareFunc {
	return func(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
		var acc [4]int
		for y := 0; y < h; y++ {
			ra := a[y*strideA : y*strideA+w]
			rb := b[y*strideB : y*strideB+w]
			for x := 0; x+3 < w; x += 4 {
				for l := 0; l < 4; l++ {
					d := int(ra[x+l]) - int(rb[x+l])
					if d < 0 {
						d = -d
					}
					acc[l] += d
				}
			}
		}
		return acc[0] + acc[1] + acc[2] + acc[3]
	}
}
