package generic

import (
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// SAD returns the reference sum of absolute differences for a w x h block.
func SAD(w, h int) primitives.CompareFunc {
	return func(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
		sum := 0
		for y := 0; y < h; y++ {
			ra := a[y*strideA : y*strideA+w]
			rb := b[y*strideB : y*strideB+w]
			for x := 0; x < w; x++ {
				d := int(ra[x]) - int(rb[x])
				if d < 0 {
					d = -d
				}
				sum += d
			}
		}
		return sum
	}
}
