package vector

import (
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// Satd4x4 computes the 4x4 SATD with both butterfly passes written out.
func Satd4x4(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	var t [16]int
	for y := 0; y < 4; y++ {
		pa := a[y*strideA : y*strideA+4]
		pb := b[y*strideB : y*strideB+4]

		d0 := int(pa[0]) - int(pb[0])
		d1 := int(pa[1]) - int(pb[1])
		d2 := int(pa[2]) - int(pb[2])
		d3 := int(pa[3]) - int(pb[3])

		s01, d01 := d0+d1, d0-d1
		s23, d23 := d2+d3, d2-d3

		t[y*4+0] = s01 + s23
		t[y*4+1] = s01 - s23
		t[y*4+2] = d01 + d23
		t[y*4+3] = d01 - d23
	}

	sum := 0
	for x := 0; x < 4; x++ {
		s01, d01 := t[x]+t[4+x], t[x]-t[4+x]
		s23, d23 := t[8+x]+t[12+x], t[8+x]-t[12+x]
		sum += abs(s01+s23) + abs(s01-s23) + abs(d01+d23) + abs(d01-d23)
	}
	return sum >> 1
}

// SATD returns a kernel summing Satd4x4 over the 4x4 tiles of a w x h
// block, two tiles per step when the width allows it.
func SATD(w, h int) primitives.CompareFunc {
	return func(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
		sum := 0
		for y := 0; y < h; y += 4 {
			oa, ob := y*strideA, y*strideB
			x := 0
			for ; x+7 < w; x += 8 {
				sum += Satd4x4(a[oa+x:], strideA, b[ob+x:], strideB) +
					Satd4x4(a[oa+x+4:], strideA, b[ob+x+4:], strideB)
			}
			if x < w {
				sum += Satd4x4(a[oa+x:], strideA, b[ob+x:], strideB)
			}
		}
		return sum
	}
}
