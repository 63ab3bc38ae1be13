package vector

import "github.com/cwbudde/algo-pixcmp/internal/pixel"

// butterfly8 is an unrolled 8-point Walsh-Hadamard transform.
func butterfly8(v *[8]int) {
	a0, a1 := v[0]+v[1], v[0]-v[1]
	a2, a3 := v[2]+v[3], v[2]-v[3]
	a4, a5 := v[4]+v[5], v[4]-v[5]
	a6, a7 := v[6]+v[7], v[6]-v[7]

	b0, b2 := a0+a2, a0-a2
	b1, b3 := a1+a3, a1-a3
	b4, b6 := a4+a6, a4-a6
	b5, b7 := a5+a7, a5-a7

	v[0], v[4] = b0+b4, b0-b4
	v[1], v[5] = b1+b5, b1-b5
	v[2], v[6] = b2+b6, b2-b6
	v[3], v[7] = b3+b7, b3-b7
}

// sa8dRaw returns the unrounded 8x8 transformed absolute sum.
func sa8dRaw(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	var rows [8][8]int
	for y := 0; y < 8; y++ {
		pa := a[y*strideA : y*strideA+8]
		pb := b[y*strideB : y*strideB+8]
		r := &rows[y]
		for x := 0; x < 8; x++ {
			r[x] = int(pa[x]) - int(pb[x])
		}
		butterfly8(r)
	}

	sum := 0
	var col [8]int
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			col[y] = rows[y][x]
		}
		butterfly8(&col)
		sum += abs(col[0]) + abs(col[1]) + abs(col[2]) + abs(col[3]) +
			abs(col[4]) + abs(col[5]) + abs(col[6]) + abs(col[7])
	}
	return sum
}

// Sa8d8x8 is the unrolled 8x8 SA8D.
func Sa8d8x8(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	return (sa8dRaw(a, strideA, b, strideB) + 2) >> 2
}

// Sa8d16x16 is the unrolled 16x16 SA8D.
func Sa8d16x16(a []pixel.Sample, strideA int, b []pixel.Sample, strideB int) int {
	sum := sa8dRaw(a, strideA, b, strideB) +
		sa8dRaw(a[8:], strideA, b[8:], strideB) +
		sa8dRaw(a[8*strideA:], strideA, b[8*strideB:], strideB) +
		sa8dRaw(a[8*strideA+8:], strideA, b[8*strideB+8:], strideB)
	return (sum + 2) >> 2
}
