package cpu

// x86Flags is the subset of CPUID bits that maps onto an ID.
type x86Flags struct {
	sse2, ssse3, sse41, avx, avx2, avx512 bool
}

// levelFromFlags returns the highest level reached without a gap. A CPU
// reporting AVX2 but not AVX (seen under some hypervisors) stops at SSE4.1.
func levelFromFlags(f x86Flags) ID {
	chain := []struct {
		ok bool
		id ID
	}{
		{f.sse2, IDSSE2},
		{f.ssse3, IDSSSE3},
		{f.sse41, IDSSE41},
		{f.avx, IDAVX},
		{f.avx2, IDAVX2},
		{f.avx512, IDAVX512},
	}

	level := IDNone
	for _, step := range chain {
		if !step.ok {
			break
		}
		level = step.id
	}
	return level
}
