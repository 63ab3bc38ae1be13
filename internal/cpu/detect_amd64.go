//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// detectImpl picks the highest x86 level whose whole prefix is present.
//
// Uses golang.org/x/sys/cpu which provides portable CPUID access.
// SSE2 is always true on amd64 as it's part of the x86-64 baseline.
func detectImpl() ID {
	return levelFromFlags(x86Flags{
		sse2:   cpu.X86.HasSSE2,
		ssse3:  cpu.X86.HasSSSE3,
		sse41:  cpu.X86.HasSSE41,
		avx:    cpu.X86.HasAVX,
		avx2:   cpu.X86.HasAVX2,
		avx512: cpu.X86.HasAVX512F,
	})
}
