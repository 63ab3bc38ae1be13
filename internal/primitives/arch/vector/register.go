package vector

import (
	vcpu "github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-pixcmp/internal/primitives"
	"github.com/cwbudde/algo-pixcmp/internal/primitives/registry"
)

// init registers the vector kernels at three capability levels, each
// covering a different subset of the table.
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "sse2",
		Variant:   primitives.Vectorized,
		SIMDLevel: vcpu.SIMDSSE2,
		Priority:  10,
		Install:   InstallSSE2,
	})
	registry.Global.Register(registry.Entry{
		Name:      "neon",
		Variant:   primitives.Vectorized,
		SIMDLevel: vcpu.SIMDNEON,
		Priority:  15,
		Install:   InstallNEON,
	})
	registry.Global.Register(registry.Entry{
		Name:      "avx2",
		Variant:   primitives.Vectorized,
		SIMDLevel: vcpu.SIMDAVX2,
		Priority:  20,
		Install:   InstallAVX2,
	})
}

// InstallSSE2 installs SAD for partitions at least 8 wide and SATD for the
// partitions no larger than 8x8.
func InstallSSE2(t *primitives.Table) {
	for _, p := range primitives.Partitions() {
		if p.Width() >= 8 {
			t.SAD[p] = SAD(p.Width(), p.Height())
		}
	}
	for _, p := range []primitives.Partition{primitives.P4x4, primitives.P8x4, primitives.P4x8, primitives.P8x8} {
		t.SATD[p] = SATD(p.Width(), p.Height())
	}
}

// InstallNEON installs SAD for every partition.
func InstallNEON(t *primitives.Table) {
	for _, p := range primitives.Partitions() {
		t.SAD[p] = SAD(p.Width(), p.Height())
	}
}

// InstallAVX2 installs every slot.
func InstallAVX2(t *primitives.Table) {
	for _, p := range primitives.Partitions() {
		t.SATD[p] = SATD(p.Width(), p.Height())
		t.SAD[p] = SAD(p.Width(), p.Height())
	}
	t.SA8D8x8 = Sa8d8x8
	t.SA8D16x16 = Sa8d16x16
}
