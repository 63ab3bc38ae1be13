//go:build amd64 && !purego

package avx2

import (
	vcpu "github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-pixcmp/internal/primitives"
	"github.com/cwbudde/algo-pixcmp/internal/primitives/registry"
)

// init registers the AVX2 assembly-family kernels.
//
// Priority: 20 (high - preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "avx2",
		Variant:   primitives.Assembly,
		SIMDLevel: vcpu.SIMDAVX2,
		Priority:  20,
		Install:   Install,
	})
}

// Install populates SAD for partitions whose width is a multiple of 8, and
// SA8D8x8.
func Install(t *primitives.Table) {
	for _, p := range primitives.Partitions() {
		if p.Width()%8 == 0 {
			t.SAD[p] = SAD(p.Width(), p.Height())
		}
	}
	t.SA8D8x8 = Sa8d8x8
}
