//go:build arm64 && !purego

package neon

import (
	vcpu "github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-pixcmp/internal/primitives"
	"github.com/cwbudde/algo-pixcmp/internal/primitives/registry"
)

func init() {
	registry.Global.Register(registry.Entry{
		Name:      "neon",
		Variant:   primitives.Assembly,
		SIMDLevel: vcpu.SIMDNEON,
		Priority:  15,
		Install:   Install,
	})
}

// Install populates SAD for every partition.
func Install(t *primitives.Table) {
	for _, p := range primitives.Partitions() {
		t.SAD[p] = SAD(p.Width(), p.Height())
	}
}
