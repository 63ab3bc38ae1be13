package generic

import (
	vcpu "github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-pixcmp/internal/primitives"
	"github.com/cwbudde/algo-pixcmp/internal/primitives/registry"
)

// init registers the reference kernels. They populate every slot and are
// the baseline all other variants are checked against.
//
// Priority: 0 (the only reference entry)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "generic",
		Variant:   primitives.Reference,
		SIMDLevel: vcpu.SIMDNone,
		Priority:  0,
		Install:   Install,
	})
}

// Install fills every slot of t with a reference kernel.
func Install(t *primitives.Table) {
	for _, p := range primitives.Partitions() {
		t.SATD[p] = SATD(p.Width(), p.Height())
		t.SAD[p] = SAD(p.Width(), p.Height())
	}
	t.SA8D8x8 = Sa8d8x8
	t.SA8D16x16 = Sa8d16x16
}
