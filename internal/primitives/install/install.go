// Package install builds the per-variant primitive tables for a capability
// identifier. Importing it links every kernel family available on the
// target architecture.
package install

import (
	"github.com/cwbudde/algo-pixcmp/internal/cpu"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
	"github.com/cwbudde/algo-pixcmp/internal/primitives/registry"
)

// Tables holds one table per variant.
type Tables struct {
	Reference  *primitives.Table
	Vectorized *primitives.Table
	Assembly   *primitives.Table
}

// Setup installs all three variants for id from the global registry.
func Setup(id cpu.ID) Tables {
	return SetupFrom(registry.Global, id)
}

// SetupFrom installs all three variants for id from reg.
func SetupFrom(reg *registry.Registry, id cpu.ID) Tables {
	return Tables{
		Reference:  reg.Setup(primitives.Reference, id),
		Vectorized: reg.Setup(primitives.Vectorized, id),
		Assembly:   reg.Setup(primitives.Assembly, id),
	}
}
