// Package registry collects the kernel installers of every variant.
//
// Architecture-specific packages register themselves via init() functions.
// Setup then builds one primitives.Table per variant from the entries whose
// SIMD level the capability identifier supports.
package registry

import (
	"sort"
	"sync"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-pixcmp/internal/cpu"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// Entry is one registered installer.
type Entry struct {
	// Name is a human-readable identifier (e.g., "generic", "avx2").
	Name string

	// Variant is the table this entry populates.
	Variant primitives.Variant

	// SIMDLevel is the instruction set the installed kernels require.
	SIMDLevel vcpu.SIMDLevel

	// Priority orders installers within a variant. Lower priorities install
	// first so higher-level kernels overwrite the slots they share.
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// Install populates zero or more slots of t.
	Install func(t *primitives.Table)
}

// Registry stores installers.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Global is the registry the arch packages register into.
var Global = &Registry{}

// Register adds an installer entry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first call to Setup().
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
}

// Setup returns the table of variant v as installed for capability id.
// Reference entries require no SIMD level, so the reference table is the
// same for every id.
func (r *Registry) Setup(v primitives.Variant, id cpu.ID) *primitives.Table {
	t := &primitives.Table{}
	for _, e := range r.Applicable(v, id) {
		if e.Install != nil {
			e.Install(t)
		}
	}
	return t
}

// Applicable returns the entries of variant v supported by id, in install
// order (ascending priority, registration order on ties).
func (r *Registry) Applicable(v primitives.Variant, id cpu.ID) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, e := range r.entries {
		if e.Variant == v && id.Supports(e.SIMDLevel) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *Registry) ListEntries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}
