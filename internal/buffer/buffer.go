package buffer

import "github.com/cwbudde/algo-pixcmp/internal/pixel"

// Buffer wraps a sample slice that is treated as immutable after seeding.
// Kernels accept raw []pixel.Sample; use At() to bridge.
type Buffer struct {
	samples []pixel.Sample
}

// Samples returns the underlying slice. Callers must not write to it.
func (b *Buffer) Samples() []pixel.Sample {
	return b.samples
}

// Len returns the number of samples including alignment padding.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// At returns the samples starting at off. Offsets are clamped to [0, Len()].
func (b *Buffer) At(off int) []pixel.Sample {
	if off < 0 {
		off = 0
	}
	if off > len(b.samples) {
		off = len(b.samples)
	}
	return b.samples[off:]
}

// Equal reports whether b and o hold identical samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if len(b.samples) != len(o.samples) {
		return false
	}
	for i := range b.samples {
		if b.samples[i] != o.samples[i] {
			return false
		}
	}
	return true
}
