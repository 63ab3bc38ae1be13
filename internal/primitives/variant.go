package primitives

// Variant identifies an implementation family.
type Variant int

const (
	// Reference is the portable implementation every other family is
	// checked against.
	Reference Variant = iota

	// Vectorized holds compiler-friendly Go kernels.
	Vectorized

	// Assembly holds architecture-specific kernels.
	Assembly
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case Reference:
		return "reference"
	case Vectorized:
		return "vector"
	case Assembly:
		return "assembly"
	default:
		return "unknown"
	}
}
