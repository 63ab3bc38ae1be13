// Package cpu provides the capability identifier used to install optimized
// pixel comparison kernels.
//
// An ID is an ordered instruction-set level. The bench detects it once per
// process (or takes it from --cpuid) and hands it to the kernel installers,
// which translate it into algo-vecmath feature flags to decide which
// registered kernels the current machine can run.
//
// Detection is performed lazily on the first call to Detect() and the result
// is cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"strconv"
	"sync"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

// ID is an opaque capability identifier. Higher x86 values imply all lower
// x86 values; NEON stands on its own.
type ID int

const (
	// IDNone selects only portable kernels.
	IDNone ID = iota

	// IDSSE2 is the amd64 baseline.
	IDSSE2

	// IDSSSE3 adds supplemental SSE3 (PABSW, PSHUFB).
	IDSSSE3

	// IDSSE41 adds SSE4.1.
	IDSSE41

	// IDAVX adds 256-bit float AVX.
	IDAVX

	// IDAVX2 adds 256-bit integer operations.
	IDAVX2

	// IDAVX512 adds AVX-512 foundation.
	IDAVX512

	// IDNEON is ARM Advanced SIMD.
	IDNEON
)

// String returns a human-readable name for the capability level.
func (id ID) String() string {
	switch id {
	case IDNone:
		return "none"
	case IDSSE2:
		return "SSE2"
	case IDSSSE3:
		return "SSSE3"
	case IDSSE41:
		return "SSE4.1"
	case IDAVX:
		return "AVX"
	case IDAVX2:
		return "AVX2"
	case IDAVX512:
		return "AVX-512"
	case IDNEON:
		return "NEON"
	default:
		return "unknown(" + strconv.Itoa(int(id)) + ")"
	}
}

// Features expands id into the feature flags consumed by kernel lookup.
// x86 levels are cumulative. Unknown or negative IDs yield a feature set
// that supports only portable kernels.
func (id ID) Features() vcpu.Features {
	if id == IDNEON {
		return vcpu.Features{HasNEON: true, Architecture: "arm64"}
	}
	if id <= IDNone || id > IDAVX512 {
		return vcpu.Features{ForceGeneric: true}
	}

	return vcpu.Features{
		HasSSE2:      id >= IDSSE2,
		HasAVX:       id >= IDAVX,
		HasAVX2:      id >= IDAVX2,
		HasAVX512:    id >= IDAVX512,
		Architecture: "amd64",
	}
}

// Supports reports whether kernels built for level may run under id.
func (id ID) Supports(level vcpu.SIMDLevel) bool {
	return vcpu.Supports(id.Features(), level)
}

var (
	detected   ID
	detectOnce sync.Once
	detectMu   sync.Mutex
)

// Detect returns the capability identifier of the running processor.
//
// This function is thread-safe and can be called concurrently from multiple goroutines.
func Detect() ID {
	detectMu.Lock()
	defer detectMu.Unlock()

	detectOnce.Do(func() {
		detected = detectImpl()
	})
	return detected
}

// ResetDetection clears the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	detectMu.Lock()
	defer detectMu.Unlock()

	detectOnce = sync.Once{}
	detected = IDNone
}
