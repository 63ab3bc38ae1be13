package cpu

import (
	"testing"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

func TestIDFeaturesCumulative(t *testing.T) {
	f := IDAVX2.Features()
	if !f.HasSSE2 || !f.HasAVX || !f.HasAVX2 {
		t.Fatalf("AVX2 should imply SSE2 and AVX, got %#v", f)
	}
	if f.HasAVX512 || f.HasNEON {
		t.Fatalf("AVX2 should not imply AVX-512 or NEON, got %#v", f)
	}
}

func TestIDSupports(t *testing.T) {
	tests := []struct {
		id    ID
		level vcpu.SIMDLevel
		want  bool
	}{
		{IDNone, vcpu.SIMDNone, true},
		{IDNone, vcpu.SIMDSSE2, false},
		{IDSSE2, vcpu.SIMDSSE2, true},
		{IDSSE2, vcpu.SIMDAVX2, false},
		{IDSSE41, vcpu.SIMDSSE2, true},
		{IDAVX2, vcpu.SIMDAVX2, true},
		{IDAVX512, vcpu.SIMDAVX2, true},
		{IDNEON, vcpu.SIMDNEON, true},
		{IDNEON, vcpu.SIMDSSE2, false},
		{ID(42), vcpu.SIMDNone, true},
		{ID(42), vcpu.SIMDSSE2, false},
		{ID(-3), vcpu.SIMDAVX2, false},
	}

	for _, tt := range tests {
		if got := tt.id.Supports(tt.level); got != tt.want {
			t.Errorf("%v.Supports(%v) = %v, want %v", tt.id, tt.level, got, tt.want)
		}
	}
}

func TestLevelFromFlagsStopsAtGap(t *testing.T) {
	tests := []struct {
		name  string
		flags x86Flags
		want  ID
	}{
		{"none", x86Flags{}, IDNone},
		{"sse2", x86Flags{sse2: true}, IDSSE2},
		{"full", x86Flags{true, true, true, true, true, true}, IDAVX512},
		{"avx2-without-avx", x86Flags{sse2: true, ssse3: true, sse41: true, avx2: true}, IDSSE41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := levelFromFlags(tt.flags); got != tt.want {
				t.Fatalf("levelFromFlags = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectCached(t *testing.T) {
	defer ResetDetection()

	first := Detect()
	second := Detect()
	if first != second {
		t.Fatalf("Detect not stable: %v then %v", first, second)
	}
	t.Logf("detected capability: %v", first)
}

func TestIDString(t *testing.T) {
	if IDAVX2.String() != "AVX2" {
		t.Fatalf("IDAVX2.String() = %q", IDAVX2.String())
	}
	if ID(99).String() != "unknown(99)" {
		t.Fatalf("ID(99).String() = %q", ID(99).String())
	}
}
