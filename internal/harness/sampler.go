package harness

import (
	"time"

	"github.com/cwbudde/algo-pixcmp/internal/buffer"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// Clock is the time source of a Sampler.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

// Now returns time.Now(), which carries a monotonic reading.
func (SystemClock) Now() time.Time { return time.Now() }

// Timing is one advisory measurement pair.
type Timing struct {
	Candidate  time.Duration
	Reference  time.Duration
	Iterations int
}

// CandidateMillis returns the candidate time in milliseconds.
func (t Timing) CandidateMillis() float64 { return millis(t.Candidate) }

// ReferenceMillis returns the reference time in milliseconds.
func (t Timing) ReferenceMillis() float64 { return millis(t.Reference) }

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// sink keeps timed calls observable to the compiler.
var sink int

// Sampler times a candidate and its reference.
type Sampler struct {
	Iterations int
	Stride     int
	Clock      Clock
}

// Sample primes and times cand, then primes and times ref, each for
// Iterations calls on both buffers at offset zero.
func (s Sampler) Sample(ref, cand primitives.CompareFunc, a, b *buffer.Buffer) Timing {
	clock := s.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	return Timing{
		Candidate:  s.time(clock, cand, a, b),
		Reference:  s.time(clock, ref, a, b),
		Iterations: s.Iterations,
	}
}

func (s Sampler) time(clock Clock, fn primitives.CompareFunc, a, b *buffer.Buffer) time.Duration {
	pa, pb := a.At(0), b.At(0)

	sink += fn(pa, s.Stride, pb, s.Stride)

	start := clock.Now()
	acc := 0
	for i := 0; i < s.Iterations; i++ {
		acc += fn(pa, s.Stride, pb, s.Stride)
	}
	end := clock.Now()

	sink += acc
	return end.Sub(start)
}
