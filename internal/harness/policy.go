package harness

import "fmt"

// Default sweep and timing policy.
const (
	DefaultIterations = 100000
	DefaultPositions  = 101
	DefaultStep       = 16
	DefaultStride     = 16
)

// Policy holds the tunable constants of a run. Tests shrink Iterations and
// Positions to keep CI fast.
type Policy struct {
	Iterations int
	Positions  int
	Step       int
	Stride     int
}

// DefaultPolicy returns the standard bench policy.
func DefaultPolicy() Policy {
	return Policy{
		Iterations: DefaultIterations,
		Positions:  DefaultPositions,
		Step:       DefaultStep,
		Stride:     DefaultStride,
	}
}

// Validate rejects non-positive values.
func (p Policy) Validate() error {
	if p.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", p.Iterations)
	}
	if p.Positions <= 0 {
		return fmt.Errorf("positions must be positive, got %d", p.Positions)
	}
	if p.Step < 0 {
		return fmt.Errorf("step must not be negative, got %d", p.Step)
	}
	if p.Stride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", p.Stride)
	}
	return nil
}

// Fits reports whether a sweep under p stays within buffers of length
// samples.
func (p Policy) Fits(length int) error {
	return p.Checker().Fits(length)
}

// Checker returns a Checker configured from p.
func (p Policy) Checker() Checker {
	return Checker{Positions: p.Positions, Step: p.Step, Stride: p.Stride}
}

// Sampler returns a Sampler configured from p reading clock.
func (p Policy) Sampler(clock Clock) Sampler {
	return Sampler{Iterations: p.Iterations, Stride: p.Stride, Clock: clock}
}
