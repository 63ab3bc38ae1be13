package buffer

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-pixcmp/internal/pixel"
)

const (
	// DataLength is the number of seeded samples per buffer. It covers a
	// 64x64 block read with stride 16 at the largest sweep offset.
	DataLength = 0x1e00

	// Align is the alignment unit, in samples, of the padding area.
	Align = 16

	// Padding is the zeroed slack appended after the seeded area.
	Padding = 16 * Align

	// MaxLength bounds a single buffer allocation.
	MaxLength = 1 << 28
)

// ErrResourceExhausted reports that the bench buffers could not be allocated.
var ErrResourceExhausted = errors.New("buffer allocation failed")

// Pool holds the two independently seeded input buffers of a run.
type Pool struct {
	a, b  *Buffer
	seed  int64
	depth int
}

// Option configures NewPool.
type Option func(*poolConfig)

type poolConfig struct {
	length int
}

// WithLength overrides the number of seeded samples per buffer.
func WithLength(n int) Option {
	return func(c *poolConfig) {
		c.length = n
	}
}

// NewPool allocates both buffers and fills them from a single pseudo-random
// source seeded with seed. Each index draws A then B, so the buffers are
// independent rather than mirror images. Samples are masked to the maximum
// value of depth.
func NewPool(seed int64, depth int, opts ...Option) (*Pool, error) {
	if err := pixel.ValidateDepth(depth); err != nil {
		return nil, err
	}

	cfg := poolConfig{length: DataLength}
	for _, opt := range opts {
		opt(&cfg)
	}

	a, err := allocate(cfg.length)
	if err != nil {
		return nil, err
	}
	b, err := allocate(cfg.length)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	limit := pixel.Max(depth)
	for i := 0; i < cfg.length; i++ {
		a[i] = pixel.Sample(rng.Uint32()) & limit
		b[i] = pixel.Sample(rng.Uint32()) & limit
	}

	return &Pool{
		a:     &Buffer{samples: a},
		b:     &Buffer{samples: b},
		seed:  seed,
		depth: depth,
	}, nil
}

// allocate returns a zeroed slice of n samples plus padding. The size
// bound is the only source of ErrResourceExhausted: the runtime treats an
// out-of-memory condition as fatal, not as a recoverable panic.
func allocate(n int) ([]pixel.Sample, error) {
	if n <= 0 || n+Padding > MaxLength {
		return nil, fmt.Errorf("%w: %d samples requested", ErrResourceExhausted, n)
	}
	return make([]pixel.Sample, n+Padding), nil
}

// A returns the buffer whose offset is swept during conformance checks.
func (p *Pool) A() *Buffer { return p.a }

// B returns the buffer always read at offset zero.
func (p *Pool) B() *Buffer { return p.b }

// Seed returns the seed the pool was filled with.
func (p *Pool) Seed() int64 { return p.seed }

// Depth returns the bit depth the samples were masked to.
func (p *Pool) Depth() int { return p.depth }
