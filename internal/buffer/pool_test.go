package buffer

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-pixcmp/internal/pixel"
)

func TestNewPoolDeterministic(t *testing.T) {
	p1, err := NewPool(7, pixel.Depth8)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	p2, err := NewPool(7, pixel.Depth8)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	if !p1.A().Equal(p2.A()) || !p1.B().Equal(p2.B()) {
		t.Fatal("same seed produced different buffers")
	}
}

func TestNewPoolSeedChangesContent(t *testing.T) {
	p1, _ := NewPool(1, pixel.Depth8)
	p2, _ := NewPool(2, pixel.Depth8)
	if p1.A().Equal(p2.A()) {
		t.Fatal("different seeds produced identical buffers")
	}
}

func TestNewPoolBuffersIndependent(t *testing.T) {
	p, err := NewPool(1, pixel.Depth8)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	if p.A().Equal(p.B()) {
		t.Fatal("A and B must not be identical")
	}
}

func TestNewPoolRange(t *testing.T) {
	for _, depth := range []int{pixel.Depth8, pixel.Depth10} {
		p, err := NewPool(3, depth)
		if err != nil {
			t.Fatalf("NewPool(depth=%d): %v", depth, err)
		}
		limit := pixel.Max(depth)
		var peak pixel.Sample
		for _, buf := range []*Buffer{p.A(), p.B()} {
			for i, v := range buf.Samples() {
				if v > limit {
					t.Fatalf("depth %d: sample %d = %d exceeds %d", depth, i, v, limit)
				}
				if v > peak {
					peak = v
				}
			}
		}
		if depth == pixel.Depth10 && peak <= 255 {
			t.Fatalf("10-bit pool never exceeded 8-bit range (peak %d)", peak)
		}
	}
}

func TestNewPoolLengthAndPadding(t *testing.T) {
	p, err := NewPool(1, pixel.Depth8)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	if p.A().Len() != DataLength+Padding {
		t.Fatalf("Len() = %d, want %d", p.A().Len(), DataLength+Padding)
	}
	for i, v := range p.A().Samples()[DataLength:] {
		if v != 0 {
			t.Fatalf("padding sample %d = %d, want 0", i, v)
		}
	}
	// The sweep reads a 64x64 block with stride 16 at offset 100*16.
	need := 100*16 + 63*16 + 64
	if need > p.A().Len() {
		t.Fatalf("buffer too short for the sweep: need %d, have %d", need, p.A().Len())
	}
}

func TestNewPoolResourceExhausted(t *testing.T) {
	for _, n := range []int{0, -5, MaxLength} {
		_, err := NewPool(1, pixel.Depth8, WithLength(n))
		if !errors.Is(err, ErrResourceExhausted) {
			t.Fatalf("WithLength(%d): err = %v, want ErrResourceExhausted", n, err)
		}
	}
}

func TestNewPoolRejectsDepth(t *testing.T) {
	if _, err := NewPool(1, 12); err == nil {
		t.Fatal("expected error for 12-bit depth")
	}
}

func TestBufferAtClamps(t *testing.T) {
	p, _ := NewPool(1, pixel.Depth8, WithLength(4))
	a := p.A()
	if got := len(a.At(-1)); got != a.Len() {
		t.Fatalf("At(-1) length = %d, want %d", got, a.Len())
	}
	if got := len(a.At(a.Len() + 10)); got != 0 {
		t.Fatalf("At(past end) length = %d, want 0", got)
	}
	if a.At(2)[0] != a.Samples()[2] {
		t.Fatal("At(2) does not start at sample 2")
	}
}
