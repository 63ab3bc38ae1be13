package vector

import (
	"testing"

	"github.com/cwbudde/algo-pixcmp/internal/buffer"
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
	"github.com/cwbudde/algo-pixcmp/internal/primitives/arch/generic"
)

func referenceTable() *primitives.Table {
	t := &primitives.Table{}
	generic.Install(t)
	return t
}

func TestKernelsMatchReference(t *testing.T) {
	ref := referenceTable()
	installers := []struct {
		name    string
		install func(*primitives.Table)
	}{
		{"sse2", InstallSSE2},
		{"neon", InstallNEON},
		{"avx2", InstallAVX2},
	}

	for _, depth := range []int{pixel.Depth8, pixel.Depth10} {
		pool, err := buffer.NewPool(11, depth)
		if err != nil {
			t.Fatalf("NewPool: %v", err)
		}

		for _, inst := range installers {
			var tbl primitives.Table
			inst.install(&tbl)
			if tbl.Populated() == 0 {
				t.Fatalf("%s installed nothing", inst.name)
			}

			for _, s := range primitives.Slots() {
				cand, ok := tbl.Lookup(s)
				if !ok {
					continue
				}
				want, _ := ref.Lookup(s)
				for _, stride := range []int{16, 64} {
					for off := 0; off < 40*16; off += 16 * 3 {
						got := cand(pool.A().At(off), stride, pool.B().At(0), stride)
						exp := want(pool.A().At(off), stride, pool.B().At(0), stride)
						if got != exp {
							t.Fatalf("%s %s depth=%d stride=%d off=%d: got %d, want %d",
								inst.name, s, depth, stride, off, got, exp)
						}
					}
				}
			}
		}
	}
}

func TestInstallSubsets(t *testing.T) {
	var sse2 primitives.Table
	InstallSSE2(&sse2)
	if _, ok := sse2.Lookup(primitives.Slot{Metric: primitives.SAD, Partition: primitives.P4x16}); ok {
		t.Fatal("sse2 should not install SAD for 4-wide partitions")
	}
	if _, ok := sse2.Lookup(primitives.Slot{Metric: primitives.SATD, Partition: primitives.P16x16}); ok {
		t.Fatal("sse2 should not install SATD beyond 8x8")
	}
	if sse2.SA8D8x8 != nil {
		t.Fatal("sse2 should not install SA8D")
	}

	var avx2 primitives.Table
	InstallAVX2(&avx2)
	if !avx2.Complete() {
		t.Fatalf("avx2 table has %d slots, want complete", avx2.Populated())
	}
}

func TestAbs(t *testing.T) {
	for _, v := range []int{0, 1, -1, 1023, -1023, 1 << 20, -(1 << 20)} {
		want := v
		if want < 0 {
			want = -want
		}
		if got := abs(v); got != want {
			t.Fatalf("abs(%d) = %d", v, got)
		}
	}
}
