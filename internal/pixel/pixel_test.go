package pixel

import "testing"

func TestMax(t *testing.T) {
	if got := Max(Depth8); got != 255 {
		t.Fatalf("Max(8) = %d, want 255", got)
	}
	if got := Max(Depth10); got != 1023 {
		t.Fatalf("Max(10) = %d, want 1023", got)
	}
}

func TestValidateDepth(t *testing.T) {
	for _, d := range []int{8, 10} {
		if err := ValidateDepth(d); err != nil {
			t.Fatalf("ValidateDepth(%d) = %v", d, err)
		}
	}
	for _, d := range []int{0, 7, 12, 16} {
		if err := ValidateDepth(d); err == nil {
			t.Fatalf("ValidateDepth(%d) should fail", d)
		}
	}
}
