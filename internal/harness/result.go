package harness

import "github.com/cwbudde/algo-pixcmp/internal/primitives"

// SlotResult records what happened at one slot of a sweep.
type SlotResult struct {
	Slot    primitives.Slot
	Status  Status
	Outcome Outcome

	// Timing is set only for Passed slots.
	Timing *Timing
}

// VariantResult collects the slots a variant sweep reached, in order.
type VariantResult struct {
	Variant primitives.Variant
	Slots   []SlotResult
	Failed  bool
}

// Count returns how many reached slots have status s.
func (r *VariantResult) Count(s Status) int {
	n := 0
	for _, sr := range r.Slots {
		if sr.Status == s {
			n++
		}
	}
	return n
}

// Summary is the outcome of a Run.
type Summary struct {
	// Verdict is AllPassed or FirstFailureDetected.
	Verdict  State
	Variants []VariantResult
}

// Passed reports whether the run finished without a mismatch.
func (s *Summary) Passed() bool {
	return s.Verdict == AllPassed
}

// Checked returns every non-skipped slot result across variants.
func (s *Summary) Checked() []SlotResult {
	var out []SlotResult
	for _, v := range s.Variants {
		for _, sr := range v.Slots {
			if sr.Status != Skipped {
				out = append(out, sr)
			}
		}
	}
	return out
}
