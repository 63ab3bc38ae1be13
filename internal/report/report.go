// Package report renders a bench summary as a machine-readable document.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-pixcmp/internal/config"
	"github.com/cwbudde/algo-pixcmp/internal/harness"
)

// Report is the serialized form of one bench run.
type Report struct {
	Seed     int64     `json:"seed" yaml:"seed"`
	BitDepth int       `json:"bit_depth" yaml:"bit_depth"`
	CPU      string    `json:"cpu" yaml:"cpu"`
	Verdict  string    `json:"verdict" yaml:"verdict"`
	Variants []Variant `json:"variants" yaml:"variants"`
}

// Variant lists the slots one candidate family reached.
type Variant struct {
	Name    string `json:"name" yaml:"name"`
	Failed  bool   `json:"failed" yaml:"failed"`
	Checked int    `json:"checked" yaml:"checked"`
	Skipped int    `json:"skipped" yaml:"skipped"`
	Slots   []Slot `json:"slots" yaml:"slots"`
}

// Slot is one checked slot. Timing fields are set for passed slots,
// mismatch fields for the failed one.
type Slot struct {
	Slot   string `json:"slot" yaml:"slot"`
	Status string `json:"status" yaml:"status"`

	Iterations    int     `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	CandidateMS   float64 `json:"candidate_ms,omitempty" yaml:"candidate_ms,omitempty"`
	ReferenceMS   float64 `json:"reference_ms,omitempty" yaml:"reference_ms,omitempty"`
	CandidateNsOp float64 `json:"candidate_ns_per_op,omitempty" yaml:"candidate_ns_per_op,omitempty"`
	ReferenceNsOp float64 `json:"reference_ns_per_op,omitempty" yaml:"reference_ns_per_op,omitempty"`
	Speedup       float64 `json:"speedup,omitempty" yaml:"speedup,omitempty"`

	Offset    *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	Candidate *int `json:"candidate,omitempty" yaml:"candidate,omitempty"`
	Reference *int `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// Run identifies the environment a summary was produced in.
type Run struct {
	Seed     int64
	BitDepth int
	CPU      string
}

// New builds a report from sum. Skipped slots are counted, not listed.
func New(run Run, sum *harness.Summary) *Report {
	r := &Report{
		Seed:     run.Seed,
		BitDepth: run.BitDepth,
		CPU:      run.CPU,
		Verdict:  sum.Verdict.String(),
		Variants: make([]Variant, 0, len(sum.Variants)),
	}
	for i := range sum.Variants {
		r.Variants = append(r.Variants, newVariant(&sum.Variants[i]))
	}
	return r
}

func newVariant(vr *harness.VariantResult) Variant {
	v := Variant{
		Name:    vr.Variant.String(),
		Failed:  vr.Failed,
		Skipped: vr.Count(harness.Skipped),
		Slots:   []Slot{},
	}

	var timed []int
	for _, sr := range vr.Slots {
		if sr.Status == harness.Skipped {
			continue
		}
		s := Slot{Slot: sr.Slot.String(), Status: sr.Status.String()}
		switch {
		case sr.Status == harness.Failed:
			off, cand, ref := sr.Outcome.Offset, sr.Outcome.Candidate, sr.Outcome.Reference
			s.Offset, s.Candidate, s.Reference = &off, &cand, &ref
		case sr.Timing != nil:
			s.Iterations = sr.Timing.Iterations
			s.CandidateMS = sr.Timing.CandidateMillis()
			s.ReferenceMS = sr.Timing.ReferenceMillis()
			timed = append(timed, len(v.Slots))
		}
		v.Slots = append(v.Slots, s)
	}
	v.Checked = len(v.Slots)

	derive(v.Slots, timed)
	return v
}

// derive fills per-call costs and speedups for the slots at idx. All slots
// of a run share one iteration count.
func derive(slots []Slot, idx []int) {
	n := len(idx)
	if n == 0 || slots[idx[0]].Iterations <= 0 {
		return
	}

	cand := make([]float64, n)
	ref := make([]float64, n)
	inv := make([]float64, n)
	for i, j := range idx {
		cand[i] = slots[j].CandidateMS
		ref[i] = slots[j].ReferenceMS
		if cand[i] > 0 {
			inv[i] = 1 / cand[i]
		}
	}

	// ms to ns per call
	scale := 1e6 / float64(slots[idx[0]].Iterations)
	candNs := make([]float64, n)
	refNs := make([]float64, n)
	vecmath.ScaleBlock(candNs, cand, scale)
	vecmath.ScaleBlock(refNs, ref, scale)

	speedup := make([]float64, n)
	vecmath.MulBlock(speedup, ref, inv)

	for i, j := range idx {
		slots[j].CandidateNsOp = candNs[i]
		slots[j].ReferenceNsOp = refNs[i]
		slots[j].Speedup = speedup[i]
	}
}

// Encode writes r to w in the given format.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteFile encodes r into path, choosing the format by extension.
func (r *Report) WriteFile(path string) error {
	format, err := config.ReportFormat(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.Encode(&buf, format); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
