package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-pixcmp/internal/config"
	"github.com/cwbudde/algo-pixcmp/internal/harness"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

func sampleSummary() *harness.Summary {
	passed := func(p primitives.Partition, cand, ref time.Duration) harness.SlotResult {
		return harness.SlotResult{
			Slot:    primitives.Slot{Metric: primitives.SAD, Partition: p},
			Status:  harness.Passed,
			Outcome: harness.Outcome{Agree: true, Evaluated: 101},
			Timing:  &harness.Timing{Candidate: cand, Reference: ref, Iterations: 1000},
		}
	}

	return &harness.Summary{
		Verdict: harness.FirstFailureDetected,
		Variants: []harness.VariantResult{
			{
				Variant: primitives.Vectorized,
				Slots: []harness.SlotResult{
					{Slot: primitives.Slot{Metric: primitives.SATD, Partition: primitives.P4x4}, Status: harness.Skipped},
					passed(primitives.P4x4, 2*time.Millisecond, 4*time.Millisecond),
					passed(primitives.P8x8, 1*time.Millisecond, 8*time.Millisecond),
				},
			},
			{
				Variant: primitives.Assembly,
				Failed:  true,
				Slots: []harness.SlotResult{
					{
						Slot:    primitives.Slot{Metric: primitives.SA8D8x8},
						Status:  harness.Failed,
						Outcome: harness.Outcome{Offset: 32, Candidate: 11, Reference: 10, Evaluated: 3},
					},
				},
			},
		},
	}
}

func TestNew(t *testing.T) {
	r := New(Run{Seed: 1, BitDepth: 8, CPU: "AVX2"}, sampleSummary())

	assert.Equal(t, "first-failure-detected", r.Verdict)
	assert.Equal(t, "AVX2", r.CPU)
	require.Len(t, r.Variants, 2)

	vec := r.Variants[0]
	assert.Equal(t, "vector", vec.Name)
	assert.False(t, vec.Failed)
	assert.Equal(t, 2, vec.Checked)
	assert.Equal(t, 1, vec.Skipped)
	require.Len(t, vec.Slots, 2)

	s := vec.Slots[0]
	assert.Equal(t, "sad[4x4]", s.Slot)
	assert.Equal(t, "passed", s.Status)
	assert.Equal(t, 1000, s.Iterations)
	assert.InDelta(t, 2.0, s.CandidateMS, 1e-12)
	assert.InDelta(t, 2000.0, s.CandidateNsOp, 1e-9)
	assert.InDelta(t, 4000.0, s.ReferenceNsOp, 1e-9)
	assert.InDelta(t, 2.0, s.Speedup, 1e-12)
	assert.Nil(t, s.Offset)

	assert.InDelta(t, 8.0, vec.Slots[1].Speedup, 1e-12)

	asm := r.Variants[1]
	assert.True(t, asm.Failed)
	require.Len(t, asm.Slots, 1)
	f := asm.Slots[0]
	assert.Equal(t, "sa8d_8x8", f.Slot)
	assert.Equal(t, "failed", f.Status)
	require.NotNil(t, f.Offset)
	assert.Equal(t, 32, *f.Offset)
	assert.Equal(t, 11, *f.Candidate)
	assert.Equal(t, 10, *f.Reference)
	assert.Zero(t, f.Speedup)
}

func TestNewZeroCandidateTime(t *testing.T) {
	sum := &harness.Summary{Verdict: harness.AllPassed, Variants: []harness.VariantResult{{
		Variant: primitives.Vectorized,
		Slots: []harness.SlotResult{{
			Slot:   primitives.Slot{Metric: primitives.SAD, Partition: primitives.P4x4},
			Status: harness.Passed,
			Timing: &harness.Timing{Reference: time.Millisecond, Iterations: 10},
		}},
	}}}

	r := New(Run{}, sum)
	assert.Zero(t, r.Variants[0].Slots[0].Speedup)
	assert.InDelta(t, 1e5, r.Variants[0].Slots[0].ReferenceNsOp, 1e-9)
}

func TestEncodeJSON(t *testing.T) {
	r := New(Run{Seed: 3, BitDepth: 10, CPU: "none"}, sampleSummary())

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, config.FormatJSON))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *r, got)
	assert.Contains(t, buf.String(), `"reference_ns_per_op": 4000`)
	assert.NotContains(t, buf.String(), `"offset": 0`)
}

func TestEncodeYAML(t *testing.T) {
	r := New(Run{Seed: 3, BitDepth: 8, CPU: "NEON"}, sampleSummary())

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, config.FormatYAML))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *r, got)
	assert.Contains(t, buf.String(), "verdict: first-failure-detected")
}

func TestEncodeUnknownFormat(t *testing.T) {
	r := New(Run{}, &harness.Summary{Verdict: harness.AllPassed})
	assert.Error(t, r.Encode(&bytes.Buffer{}, "xml"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := New(Run{Seed: 1, BitDepth: 8}, sampleSummary())

	path := filepath.Join(dir, "run.yml")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sad[8x8]")

	assert.Error(t, r.WriteFile(filepath.Join(dir, "run.csv")))
	assert.Error(t, r.WriteFile(filepath.Join(dir, "missing", "run.json")))
}
