package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-pixcmp/internal/buffer"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// Variant is one optional candidate family to sweep. A nil Table sweeps as
// if every slot were absent.
type Variant struct {
	Kind  primitives.Variant
	Table *primitives.Table
}

func (v Variant) banner() string {
	if v.Kind == primitives.Assembly {
		return "Testing assembly primitives"
	}
	return "Testing vector class primitives"
}

func (v Variant) label() string {
	if v.Kind == primitives.Assembly {
		return "assembly"
	}
	return "vectorized"
}

// Options restrict a run.
type Options struct {
	// Single, when set, limits every sweep to that partition's SATD and
	// SAD slots. The sweep ends after them whether they pass or fail.
	Single *primitives.Partition
}

// Orchestrator sequences conformance checks and timings over the variants
// of a run. It holds no sweep state between calls to Run.
type Orchestrator struct {
	Checker Checker
	Sampler Sampler
	Buffers *buffer.Pool

	// Out receives banners and one line per checked slot.
	Out io.Writer

	// Err receives the fatal diagnostic of a failing variant.
	Err io.Writer

	Logger *slog.Logger
}

// New returns an orchestrator using policy p over pool, with output
// discarded and logs suppressed until the fields are set.
func New(p Policy, pool *buffer.Pool, clock Clock) *Orchestrator {
	return &Orchestrator{
		Checker: p.Checker(),
		Sampler: p.Sampler(clock),
		Buffers: pool,
		Out:     io.Discard,
		Err:     io.Discard,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run sweeps each variant in order against ref. A mismatch in any variant
// ends the run with a *MismatchError; no further slot or variant is
// evaluated. With no variants the run passes vacuously.
func (o *Orchestrator) Run(ctx context.Context, ref *primitives.Table, variants []Variant, opts Options) (*Summary, error) {
	if opts.Single != nil && !opts.Single.Valid() {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidPartition, int(*opts.Single), primitives.NumPartitions-1)
	}

	for _, buf := range []*buffer.Buffer{o.Buffers.A(), o.Buffers.B()} {
		if err := o.Checker.Fits(buf.Len()); err != nil {
			return nil, err
		}
	}

	log := o.logger()
	state := Idle
	transition := func(to State) {
		log.Debug("run state", "from", state, "to", to)
		state = to
	}

	transition(Running)
	summary := &Summary{}

	for _, v := range variants {
		fmt.Fprintln(o.out(), v.banner())
		log.Info("sweeping variant", "variant", v.Kind, "populated", v.Table.Populated())

		res, err := o.sweep(ctx, ref, v, opts)
		summary.Variants = append(summary.Variants, res)
		if err != nil {
			var mm *MismatchError
			if errors.As(err, &mm) {
				fmt.Fprintf(o.errOut(), "pixbench: at least one %s primitive has failed. Go and fix that Right Now!\n", v.Kind)
				log.Error("conformance mismatch", "variant", v.Kind, "slot", mm.Slot.String(), "offset", mm.Offset)
				transition(FirstFailureDetected)
			}
			summary.Verdict = state
			transition(Terminal)
			return summary, err
		}
	}

	transition(AllPassed)
	summary.Verdict = state
	transition(Terminal)
	return summary, nil
}

// sweep walks one variant's slots in order.
func (o *Orchestrator) sweep(ctx context.Context, ref *primitives.Table, v Variant, opts Options) (VariantResult, error) {
	log := o.logger()
	out := o.out()
	res := VariantResult{Variant: v.Kind}

	for _, slot := range primitives.SweepOrder(opts.Single) {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		cand, ok := v.Table.Lookup(slot)
		if !ok {
			res.Slots = append(res.Slots, SlotResult{Slot: slot, Status: Skipped})
			continue
		}
		want, ok := ref.Lookup(slot)
		if !ok {
			log.Warn("reference slot missing", "slot", slot.String())
			res.Slots = append(res.Slots, SlotResult{Slot: slot, Status: Skipped})
			continue
		}

		outcome := o.Checker.Check(want, cand, o.Buffers.A(), o.Buffers.B())
		if !outcome.Agree {
			fmt.Fprintf(out, "%s: failed!\n", slot)
			log.Debug("slot checked", "slot", slot.String(), "status", Failed, "offset", outcome.Offset)

			res.Slots = append(res.Slots, SlotResult{Slot: slot, Status: Failed, Outcome: outcome})
			res.Failed = true
			return res, &MismatchError{
				Variant:   v.Kind,
				Slot:      slot,
				Offset:    outcome.Offset,
				Candidate: outcome.Candidate,
				Reference: outcome.Reference,
			}
		}

		fmt.Fprintf(out, "%s: passed ", slot)
		timing := o.Sampler.Sample(want, cand, o.Buffers.A(), o.Buffers.B())
		fmt.Fprintf(out, "\t%s: (%1.4f ms) \tC: (%1.4f ms) %d iterations\n",
			v.label(), timing.CandidateMillis(), timing.ReferenceMillis(), timing.Iterations)
		log.Debug("slot checked", "slot", slot.String(), "status", Passed,
			"candidate_ms", timing.CandidateMillis(), "reference_ms", timing.ReferenceMillis())

		res.Slots = append(res.Slots, SlotResult{Slot: slot, Status: Passed, Outcome: outcome, Timing: &timing})
	}

	return res, nil
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Orchestrator) out() io.Writer {
	if o.Out == nil {
		return io.Discard
	}
	return o.Out
}

func (o *Orchestrator) errOut() io.Writer {
	if o.Err == nil {
		return io.Discard
	}
	return o.Err
}
