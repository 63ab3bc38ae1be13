// Package testutil provides deterministic clocks and fault-injecting
// primitive tables for harness tests.
package testutil

import (
	"github.com/cwbudde/algo-pixcmp/internal/pixel"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
)

// OffBy returns fn with delta added to every result.
func OffBy(fn primitives.CompareFunc, delta int) primitives.CompareFunc {
	return func(a []pixel.Sample, sa int, b []pixel.Sample, sb int) int {
		return fn(a, sa, b, sb) + delta
	}
}

// FailAfter returns fn, except that calls after the first n return a wrong
// result. It models a kernel that is only wrong at larger offsets.
func FailAfter(fn primitives.CompareFunc, n int) primitives.CompareFunc {
	calls := 0
	return func(a []pixel.Sample, sa int, b []pixel.Sample, sb int) int {
		calls++
		v := fn(a, sa, b, sb)
		if calls > n {
			return v + 1
		}
		return v
	}
}

// Copy returns a shallow copy of t.
func Copy(t *primitives.Table) *primitives.Table {
	c := *t
	return &c
}

// Only returns a table populated at slot alone with fn.
func Only(slot primitives.Slot, fn primitives.CompareFunc) *primitives.Table {
	t := &primitives.Table{}
	t.Set(slot, fn)
	return t
}

// Recorder wraps table entries to record which slots were invoked.
type Recorder struct {
	calls map[primitives.Slot]int
	order []primitives.Slot
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{calls: make(map[primitives.Slot]int)}
}

// Wrap returns a copy of t whose populated entries report to r.
func (r *Recorder) Wrap(t *primitives.Table) *primitives.Table {
	out := &primitives.Table{}
	for _, s := range primitives.Slots() {
		fn, ok := t.Lookup(s)
		if !ok {
			continue
		}
		slot, inner := s, fn
		out.Set(slot, func(a []pixel.Sample, sa int, b []pixel.Sample, sb int) int {
			if r.calls[slot] == 0 {
				r.order = append(r.order, slot)
			}
			r.calls[slot]++
			return inner(a, sa, b, sb)
		})
	}
	return out
}

// Calls returns how often slot was invoked.
func (r *Recorder) Calls(slot primitives.Slot) int {
	return r.calls[slot]
}

// Order returns the slots in the order they were first invoked.
func (r *Recorder) Order() []primitives.Slot {
	return append([]primitives.Slot(nil), r.order...)
}
