package primitives

// Slot addresses one entry of a Table. Partition is ignored for SA8D kinds.
type Slot struct {
	Metric    Metric
	Partition Partition
}

// String formats the slot the way bench output names it: "satd[8x8]" for
// per-partition metrics and "sa8d_8x8" for the fixed ones.
func (s Slot) String() string {
	if s.Metric.PerPartition() {
		return s.Metric.String() + "[" + s.Partition.String() + "]"
	}
	return s.Metric.String()
}

// Geometry returns the block partition the slot's function operates on.
func (s Slot) Geometry() Partition {
	if p, ok := s.Metric.FixedPartition(); ok {
		return p
	}
	return s.Partition
}

// Slots returns every slot of a table in sweep order.
func Slots() []Slot {
	return SweepOrder(nil)
}

// SweepOrder lists slots in the order a sweep evaluates them: SATD then SAD
// for each partition in index order, followed by SA8D8x8 and SA8D16x16.
// With single set, only that partition's SATD and SAD are returned.
func SweepOrder(single *Partition) []Slot {
	if single != nil {
		return []Slot{{SATD, *single}, {SAD, *single}}
	}

	out := make([]Slot, 0, 2*NumPartitions+2)
	for _, p := range Partitions() {
		out = append(out, Slot{SATD, p}, Slot{SAD, p})
	}
	return append(out, Slot{Metric: SA8D8x8}, Slot{Metric: SA8D16x16})
}
