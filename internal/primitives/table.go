package primitives

// Table is one variant's set of comparison functions. Unset entries are nil.
// A nil *Table reads as a table with every slot empty.
type Table struct {
	SATD      [NumPartitions]CompareFunc
	SAD       [NumPartitions]CompareFunc
	SA8D8x8   CompareFunc
	SA8D16x16 CompareFunc
}

// Lookup returns the function installed at s, if any.
func (t *Table) Lookup(s Slot) (CompareFunc, bool) {
	fn := t.get(s)
	return fn, fn != nil
}

// Set installs fn at s. Setting nil clears the slot. Out-of-range
// partitions are ignored.
func (t *Table) Set(s Slot, fn CompareFunc) {
	switch s.Metric {
	case SATD:
		if s.Partition.Valid() {
			t.SATD[s.Partition] = fn
		}
	case SAD:
		if s.Partition.Valid() {
			t.SAD[s.Partition] = fn
		}
	case SA8D8x8:
		t.SA8D8x8 = fn
	case SA8D16x16:
		t.SA8D16x16 = fn
	}
}

func (t *Table) get(s Slot) CompareFunc {
	if t == nil {
		return nil
	}
	switch s.Metric {
	case SATD:
		if s.Partition.Valid() {
			return t.SATD[s.Partition]
		}
	case SAD:
		if s.Partition.Valid() {
			return t.SAD[s.Partition]
		}
	case SA8D8x8:
		return t.SA8D8x8
	case SA8D16x16:
		return t.SA8D16x16
	}
	return nil
}

// Populated returns the number of non-nil slots.
func (t *Table) Populated() int {
	n := 0
	for _, s := range Slots() {
		if t.get(s) != nil {
			n++
		}
	}
	return n
}

// Complete reports whether every slot is populated.
func (t *Table) Complete() bool {
	return t.Populated() == 2*NumPartitions+2
}
