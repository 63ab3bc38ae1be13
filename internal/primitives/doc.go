// Package primitives describes the pixel comparison primitive tables under
// test: the 25 block partitions, the metric kinds, and Table, a fixed-size
// map from (metric, partition) to an optional CompareFunc.
//
// One Table exists per variant. The reference table is always fully
// populated; optimized tables populate any subset. A nil slot means "not
// implemented for this metric and partition" and is never invoked.
package primitives
