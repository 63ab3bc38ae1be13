// Package harness checks optimized pixel comparison kernels against the
// reference kernels and times the ones that agree.
//
// # Sweep
//
// For every enabled variant the Orchestrator walks partitions in index
// order, evaluating SATD then SAD at each, and finally SA8D8x8 and
// SA8D16x16. Slots the variant leaves empty are skipped without output. The
// first disagreement stops the run.
//
// # Conformance
//
// Checker evaluates candidate and reference at Positions successive offsets
// into buffer A (Step samples apart) against buffer B at offset zero, with
// the same row stride for both. Results must be bit-identical.
//
// Known coverage gap: the row stride is the same 16 samples for every
// partition, so blocks wider than 16 read overlapping rows and offsets are
// never aligned to the block width. Alignment- or stride-dependent bugs in
// wide kernels can slip through.
//
// # Timing
//
// Sampler primes each function once, then times Iterations back-to-back
// calls of the candidate followed by the reference on the same clock. The
// figures are advisory and never affect the verdict.
package harness
