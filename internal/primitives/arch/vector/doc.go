// Package vector provides the Vectorized variant: portable Go kernels laid
// out for the compiler (row slices hoisted, inner loops unrolled, branchless
// absolute values, fixed-size butterflies).
//
// The kernels themselves run anywhere; the registered SIMD level only gates
// which subset a capability identifier installs.
package vector
