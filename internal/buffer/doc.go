// Package buffer owns the two read-only pixel buffers shared by every
// conformance check and timing loop of a bench run.
//
// Both buffers are allocated and seeded once by NewPool and never written
// again. Kernels receive sub-slices via Buffer.At; nothing in the bench
// mutates them, so no locking is needed.
package buffer
