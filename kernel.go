package chasebench

import (
	"sync/atomic"
	"unsafe"
)

// sink is the process-wide observable location the chase kernel escapes its
// result to. It is written once per chase call and never read by the
// program; its sole purpose is to give the final pointer an observer the
// compiler cannot analyze away, so the preceding dependent loads cannot be
// proven dead. Do not generalize this into a logger.
var sink unsafe.Pointer

// Chase performs steps dependent pointer-sized loads starting from head and
// returns the final pointer. Each load's address is the previous load's
// result, so the loop carries a true data dependency the compiler cannot
// speculate across; there is no prefetch hint anywhere in this function.
//
// Chase is marked noinline: inlining it into a caller that can see a
// constant head would let the compiler treat the whole chain as loop
// invariant and hoist or eliminate it, which would silently invalidate
// every measurement taken with it.
//
//go:noinline
func Chase(head unsafe.Pointer, steps uint64) unsafe.Pointer {
	p := head
	for i := uint64(0); i < steps; i++ {
		p = *(*unsafe.Pointer)(p)
	}
	atomic.StorePointer(&sink, p)
	return p
}
