package chasebench

import "unsafe"

// BuildChaseGraph writes a Hamiltonian cycle of next-pointers into base
// according to order: the node at order[i] points to the node at
// order[(i+1) % n]. base must be at least n*nodeStride bytes and aligned to
// at least nodeStride. Only the first PointerSize bytes of each node are
// written.
func BuildChaseGraph(base unsafe.Pointer, n uint64, nodeStride uint64, order []uint64) {
	order = order[:n]
	baseAddr := uintptr(base)
	for i := uint64(0); i < n; i++ {
		from := order[i]
		to := order[(i+1)%n]
		fromPtr := (*unsafe.Pointer)(unsafe.Pointer(baseAddr + uintptr(from)*uintptr(nodeStride)))
		toPtr := unsafe.Pointer(baseAddr + uintptr(to)*uintptr(nodeStride))
		*fromPtr = toPtr
	}
}
