package chasebench

import (
	"testing"
	"unsafe"
)

func TestBuildChaseGraphFormsSingleCycle(t *testing.T) {
	const nodeStride = 64
	for _, n := range []uint64{2, 3, 8, 100} {
		buf := make([]byte, n*nodeStride)
		base := unsafe.Pointer(&buf[0])

		order := make([]uint64, n)
		rng := NewSeededPRNG(uint64(n) + 1)
		BuildOrder(order, n, PatternRandom, 0, rng)
		BuildChaseGraph(base, n, nodeStride, order)

		visited := make([]bool, n)
		p := base
		var steps uint64
		for steps = 0; steps < n; steps++ {
			idx := (uintptr(p) - uintptr(base)) / nodeStride
			if idx >= uintptr(n) {
				t.Fatalf("n=%d: pointer landed outside node range at step %d", n, steps)
			}
			if visited[idx] {
				t.Fatalf("n=%d: node %d revisited before completing the cycle (subcycle)", n, idx)
			}
			visited[idx] = true
			p = *(*unsafe.Pointer)(p)
		}

		if p != base {
			t.Fatalf("n=%d: cycle did not return to the starting node after %d steps", n, n)
		}
		for i, v := range visited {
			if !v {
				t.Fatalf("n=%d: node %d never visited", n, i)
			}
		}
	}
}

func TestChaseFollowsGraph(t *testing.T) {
	const nodeStride = 64
	const n = 16
	buf := make([]byte, n*nodeStride)
	base := unsafe.Pointer(&buf[0])

	order := make([]uint64, n)
	buildOrderSequential(order, n)
	BuildChaseGraph(base, n, nodeStride, order)

	// n steps from any node returns to that same node.
	got := Chase(base, n)
	if got != base {
		t.Fatalf("Chase(base, %d) = %p, want %p", n, got, base)
	}
}
