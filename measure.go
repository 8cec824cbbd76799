package chasebench

import "unsafe"

// measurer holds the scratch state one Driver reuses across every
// working-set size it measures: the node-stride, the permutation scratch
// (sized for the largest working set), the shared Timer and PRNG, and the
// tuning knobs from Config.
type measurer struct {
	base       unsafe.Pointer
	nodeStride uint64
	pattern    Pattern
	patternArg uint64
	warmupIter int
	targetMS   uint64
	repeats    int
	timer      *Timer
	rng        *PRNG
	order      []uint64 // scratch, length >= maxNodes
}

// measure runs one full measurement for workingSetBytes and returns the
// reported ns/access: build the chase graph, warm it up, adaptively
// calibrate a step count to hit target_ms, then take the minimum
// ns/access over repeats timed runs.
func (m *measurer) measure(workingSetBytes uint64) float64 {
	nodes := workingSetBytes / m.nodeStride
	if nodes < 2 {
		nodes = 2
	}

	BuildOrder(m.order, nodes, m.pattern, m.patternArg, m.rng)
	BuildChaseGraph(m.base, nodes, m.nodeStride, m.order)

	head := m.base
	for w := 0; w < m.warmupIter; w++ {
		Chase(head, nodes)
	}

	targetNS := m.targetMS * 1_000_000
	steps := nodes * InitialStepsNodeMultiplier
	if steps < InitialStepsFloor {
		steps = InitialStepsFloor
	}

	best := float64(-1)
	for r := 0; r < m.repeats; r++ {
		for {
			dt := m.timedChase(head, steps)
			if dt >= targetNS/2 || steps >= MaxSteps {
				break
			}
			steps *= 2
			if steps > MaxSteps {
				steps = MaxSteps
			}
		}

		dt := m.timedChase(head, steps)
		nsPer := float64(dt) / float64(steps)
		if best < 0 || nsPer < best {
			best = nsPer
		}
	}
	return best
}

// timedChase brackets one timed chase of steps with clock reads. Chase is
// noinline and its result escapes through the atomic sink store, which
// keeps the compiler from reordering either clock read across the call —
// the closest Go equivalent to the source's compiler_fence pair.
func (m *measurer) timedChase(head unsafe.Pointer, steps uint64) uint64 {
	t0 := m.timer.NowNS()
	_ = Chase(head, steps)
	t1 := m.timer.NowNS()
	return t1 - t0
}
