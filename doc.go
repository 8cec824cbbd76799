// Package chasebench infers the capacity of each CPU cache level by timing
// a pointer-chase over working sets of geometrically increasing size.
//
// The package exposes a pure measurement API: build a Config, call Run, and
// get back a Report holding the size/latency samples and the detected cache
// boundaries. Flag parsing, help text, CPUID decoding, remote orchestration
// and live plotting are all left to the cmd/ shells in this module; none of
// that belongs to the measurement core.
//
// The core pieces are:
//   - a monotonic Timer
//   - a small deterministic PRNG for reproducible shuffles
//   - an OrderBuilder that lays out node visitation patterns (random,
//     sequential, reverse, stride, interleave, gray, bitrev)
//   - a ChaseGraph builder that writes a Hamiltonian cycle of next-pointers
//     into a byte arena
//   - a ChaseKernel that performs the timed dependent-load chase
//   - a SizeGenerator that produces candidate working-set sizes
//   - a Measurer that adaptively times one working set
//   - a BoundaryDetector that turns the latency curve into cache estimates
package chasebench
