package chasebench

// Working-set size bounds
const (
	// MinBytesDefault is the smallest working set measured by default.
	MinBytesDefault = 4 * 1024 // 4 KiB

	// MaxBytesDefault is the largest working set measured by default.
	MaxBytesDefault = 256 * 1024 * 1024 // 256 MiB

	// MaxBytesCeiling is the hard ceiling max_bytes is clamped to.
	MaxBytesCeiling = 4 * 1024 * 1024 * 1024 // 4 GiB

	// MinSizeGeneratorFloor is the smallest candidate size ever emitted,
	// regardless of how small min_bytes is.
	MinSizeGeneratorFloor = 1024
)

// Node layout
const (
	// NodeStrideDefault is the byte distance between consecutive nodes.
	// It must exceed any plausible cache line so that two successive
	// chase loads never share a line.
	NodeStrideDefault = 256

	// PointerSize is the width, in bytes, of the pointer word stored at
	// the head of every node.
	PointerSize = 8
)

// Measurement timing
const (
	// TargetMSDefault is the wall-clock budget, in milliseconds, the
	// adaptive calibration loop aims for per timed run.
	TargetMSDefault = 80

	// RepeatsDefault is the number of timed runs averaged (by minimum)
	// per working-set size.
	RepeatsDefault = 3

	// WarmupItersDefault is the number of untimed warmup chases run
	// before calibration, to prime TLB and caches.
	WarmupItersDefault = 3

	// InitialStepsFloor is the smallest step count the adaptive
	// calibration loop ever starts from.
	InitialStepsFloor = 1000

	// InitialStepsNodeMultiplier scales the initial step count by the
	// node count of the working set under measurement.
	InitialStepsNodeMultiplier = 16

	// MaxSteps caps the adaptive calibration loop's step count.
	MaxSteps = 1 << 62
)

// Size sampling
const (
	// MaxSizeSamples caps the number of candidate sizes SizeGenerator
	// will emit.
	MaxSizeSamples = 1024

	// DenseSamplingCeiling1MiB is the size at or below which quarter-step
	// samples (1.25x, 1.75x) are added.
	DenseSamplingCeiling1MiB = 1 << 20

	// DenseSamplingCeiling128KiB is the size at or below which eighth-step
	// samples (1.125x, 1.375x, 1.625x, 1.875x) are added.
	DenseSamplingCeiling128KiB = 128 << 10
)

// Boundary detection
const (
	// JumpThreshold is the ratio over the running plateau average that
	// marks a candidate boundary.
	JumpThreshold = 1.25

	// LookaheadSlack discounts JumpThreshold when confirming a boundary
	// against the following sample.
	LookaheadSlack = 0.95

	// MinPlateauPoints is the minimum number of samples that must have
	// accumulated since the last boundary before a new one can fire.
	MinPlateauPoints = 2

	// MaxBoundaries caps the number of boundaries a single detection
	// pass will report.
	MaxBoundaries = 8
)

// Debug trail
const (
	// TrailWindow is the number of most-recent raw samples kept for
	// --verbose diagnostic dumps; it never influences measurement.
	TrailWindow = 8
)
