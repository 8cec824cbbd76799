package chasebench

import (
	"fmt"
	"log"
	"os"

	"github.com/cachelab/chasebench/internal/arena"
	"github.com/cachelab/chasebench/internal/trail"
)

// Config holds the effective configuration for one Run. See DefaultConfig
// for defaults and Normalize for the clamping policy applied before
// measurement starts.
type Config struct {
	MinBytes   uint64
	MaxBytes   uint64
	NodeStride uint64
	TargetMS   uint64
	Repeats    int
	WarmupIter int
	Pattern    Pattern
	PatternArg uint64
	PrintTable bool
	Verbose    bool

	// Seed pins the PRNG seed for reproducible runs. Zero means "derive
	// from the timer, stack address and pid."
	Seed uint64

	// OnSample, if non-nil, is invoked synchronously after every sample
	// is recorded, in ascending size order. It is an optional streaming
	// hook for shells like cmd/live; the core never depends on it.
	OnSample func(Sample)
}

// DefaultConfig returns the recommended defaults for a general-purpose run.
func DefaultConfig() Config {
	return Config{
		MinBytes:   MinBytesDefault,
		MaxBytes:   MaxBytesDefault,
		NodeStride: NodeStrideDefault,
		TargetMS:   TargetMSDefault,
		Repeats:    RepeatsDefault,
		WarmupIter: WarmupItersDefault,
		Pattern:    PatternRandom,
		PatternArg: 1,
		PrintTable: true,
	}
}

// Normalize clamps an effective configuration into valid ranges rather than
// rejecting it: node_stride is forced to at least 2*PointerSize and to a
// multiple of PointerSize; min_bytes is clamped up to at least
// 2*node_stride; max_bytes is clamped into [min_bytes, MaxBytesCeiling].
func (c Config) Normalize() (Config, error) {
	out := c

	if out.NodeStride < 2*PointerSize {
		out.NodeStride = 2 * PointerSize
	}
	if rem := out.NodeStride % PointerSize; rem != 0 {
		out.NodeStride += PointerSize - rem
	}

	floor := out.NodeStride * 2
	if out.MinBytes < floor {
		out.MinBytes = floor
	}
	if out.MaxBytes < out.MinBytes {
		out.MaxBytes = out.MinBytes
	}
	if out.MaxBytes > MaxBytesCeiling {
		out.MaxBytes = MaxBytesCeiling
	}

	if out.Repeats < 1 {
		out.Repeats = 1
	}
	if out.WarmupIter < 0 {
		out.WarmupIter = 0
	}
	if out.TargetMS == 0 {
		out.TargetMS = TargetMSDefault
	}

	return out, nil
}

// Report is the outcome of one Run: the ordered samples and the detected
// cache-level boundaries, plus the configuration that produced them.
//
// Boundary labels (L1, L2, ...) are positional and heuristic: nothing
// guarantees the first detected boundary is truly L1, particularly if
// min_bytes already starts above L1's capacity.
type Report struct {
	Config     Config
	Samples    []Sample
	Boundaries []Boundary
}

// Run allocates a Buffer, generates the working-set size list, measures
// each size in ascending order, and runs boundary detection over the
// result. It is the pure measurement API: no flag parsing, no CPUID
// decode, no os.Exit — callers get errors back.
func Run(cfg Config) (*Report, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}

	sizes := GenerateSizes(cfg.MinBytes, cfg.MaxBytes)
	if len(sizes) == 0 {
		return nil, ErrEmptySizeList
	}

	timer, err := NewTimer()
	if err != nil {
		return nil, err
	}

	var rng *PRNG
	if cfg.Seed != 0 {
		rng = NewSeededPRNG(cfg.Seed)
	} else {
		rng = NewPRNG(timer)
	}

	originalCount := len(sizes)
	buf, sizes, err := allocateWithShrink(sizes, cfg.NodeStride)
	if err != nil {
		return nil, err
	}
	shrunk := len(sizes) < originalCount
	defer buf.Close()
	buf.Zero()

	maxNodes := uint64(buf.Size()) / cfg.NodeStride
	order := make([]uint64, maxNodes)

	m := &measurer{
		base:       buf.Base(),
		nodeStride: cfg.NodeStride,
		pattern:    cfg.Pattern,
		patternArg: cfg.PatternArg,
		warmupIter: cfg.WarmupIter,
		targetMS:   cfg.TargetMS,
		repeats:    cfg.Repeats,
		timer:      timer,
		rng:        rng,
		order:      order,
	}

	if cfg.PrintTable {
		fmt.Println(TableHeader(cfg))
	}

	tr := trail.New(TrailWindow)
	samples := make([]Sample, 0, len(sizes))
	for _, ws := range sizes {
		ns := m.measure(ws)
		s := Sample{WorkingSetBytes: ws, NsPerAccess: ns}
		samples = append(samples, s)
		tr.Push(trail.Entry{WorkingSetBytes: ws, NsPerAccess: ns, Shrunk: shrunk})

		if cfg.PrintTable {
			fmt.Printf("%d\t%.3f\n", ws, ns)
		}
		if cfg.OnSample != nil {
			cfg.OnSample(s)
		}
	}

	if cfg.Verbose {
		for _, e := range tr.Entries() {
			log.Printf("trail: size=%d ns/access=%.3f shrunk=%v", e.WorkingSetBytes, e.NsPerAccess, e.Shrunk)
		}
	}

	boundaries := DetectBoundaries(samples)
	return &Report{Config: cfg, Samples: samples, Boundaries: boundaries}, nil
}

// allocateWithShrink allocates a buffer sized to the largest candidate
// size, retrying with progressively smaller sizes on allocation failure
// until one succeeds or the list is exhausted. It returns the arena and
// the size list trimmed to sizes that fit inside the allocated buffer.
func allocateWithShrink(sizes []uint64, nodeStride uint64) (*arena.Arena, []uint64, error) {
	idx := len(sizes) - 1
	for idx >= 0 {
		allocBytes := sizes[idx]
		a, err := arena.New(int(allocBytes), int(nodeStride))
		if err == nil {
			return a, sizes[:idx+1], nil
		}
		fmt.Fprintf(os.Stderr, "chasebench: allocation of %d bytes failed (%v)\n", allocBytes, err)
		idx--
	}
	return nil, nil, ErrBufferAllocFailed
}
