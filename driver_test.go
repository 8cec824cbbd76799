package chasebench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsMinBytesBelowNodeStride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NodeStride = 256
	cfg.MinBytes = 10 // well below node_stride

	out, err := cfg.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if out.MinBytes != out.NodeStride*2 {
		t.Fatalf("MinBytes = %d, want %d (2*NodeStride)", out.MinBytes, out.NodeStride*2)
	}
}

func TestNormalizeRoundsNodeStrideToPointerMultiple(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NodeStride = 17 // not a multiple of 8

	out, err := cfg.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if out.NodeStride%PointerSize != 0 {
		t.Fatalf("NodeStride %d not a multiple of PointerSize %d", out.NodeStride, PointerSize)
	}
	if out.NodeStride < 2*PointerSize {
		t.Fatalf("NodeStride %d below 2*PointerSize", out.NodeStride)
	}
}

func TestNormalizeClampsMaxBytesToCeiling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBytes = MaxBytesCeiling * 4

	out, err := cfg.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if out.MaxBytes != MaxBytesCeiling {
		t.Fatalf("MaxBytes = %d, want %d", out.MaxBytes, MaxBytesCeiling)
	}
}

func TestRunProducesAscendingSamples(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.MinBytes = 4 << 10
	cfg.MaxBytes = 256 << 10
	cfg.NodeStride = 64
	cfg.Repeats = 1
	cfg.WarmupIter = 0
	cfg.TargetMS = 1
	cfg.PrintTable = false
	cfg.Pattern = PatternSequential

	report, err := Run(cfg)
	if err != nil {
		t.Skipf("Run failed (likely sandboxed environment without mmap): %v", err)
	}
	assert.NotEmpty(report.Samples)

	for i := 1; i < len(report.Samples); i++ {
		assert.GreaterOrEqual(report.Samples[i].WorkingSetBytes, report.Samples[i-1].WorkingSetBytes)
	}
	for _, s := range report.Samples {
		assert.Greater(s.NsPerAccess, 0.0)
	}
}

func TestRunHonorsOnSampleCallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinBytes = 4 << 10
	cfg.MaxBytes = 32 << 10
	cfg.NodeStride = 64
	cfg.Repeats = 1
	cfg.WarmupIter = 0
	cfg.TargetMS = 1
	cfg.PrintTable = false

	var callbackCount int
	cfg.OnSample = func(Sample) { callbackCount++ }

	report, err := Run(cfg)
	if err != nil {
		t.Skipf("Run failed (likely sandboxed environment without mmap): %v", err)
	}
	if callbackCount != len(report.Samples) {
		t.Fatalf("OnSample called %d times, want %d", callbackCount, len(report.Samples))
	}
}

func TestRunIsDeterministicWithFixedSeedAndPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinBytes = 4 << 10
	cfg.MaxBytes = 8 << 10
	cfg.NodeStride = 64
	cfg.Repeats = 1
	cfg.WarmupIter = 0
	cfg.TargetMS = 1
	cfg.PrintTable = false
	cfg.Pattern = PatternSequential
	cfg.Seed = 99

	r1, err := Run(cfg)
	if err != nil {
		t.Skipf("Run failed (likely sandboxed environment without mmap): %v", err)
	}
	r2, err := Run(cfg)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if len(r1.Samples) != len(r2.Samples) {
		t.Fatalf("sample count differs across identical runs: %d vs %d", len(r1.Samples), len(r2.Samples))
	}
	for i := range r1.Samples {
		if r1.Samples[i].WorkingSetBytes != r2.Samples[i].WorkingSetBytes {
			t.Fatalf("working set size differs at index %d: %d vs %d", i, r1.Samples[i].WorkingSetBytes, r2.Samples[i].WorkingSetBytes)
		}
	}
}
