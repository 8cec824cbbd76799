package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// cpuBanner describes the host's cache-relevant instruction set extensions.
// It is purely decorative: nothing in the measurement core consults it, and
// it exists only so a run's output records what platform produced it.
func cpuBanner() string {
	switch runtime.GOARCH {
	case "amd64":
		var feats []string
		if cpu.X86.HasAVX {
			feats = append(feats, "AVX")
		}
		if cpu.X86.HasAVX2 {
			feats = append(feats, "AVX2")
		}
		if cpu.X86.HasAVX512F {
			feats = append(feats, "AVX512F")
		}
		if cpu.X86.HasSSE42 {
			feats = append(feats, "SSE4.2")
		}
		return fmt.Sprintf("%s/%s, %d CPUs, features: %s", runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), joinOrNone(feats))
	case "arm64":
		var feats []string
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "NEON")
		}
		if cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP {
			feats = append(feats, "FP16")
		}
		return fmt.Sprintf("%s/%s, %d CPUs, features: %s", runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), joinOrNone(feats))
	default:
		return fmt.Sprintf("%s/%s, %d CPUs", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	}
}

func joinOrNone(feats []string) string {
	if len(feats) == 0 {
		return "none detected"
	}
	out := feats[0]
	for _, f := range feats[1:] {
		out += ", " + f
	}
	return out
}
