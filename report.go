package chasebench

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// TableHeader renders the two-line comment header that precedes the
// size/latency table.
func TableHeader(cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cache size detection via pointer-chasing (node_stride=%db, pattern=%s", cfg.NodeStride, cfg.Pattern)
	if cfg.Pattern == PatternStride {
		arg := cfg.PatternArg
		if arg == 0 {
			arg = 1
		}
		fmt.Fprintf(&b, ", step=%d", arg)
	}
	b.WriteString(")\n")
	b.WriteString("# size_bytes\tlatency_ns_per_access")
	return b.String()
}

// Summary renders the "Detected cache levels" block.
func (r *Report) Summary() string {
	var b strings.Builder
	b.WriteString("\nDetected cache levels (approx):\n")
	if len(r.Boundaries) == 0 {
		b.WriteString("- No clear cache boundaries detected; try increasing max_bytes or adjusting node_stride.\n")
		return b.String()
	}
	for i, bound := range r.Boundaries {
		fmt.Fprintf(&b, "- %s capacity ~ %s (jump x%.2f)\n", LevelLabel(i), HumanSize(bound.ApproxSizeBytes), bound.Ratio)
	}
	return b.String()
}

// HumanSize formats bytes using the largest unit in {B, KiB, MiB, GiB} for
// which the value is >= 1, with one fractional digit.
func HumanSize(bytes uint64) string {
	units := [...]string{"B", "KiB", "MiB", "GiB"}
	v := float64(bytes)
	u := 0
	for v >= 1024.0 && u < len(units)-1 {
		v /= 1024.0
		u++
	}
	return fmt.Sprintf("%.1f %s", v, units[u])
}

// MarshalJSON renders the report as machine-readable JSON via sonic,
// an opt-in alternative to the textual table/summary for consumers that
// want to post-process results (e.g. cmd/chasebench's --json output). This is
// presentation only: it has no bearing on core measurement semantics and
// introduces no persisted state in the core itself.
func (r *Report) MarshalJSON() ([]byte, error) {
	type jsonBoundary struct {
		ApproxSizeBytes uint64  `json:"approx_size_bytes"`
		Ratio           float64 `json:"ratio"`
		Label           string  `json:"label"`
	}
	type jsonReport struct {
		NodeStride uint64         `json:"node_stride"`
		Pattern    string         `json:"pattern"`
		Samples    []Sample       `json:"samples"`
		Boundaries []jsonBoundary `json:"boundaries"`
	}

	jb := make([]jsonBoundary, len(r.Boundaries))
	for i, bnd := range r.Boundaries {
		jb[i] = jsonBoundary{ApproxSizeBytes: bnd.ApproxSizeBytes, Ratio: bnd.Ratio, Label: LevelLabel(i)}
	}

	return sonic.Marshal(jsonReport{
		NodeStride: r.Config.NodeStride,
		Pattern:    r.Config.Pattern.String(),
		Samples:    r.Samples,
		Boundaries: jb,
	})
}
