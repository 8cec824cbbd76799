package chasebench

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTableHeaderIncludesPatternAndStride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NodeStride = 256
	cfg.Pattern = PatternRandom

	header := TableHeader(cfg)
	if !strings.Contains(header, "node_stride=256b") {
		t.Errorf("header missing node_stride: %q", header)
	}
	if !strings.Contains(header, "pattern=random") {
		t.Errorf("header missing pattern: %q", header)
	}
	if strings.Contains(header, "step=") {
		t.Errorf("random pattern header should not mention step: %q", header)
	}
}

func TestTableHeaderIncludesStepForStride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = PatternStride
	cfg.PatternArg = 5

	header := TableHeader(cfg)
	if !strings.Contains(header, "step=5") {
		t.Errorf("stride pattern header missing step: %q", header)
	}
}

func TestReportSummaryNoBoundaries(t *testing.T) {
	r := &Report{Config: DefaultConfig()}
	summary := r.Summary()
	if !strings.Contains(summary, "No clear cache boundaries") {
		t.Errorf("expected fallback line, got %q", summary)
	}
}

func TestReportSummaryListsBoundaries(t *testing.T) {
	r := &Report{
		Config:     DefaultConfig(),
		Boundaries: []Boundary{{ApproxSizeBytes: 32 << 10, Ratio: 2.5}, {ApproxSizeBytes: 256 << 10, Ratio: 3.0}},
	}
	summary := r.Summary()
	if !strings.Contains(summary, "L1 capacity ~ 32.0 KiB (jump x2.50)") {
		t.Errorf("summary missing L1 line: %q", summary)
	}
	if !strings.Contains(summary, "L2 capacity ~ 256.0 KiB (jump x3.00)") {
		t.Errorf("summary missing L2 line: %q", summary)
	}
}

func TestReportMarshalJSON(t *testing.T) {
	r := &Report{
		Config:     DefaultConfig(),
		Samples:    []Sample{{WorkingSetBytes: 4096, NsPerAccess: 1.234}},
		Boundaries: []Boundary{{ApproxSizeBytes: 32 << 10, Ratio: 2.5}},
	}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if _, ok := decoded["samples"]; !ok {
		t.Errorf("decoded JSON missing samples key: %s", b)
	}
	if _, ok := decoded["boundaries"]; !ok {
		t.Errorf("decoded JSON missing boundaries key: %s", b)
	}
}
