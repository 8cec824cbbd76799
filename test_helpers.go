package chasebench

import "testing"

// RunOrFail runs cfg and fails the test if Run returns an error.
func RunOrFail(t testing.TB, cfg Config) *Report {
	t.Helper()
	r, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return r
}

// NewTimerOrSkip returns a Timer, skipping the test if the host has no
// usable monotonic clock rather than failing outright — this only happens
// on exotic platforms and isn't something a test run should be red for.
func NewTimerOrSkip(t testing.TB) *Timer {
	t.Helper()
	timer, err := NewTimer()
	if err != nil {
		t.Skipf("no monotonic clock available: %v", err)
	}
	return timer
}
