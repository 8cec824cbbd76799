package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAlignedAndZeroed(t *testing.T) {
	assert := assert.New(t)

	a, err := New(4096, 256)
	if err != nil {
		t.Skipf("arena.New failed (likely sandboxed environment): %v", err)
	}
	defer a.Close()

	assert.Equal(4096, a.Size())
	assert.Equal(uintptr(0), uintptr(a.Base())%256)

	assert.Len(a.Bytes(), 4096)

	a.Zero()
	for i, v := range a.Bytes() {
		if v != 0 {
			t.Fatalf("byte %d not zero after Zero(): %d", i, v)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	a, err := New(4096, 64)
	if err != nil {
		t.Skipf("arena.New failed (likely sandboxed environment): %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	if _, err := New(0, 64); err == nil {
		t.Fatal("New(0, 64) succeeded, want error")
	}
	if _, err := New(-1, 64); err == nil {
		t.Fatal("New(-1, 64) succeeded, want error")
	}
}
