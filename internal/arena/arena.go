// Package arena provides the page-aligned byte region that backs the
// pointer-chase Buffer: a contiguous allocation addressed by raw offsets,
// the same shape as a bump-pointer byte arena.
package arena

import "unsafe"

// Arena owns a contiguous region of raw bytes, aligned to at least the
// value passed to New.
type Arena struct {
	base unsafe.Pointer
	size int
	// keepAlive anchors whatever Go-managed allocation base points into,
	// so the garbage collector never reclaims it out from under base.
	keepAlive interface{}
	release   func()
}

// Base returns the arena's aligned base address.
func (a *Arena) Base() unsafe.Pointer { return a.base }

// Size returns the arena's size in bytes.
func (a *Arena) Size() int { return a.size }

// Bytes returns a []byte view over the full arena, for one-time zeroing.
func (a *Arena) Bytes() []byte {
	return unsafe.Slice((*byte)(a.base), a.size)
}

// Zero fills the entire arena with zero bytes.
func (a *Arena) Zero() {
	b := a.Bytes()
	for i := range b {
		b[i] = 0
	}
}

// Close releases the underlying memory. After Close, Base and Bytes must
// not be used.
func (a *Arena) Close() error {
	if a.release != nil {
		r := a.release
		a.release = nil
		r()
	}
	return nil
}
