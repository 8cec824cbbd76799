//go:build !linux && !darwin

package arena

import (
	"fmt"
	"unsafe"
)

// New allocates a padded Go byte slice and returns the sub-slice address
// aligned to align. The backing slice is kept reachable through the
// returned Arena for as long as the Arena itself is, so Go's non-moving
// garbage collector never invalidates base.
func New(size int, align int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: invalid size %d", size)
	}
	buf := make([]byte, size+align)
	start := uintptr(unsafe.Pointer(&buf[0]))
	offset := (uintptr(align) - start%uintptr(align)) % uintptr(align)

	return &Arena{
		base:      unsafe.Pointer(&buf[offset]),
		size:      size,
		keepAlive: buf,
	}, nil
}
