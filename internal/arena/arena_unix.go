//go:build linux || darwin

package arena

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// New allocates a size-byte arena via an anonymous mmap. mmap regions are
// always page-aligned, which satisfies any power-of-two node_stride up to
// the host page size without any further bookkeeping. If the mapping's base
// is not a multiple of align (e.g. align 24), New returns an error.
func New(size int, align int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: invalid size %d", size)
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	base := unsafe.Pointer(&b[0])
	if uintptr(base)%uintptr(align) != 0 {
		_ = unix.Munmap(b)
		return nil, fmt.Errorf("arena: mmap base not aligned to %d", align)
	}
	return &Arena{
		base:      base,
		size:      size,
		keepAlive: b,
		release:   func() { _ = unix.Munmap(b) },
	}, nil
}
