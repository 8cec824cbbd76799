package chasebench

import (
	"encoding/binary"
	"os"
	"unsafe"

	"github.com/zeebo/xxh3"
)

// PRNG is a small, reproducible 64-bit generator used to build shuffled
// node permutations. Given the same seed and sequence of calls, its output
// is identical across runs and platforms.
type PRNG struct {
	state uint64
}

// NewPRNG constructs a PRNG seeded from the timer, the address of a stack
// slot, and the process identifier, mixed through xxh3 rather than a bare
// XOR fold. A zero digest is replaced by a fixed non-zero constant so the
// xorshift core never gets stuck at zero.
func NewPRNG(t *Timer) *PRNG {
	var stackSlot int
	var seedBytes [24]byte
	binary.LittleEndian.PutUint64(seedBytes[0:8], t.NowNS())
	binary.LittleEndian.PutUint64(seedBytes[8:16], uint64(uintptr(unsafe.Pointer(&stackSlot))))
	binary.LittleEndian.PutUint64(seedBytes[16:24], uint64(os.Getpid()))

	seed := xxh3.Hash(seedBytes[:])
	if seed == 0 {
		seed = 0x123456789abcdef
	}
	return &PRNG{state: seed}
}

// NewSeededPRNG constructs a PRNG from an explicit seed, for deterministic
// tests. A zero seed is replaced the same way NewPRNG replaces one.
func NewSeededPRNG(seed uint64) *PRNG {
	if seed == 0 {
		seed = 0x123456789abcdef
	}
	return &PRNG{state: seed}
}

// Next returns the next 64-bit value in the sequence.
func (p *PRNG) Next() uint64 {
	x := p.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	p.state = x
	return x * 2685821657736338717
}

// Uniform returns an unbiased value in [0, n) via rejection sampling. It
// panics if n is zero.
func (p *PRNG) Uniform(n uint64) uint64 {
	if n == 0 {
		panic("chasebench: PRNG.Uniform called with n == 0")
	}
	threshold := -n % n
	for {
		x := p.Next()
		if x >= threshold {
			return x % n
		}
	}
}
