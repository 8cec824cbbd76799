package chasebench

import "golang.org/x/exp/slices"

// GenerateSizes returns a sorted, deduplicated list of candidate
// working-set byte sizes between minBytes and maxBytes (inclusive), with
// denser sampling in the small-cache regime.
//
// Starting from the largest power of two <= minBytes (but never below
// MinSizeGeneratorFloor), every power of two p up to maxBytes contributes
// p itself (when p >= minBytes) and 1.5p; sizes at or below 1 MiB also
// contribute 1.25p and 1.75p, and sizes at or below 128 KiB additionally
// contribute 1.125p, 1.375p, 1.625p and 1.875p. Values outside
// [minBytes, maxBytes] are discarded. The result is capped at
// MaxSizeSamples entries.
func GenerateSizes(minBytes, maxBytes uint64) []uint64 {
	if maxBytes < minBytes {
		return nil
	}

	p := uint64(1)
	for (p<<1) > p && (p<<1) <= minBytes {
		p <<= 1
	}
	if p < MinSizeGeneratorFloor {
		p = MinSizeGeneratorFloor
	}

	var out []uint64
	add := func(v uint64) {
		if v >= minBytes && v <= maxBytes && len(out) < MaxSizeSamples {
			out = append(out, v)
		}
	}

	for ; p <= maxBytes; p <<= 1 {
		if p >= minBytes {
			add(p)
		}
		add(p + p/2) // 1.5x

		if p <= DenseSamplingCeiling1MiB {
			add(p + p/4)       // 1.25x
			add(p + (p*3)/4)   // 1.75x
		}
		if p <= DenseSamplingCeiling128KiB {
			add(p + p/8)       // 1.125x
			add(p + (p*3)/8)   // 1.375x
			add(p + (p*5)/8)   // 1.625x
			add(p + (p*7)/8)   // 1.875x
		}

		if p > (^uint64(0))>>1 {
			break // next shift would overflow
		}
	}

	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) > MaxSizeSamples {
		out = out[:MaxSizeSamples]
	}
	return out
}
