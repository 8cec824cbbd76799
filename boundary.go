package chasebench

// Sample is one (working-set size, latency) measurement. Samples passed to
// DetectBoundaries must be in ascending WorkingSetBytes order.
type Sample struct {
	WorkingSetBytes uint64  `json:"working_set_bytes"`
	NsPerAccess     float64 `json:"ns_per_access"`
}

// Boundary is a detected cache-level transition: the reported size is the
// last size that still fit inside the level, not the first size that
// missed it.
type Boundary struct {
	ApproxSizeBytes uint64
	Ratio           float64
}

// DetectBoundaries scans an ascending (size, ns/access) curve and emits
// boundaries where latency steps up by a sustained ratio over the running
// plateau average.
//
// The plateau average accumulates ns/access since the last boundary (or
// from the start). A candidate boundary at sample i fires when
// samples[i].NsPerAccess / plateau > JumpThreshold and at least
// MinPlateauPoints samples have accumulated since the last boundary; it is
// then confirmed by checking that the following sample (if any) is still
// above JumpThreshold*LookaheadSlack, so a single noisy point can't trigger
// a false boundary. Labels (L1, L2, ...) are purely positional — nothing
// guarantees the first detected boundary is actually L1, e.g. if min_bytes
// already starts above L1's capacity.
func DetectBoundaries(samples []Sample) []Boundary {
	if len(samples) == 0 {
		return nil
	}

	plateauSum := samples[0].NsPerAccess
	plateauCount := 1
	plateauAvg := plateauSum / float64(plateauCount)
	lastBoundaryIdx := 0

	var out []Boundary
	for i := 1; i < len(samples); i++ {
		ratio := samples[i].NsPerAccess / plateauAvg
		sustained := false
		if ratio > JumpThreshold && i-lastBoundaryIdx >= MinPlateauPoints {
			if i+1 < len(samples) {
				ratioNext := samples[i+1].NsPerAccess / plateauAvg
				sustained = ratioNext > JumpThreshold*LookaheadSlack
			} else {
				sustained = true
			}
		}

		if sustained {
			if len(out) < MaxBoundaries {
				out = append(out, Boundary{
					ApproxSizeBytes: samples[i-1].WorkingSetBytes,
					Ratio:           ratio,
				})
			}
			lastBoundaryIdx = i
			plateauSum = samples[i].NsPerAccess
			plateauCount = 1
			plateauAvg = plateauSum / float64(plateauCount)
			if len(out) >= MaxBoundaries {
				break
			}
		} else {
			plateauSum += samples[i].NsPerAccess
			plateauCount++
			plateauAvg = plateauSum / float64(plateauCount)
		}
	}
	return out
}

// LevelLabel returns the cosmetic L1/L2/.../L? label for the i'th boundary
// in emission order.
func LevelLabel(i int) string {
	switch i {
	case 0:
		return "L1"
	case 1:
		return "L2"
	case 2:
		return "L3"
	case 3:
		return "L4"
	default:
		return "L?"
	}
}
