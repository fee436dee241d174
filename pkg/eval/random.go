package eval

import "github.com/arjunp/corvid/pkg/board"

// Noise adds a small, position-deterministic jitter to a score, derived from the position's
// fingerprint rather than a global random source so that the same position always evaluates
// identically within a single search (required for alpha-beta correctness) while still
// breaking ties between otherwise-equal moves differently across distinct positions. Intended
// strictly for test fixtures and self-play variety; zero by default (Weights.NoiseAmplitude
// must be set explicitly to enable it).
func Noise(fp board.Fingerprint, amplitude int) int {
	if amplitude <= 0 {
		return 0
	}
	h := uint64(fp)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return int(h%uint64(2*amplitude+1)) - amplitude
}
