package hila5

import (
	"fmt"

	"github.com/hila5/hila5-go/ring"
	"github.com/hila5/hila5-go/sampling"
)

// sampleNoise draws a fresh Ψ16 noise polynomial and lifts it into the NTT
// domain with the forward scale the rest of this package assumes (1, so
// that the transform agrees exactly with the schoolbook reference).
func sampleNoise(rng sampling.Rng) (ring.NttVector, error) {
	raw, err := sampling.Psi16(rng, ring.N)
	if err != nil {
		return ring.NttVector{}, fmt.Errorf("%w: %v", ErrRng, err)
	}
	return ring.NTT(ring.VectorFromSlice(raw), 1), nil
}

// expandGenerator expands a seed into the public generator g, uniform in
// R_q and already valid as an NttVector (uniform sampling doesn't care
// which basis it's interpreted in).
func expandGenerator(seed [SeedLen]byte) ring.NttVector {
	return ring.NttVectorFromSlice(sampling.Parse(seed[:], ring.N))
}

func fillSeed(rng sampling.Rng) ([SeedLen]byte, error) {
	var seed [SeedLen]byte
	if err := rng.Fill(seed[:]); err != nil {
		return seed, fmt.Errorf("%w: %v", ErrRng, err)
	}
	return seed, nil
}
