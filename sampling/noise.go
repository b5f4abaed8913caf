package sampling

import "math/bits"

// q is the ring modulus; kept local (rather than importing package ring)
// so sampling has no dependency on the arithmetic engine it feeds.
const q int32 = 12289

// Psi16 draws a length-n vector of coefficients from Ψ16, the centered
// binomial distribution of support [-16, 16]: each coefficient is the
// Hamming weight of 32 independent random bits, minus 16, reduced into
// [0, q). Built from the Hamming-weight construction rather than rejection
// sampling, so it runs in constant time per coefficient.
func Psi16(rng Rng, n int) ([]int32, error) {
	buf := make([]byte, 4*n)
	if err := rng.Fill(buf); err != nil {
		return nil, err
	}

	v := make([]int32, n)
	for i := range v {
		w := buf[4*i : 4*i+4]
		weight := bits.OnesCount8(w[0]) + bits.OnesCount8(w[1]) + bits.OnesCount8(w[2]) + bits.OnesCount8(w[3])
		x := int32(weight) - 16
		if x < 0 {
			x += q
		}
		v[i] = x
	}
	return v, nil
}
