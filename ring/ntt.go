package ring

// This file implements two independent ways to compute the same negacyclic
// Number-Theoretic Transform over R_q = Z_q[X]/(X^1024+1):
//
//   - SlowNTT/SlowINTT: the O(N^2) schoolbook definition, used as the
//     reference oracle in tests and property checks (P2, P3).
//   - NTT/INTT: the O(N log N) iterative butterfly transform used by
//     production code. Mathematically the same transform (same primitive
//     root, same bit-reversed output convention), so the two must agree up
//     to the caller-supplied scale factor.
//
// Both use the generator g = 1945 (a primitive 2048th root of unity mod Q):
// omega = g^2 is the primitive 1024th root the transform itself is defined
// over, and g is also the twist factor psi (psi^2 = omega) that folds the
// negacyclic wrap-around (X^N = -1) into a cyclic convolution.

// SlowNTT computes d = c * NTT(v) via the direct O(N^2) sum
//
//	d[i] = c * sum_j v[j] * g^(j*(2*bitrev10(i)+1) mod 2048)  (mod Q)
//
// This is the reference transform: simple enough to trust by inspection,
// used to cross-check the fast path.
func SlowNTT(v Vector, c Scalar) (d NttVector) {
	buildTables()
	for i := range d {
		r := 2*bitrev10(i) + 1
		var x int64
		k := 0
		for j := range v {
			x = (x + int64(v[j])*int64(gPowers[k])) % int64(Q)
			k = (k + r) & (2*N - 1)
		}
		d[i] = Scalar((x * int64(c)) % int64(Q))
		if d[i] < 0 {
			d[i] += Q
		}
	}
	return
}

// SlowINTT computes the unnormalized inverse transform of v: the caller
// must apply the N^-1 factor (and any leftover scale from the forward
// path) separately, the same way the optimized path defers normalization
// to a single combined multiplier.
func SlowINTT(v NttVector) (d Vector) {
	buildTables()
	for i, vi := range v {
		r := 2*bitrev10(i) + 1
		k := 0
		for j := range d {
			x := (int64(d[j]) + int64(vi)*int64(gPowers[k])) % int64(Q)
			if x < 0 {
				x += int64(Q)
			}
			d[j] = Scalar(x)
			k = ((k-r)%(2*N) + 2*N) % (2 * N)
		}
	}
	return
}

// NTT computes d = c * NTT(v) via an iterative decimation-in-frequency
// butterfly: twist v by powers of psi=g, then run log2(N) butterfly stages
// with twiddles drawn from powers of omega=g^2. The result lands in the
// same bit-reversed-output convention as SlowNTT, so NTT(v, c) == SlowNTT(v, c).
func NTT(v Vector, c Scalar) (d NttVector) {
	buildTables()

	var w [N]Scalar
	for j := range w {
		w[j] = mulMod(v[j], gPowers[j])
	}

	difButterfly(w[:], gPowers[:])

	for i := range d {
		d[i] = mulMod(w[i], c)
	}
	return
}

// INTT computes d = c * NTT^-1(v). The result already has the N-coefficient
// blow-up of the forward/inverse pair cleared via the NInv constant; c
// absorbs any additional scale the caller wants folded in (the KEM code
// passes c=1, since its forward transforms add no scale).
func INTT(v NttVector, c Scalar) (d Vector) {
	buildTables()

	a := [N]Scalar(v)
	ditButterfly(a[:], gInvPowers[:])

	for j := range d {
		x := mulMod(a[j], NInv)
		x = mulMod(x, gInvPowers[j])
		d[j] = mulMod(x, c)
	}
	return
}

// difButterfly runs the decimation-in-frequency NTT stages over a in
// place, using powers mod 2N of the root whose square is the transform's
// working N-th root of unity. On return a[i] holds the result evaluated at
// the bit-reversed index bitrev10(i), matching SlowNTT's output order.
func difButterfly(a []Scalar, rootPowers []Scalar) {
	n := len(a)
	twoN := 2 * n
	for length := n; length >= 2; length >>= 1 {
		half := length / 2
		step := n / length
		for start := 0; start < n; start += length {
			e := 0
			for j := 0; j < half; j++ {
				u := a[start+j]
				v := a[start+j+half]
				a[start+j] = addMod(u, v)
				a[start+j+half] = mulMod(subMod(u, v), rootPowers[(2*e)%twoN])
				e += step
			}
		}
	}
}

// ditButterfly is the mirror decimation-in-time NTT: it consumes a already
// in the bit-reversed-output convention produced by difButterfly/NTT and
// restores natural order, scaled by N (the caller clears that factor).
func ditButterfly(a []Scalar, rootPowers []Scalar) {
	n := len(a)
	twoN := 2 * n
	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		step := n / length
		for start := 0; start < n; start += length {
			e := 0
			for j := 0; j < half; j++ {
				u := a[start+j]
				v := mulMod(a[start+j+half], rootPowers[(2*e)%twoN])
				a[start+j] = addMod(u, v)
				a[start+j+half] = subMod(u, v)
				e += step
			}
		}
	}
}

func addMod(a, b Scalar) Scalar {
	s := a + b
	if s >= Q {
		s -= Q
	}
	return s
}

func subMod(a, b Scalar) Scalar {
	d := a - b
	if d < 0 {
		d += Q
	}
	return d
}

func mulMod(a, b Scalar) Scalar {
	return Scalar((int64(a) * int64(b)) % int64(Q))
}
