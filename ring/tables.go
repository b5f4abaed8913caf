package ring

import "sync"

// gPowers and gInvPowers hold the 2048 powers of a generator mod Q,
// precomputed once and read-only thereafter. gPowers (g = 1945) feeds the reference transform and
// the forward NTT's twist/twiddle factors; gInvPowers (g^-1) feeds the
// inverse transform.
var (
	tablesOnce sync.Once
	gPowers    [2 * N]Scalar
	gInvPowers [2 * N]Scalar
)

// buildTables is the one-shot publisher for the process-wide root-of-unity
// tables. Called lazily by the first NTT/INTT/reference-transform use;
// sync.Once guarantees a happens-before edge to every later reader.
func buildTables() {
	tablesOnce.Do(func() {
		gInv := modInverse(primitiveRoot, Q)

		x := Scalar(1)
		xInv := Scalar(1)
		for k := 0; k < 2*N; k++ {
			gPowers[k] = x
			gInvPowers[k] = xInv
			x = Scalar((int64(x) * int64(primitiveRoot)) % int64(Q))
			xInv = Scalar((int64(xInv) * int64(gInv)) % int64(Q))
		}
	})
}

// modInverse returns a^-1 mod m via the extended Euclidean algorithm. Used
// only at table-build time on public constants, never on secret data.
func modInverse(a, m Scalar) Scalar {
	a = a % m
	if a < 0 {
		a += m
	}
	g, x, _ := extGCD(int64(a), int64(m))
	if g != 1 {
		panic("ring: modulus and generator are not coprime")
	}
	x %= int64(m)
	if x < 0 {
		x += int64(m)
	}
	return Scalar(x)
}

func extGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// bitrev10 reverses the low 10 bits of x; e.g. 0x200 -> 0x001.
func bitrev10(x int) int {
	x &= 0x3ff
	x = (x << 5) | (x >> 5)
	t := (x ^ (x >> 4)) & 0x021
	x ^= t ^ (t << 4)
	t = (x ^ (x >> 2)) & 0x042
	x ^= t ^ (t << 2)
	return x & 0x3ff
}
