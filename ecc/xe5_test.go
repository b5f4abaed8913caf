package ecc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleData() (d [DataLen]byte) {
	for i := range d {
		d[i] = byte(i*7 + 3)
	}
	return
}

func TestEncodeDeterministic(t *testing.T) {
	d := sampleData()
	require.Equal(t, Encode(d), Encode(d))
}

// TestFixIdempotentNoError covers P4: fixing an untouched payload against
// its own parity must never alter it.
func TestFixIdempotentNoError(t *testing.T) {
	for _, d := range [][DataLen]byte{sampleData(), {}, allOnes()} {
		parity := Encode(d)
		got := d
		Fix(&got, parity)
		require.Equal(t, d, got)
	}
}

func allOnes() (d [DataLen]byte) {
	for i := range d {
		d[i] = 0xff
	}
	return
}

// TestFixCorrectsSingleBitErrors covers P5 for weight-1 errors: every one
// of the 256 possible single-bit flips must be fully corrected.
func TestFixCorrectsSingleBitErrors(t *testing.T) {
	d := sampleData()
	parity := Encode(d)

	for p := 0; p < 8*DataLen; p++ {
		corrupted := d
		corrupted[p/8] ^= 1 << uint(p%8)
		require.NotEqual(t, d, corrupted)

		Fix(&corrupted, parity)
		require.Equal(t, d, corrupted, "bit %d not corrected", p)
	}
}

// TestFixCorrectsDoubleBitErrors spot-checks weight-2 correction across a
// sample of bit pairs rather than the full O(n^2) space.
func TestFixCorrectsDoubleBitErrors(t *testing.T) {
	d := sampleData()
	parity := Encode(d)

	pairs := [][2]int{{0, 1}, {0, 255}, {17, 200}, {63, 64}, {128, 129}, {7, 249}}
	for _, pr := range pairs {
		corrupted := d
		corrupted[pr[0]/8] ^= 1 << uint(pr[0]%8)
		corrupted[pr[1]/8] ^= 1 << uint(pr[1]%8)

		Fix(&corrupted, parity)
		require.Equal(t, d, corrupted, "pair %v not corrected", pr)
	}
}

// TestFixCorrectsTripleBitErrors spot-checks weight-3 correction, the
// measured capacity of the syndrome-table decoder (see DESIGN.md).
func TestFixCorrectsTripleBitErrors(t *testing.T) {
	d := sampleData()
	parity := Encode(d)

	triples := [][3]int{{0, 1, 2}, {0, 128, 255}, {17, 100, 200}, {63, 64, 65}}
	for _, tr := range triples {
		corrupted := d
		for _, p := range tr {
			corrupted[p/8] ^= 1 << uint(p%8)
		}

		Fix(&corrupted, parity)
		require.Equal(t, d, corrupted, "triple %v not corrected", tr)
	}
}

// TestCodS4KAT pins cod's byte output against the S4 known-answer test: the
// parity cod produces over a fixed 256-bit input, starting from a zeroed
// register, must match byte-for-byte.
func TestCodS4KAT(t *testing.T) {
	dw := [4]uint64{
		0x0D08050302010100,
		0x6279E99059372215,
		0xF12FC26D55183DDB,
		0xDD28B57342311120,
	}
	want := [4]uint64{
		0x5D193C3A9B0A3171,
		0xE439D357352B06CF,
		0xDF517AD4F8F2DE07,
		0x0000492E2AC7B92B,
	}

	var r [4]uint64
	cod(&dw, &r)
	require.Equal(t, want, r)
}

// TestEncodeLinearity checks the GF(2)-linearity Fix's table lookup relies
// on: Encode(a XOR b) == Encode(a) XOR Encode(b).
func TestEncodeLinearity(t *testing.T) {
	a := sampleData()
	b := allOnes()
	var xorab [DataLen]byte
	for i := range xorab {
		xorab[i] = a[i] ^ b[i]
	}

	pa := Encode(a)
	pb := Encode(b)
	pxor := Encode(xorab)

	var want [ParityLen]byte
	for i := range want {
		want[i] = pa[i] ^ pb[i]
	}
	require.Equal(t, want, pxor)
}
