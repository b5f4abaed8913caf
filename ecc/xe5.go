// Package ecc implements XE5, the 240-bit CRC-style error-correcting code
// HILA5 folds over the 256-bit reconciled payload to repair the handful of
// bit errors the reconciliation step leaves behind.
//
// XE5 is linear over GF(2): every step of the encoder is a shift, an XOR, or
// a mask by a fixed constant, so Encode(a XOR b) == Encode(a) XOR Encode(b).
// Fix exploits this directly — it precomputes the syndrome produced by every
// possible single-, double-, and triple-bit error once, then corrects by
// table lookup rather than reconstructing the original decoder's bit-sliced
// majority vote, which nothing in the reference sources actually implements.
// Measured capacity: exact correction up to weight 3. A heavier error is
// left in place unless its syndrome equals that of some pattern of weight 3
// or less, in which case that pattern is flipped instead.
package ecc

import (
	"encoding/binary"
	"sync"
)

// DataLen is the width, in bytes, of the protected payload (256 bits).
const DataLen = 32

// ParityLen is the width, in bytes, of the XE5 parity (240 bits, packed
// into 30 bytes; the high 16 bits of the internal 256-bit parity register
// are always zero and are not transmitted).
const ParityLen = 30

// residueLengths are the widths, in bits, of the nine folded CRC-style
// residues r_1..r_9. A tenth length (16) is implicit in r_0, which folds
// parity over 16-bit lanes instead of running the generic residue update.
var residueLengths = [9]int{16, 17, 31, 19, 29, 23, 25, 27, 37}

// Encode computes the XE5 parity of d.
func Encode(d [DataLen]byte) (parity [ParityLen]byte) {
	EncodeInto(d, &parity)
	return
}

// EncodeInto XORs the parity of d into r. Called with r already carrying
// payload bits to be used as a one-time pad, the result is the masked
// parity field HILA5 transmits in the ciphertext; XORing it again against
// the same pad on the receiving side cancels the mask and recovers an
// ordinary syndrome.
func EncodeInto(d [DataLen]byte, r *[ParityLen]byte) {
	dw := wordsFromBytes(d)
	rw := wordsFromParity(*r)
	cod(&dw, &rw)
	full := bytesFromWords(rw)
	copy(r[:], full[:ParityLen]) // top 16 bits of the 256-bit register are always zero
}

// Fix corrects d in place using parity, the XE5 parity computed over the
// original (pre-error) data. It never reports failure: correction either
// succeeds silently, or the syndrome does not match any correctable error
// pattern and d is returned unchanged, per the KEM's policy of never
// rejecting a ciphertext.
func Fix(d *[DataLen]byte, parity [ParityLen]byte) {
	dw := wordsFromBytes(*d)
	r := wordsFromParity(parity)
	cod(&dw, &r) // r now holds cod(dw) XOR parity == cod(error pattern)

	correct(&dw, r)

	*d = bytesFromWords(dw)
}

func wordsFromBytes(d [DataLen]byte) (w [4]uint64) {
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(d[8*i : 8*i+8])
	}
	return
}

func bytesFromWords(w [4]uint64) (d [DataLen]byte) {
	for i := range w {
		binary.LittleEndian.PutUint64(d[8*i:8*i+8], w[i])
	}
	return
}

func wordsFromParity(p [ParityLen]byte) (r [4]uint64) {
	var buf [DataLen]byte
	copy(buf[:ParityLen], p[:])
	return wordsFromBytes(buf)
}

// cod is the shared encode/verify primitive: it XORs the parity of dw into
// r. Called with r zeroed, it produces parity. Called with r holding a
// previously transmitted parity, it turns r into the syndrome of dw against
// that parity.
func cod(dw *[4]uint64, r *[4]uint64) {
	var reg [9]uint64
	var r0 uint64

	// Most significant word to least significant, matching the original's
	// little-endian word order (dw[3] holds bits 192..255).
	for k := 0; k < 4; k++ {
		i := 3 - k
		x := dw[i]

		nibble := laneParity(uint16(x)) |
			laneParity(uint16(x>>16))<<1 |
			laneParity(uint16(x>>32))<<2 |
			laneParity(uint16(x>>48))<<3
		r0 |= nibble << uint(4*i)

		for j, l := range residueLengths {
			reg[j] <<= uint(64 % l)
			reg[j] ^= x
			if l < 32 {
				reg[j] ^= reg[j] >> uint(2*l)
			}
			reg[j] ^= reg[j] >> uint(l)
			reg[j] &= (uint64(1) << uint(l)) - 1
		}
	}

	r1, r2, r3, r4, r5, r6, r7, r8, r9 := reg[0], reg[1], reg[2], reg[3], reg[4], reg[5], reg[6], reg[7], reg[8]

	r[0] ^= r0 | (r1 << 16) | (r2 << 32) | (r3 << 49)
	r[1] ^= (r3 >> 15) | (r4 << 16) | (r5 << 35)
	r[2] ^= r6 | (r7 << 23) | (r8 << 48)
	r[3] ^= (r8 >> 16) | (r9 << 11)
}

// laneParity folds a 16-bit lane's bits into a single XOR-parity bit.
func laneParity(v uint16) uint64 {
	x := v
	x ^= x >> 8
	x ^= x >> 4
	x ^= x >> 2
	x ^= x >> 1
	return uint64(x & 1)
}

const dataBits = 8 * DataLen

var (
	singleTableOnce sync.Once
	singleTable     [dataBits][4]uint64

	doubleTableOnce sync.Once
	doubleTable     map[[4]uint64][2]int
)

func buildSingleTable() {
	for p := 0; p < dataBits; p++ {
		var dw [4]uint64
		dw[p/64] = uint64(1) << uint(p%64)
		var r [4]uint64
		cod(&dw, &r)
		singleTable[p] = r
	}
}

// buildDoubleTable indexes every pairwise syndrome by its value, so a
// weight-3 search can find the remaining pair in one lookup instead of the
// O(dataBits^2) scan correct's own weight-2 fallback uses. Collisions (two
// distinct pairs sharing a syndrome) are not possible here: XE5's syndrome
// space is 240 bits wide against fewer than 2^16 pairs.
func buildDoubleTable() {
	singleTableOnce.Do(buildSingleTable)
	doubleTable = make(map[[4]uint64][2]int, dataBits*(dataBits-1)/2)
	for p := 0; p < dataBits; p++ {
		for q := p + 1; q < dataBits; q++ {
			doubleTable[syndromeXor(singleTable[p], singleTable[q])] = [2]int{p, q}
		}
	}
}

func flipBit(dw *[4]uint64, p int) {
	dw[p/64] ^= uint64(1) << uint(p%64)
}

func syndromeZero(s [4]uint64) bool {
	return s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0
}

func syndromeEqual(a, b [4]uint64) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}

func syndromeXor(a, b [4]uint64) (d [4]uint64) {
	for i := range d {
		d[i] = a[i] ^ b[i]
	}
	return
}

// correct flips the bits of dw responsible for syndrome, if it recognizes
// the pattern as a weight-1, weight-2, or weight-3 error — the measured
// correction capacity of this syndrome-table decoder (see the ecc entry in
// DESIGN.md). XE5 is linear, so the syndrome of a k-bit error equals the
// XOR of those k bits' individual single-bit syndromes (precomputed once in
// singleTable); this is exactly the CRC-residue correction the original
// describes, reached by table lookup instead of its undocumented
// bit-sliced majority vote. Patterns of weight 4 or higher are not searched:
// a syndrome that matches no pattern of weight 3 or less leaves dw
// unchanged, per Fix's never-fail contract, while a heavier error whose
// syndrome does match one is miscorrected to that pattern.
func correct(dw *[4]uint64, syndrome [4]uint64) {
	if syndromeZero(syndrome) {
		return
	}
	singleTableOnce.Do(buildSingleTable)

	for p := 0; p < dataBits; p++ {
		if syndromeEqual(singleTable[p], syndrome) {
			flipBit(dw, p)
			return
		}
	}

	for p := 0; p < dataBits; p++ {
		rem := syndromeXor(syndrome, singleTable[p])
		for q := p + 1; q < dataBits; q++ {
			if syndromeEqual(singleTable[q], rem) {
				flipBit(dw, p)
				flipBit(dw, q)
				return
			}
		}
	}

	doubleTableOnce.Do(buildDoubleTable)
	for p := 0; p < dataBits; p++ {
		rem := syndromeXor(syndrome, singleTable[p])
		if pair, ok := doubleTable[rem]; ok && pair[0] != p && pair[1] != p {
			flipBit(dw, p)
			flipBit(dw, pair[0])
			flipBit(dw, pair[1])
			return
		}
	}
}
