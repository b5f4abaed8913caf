// Package reconcile implements HILA5's reconciliation layer: given two
// parties' noisy approximations of the same ring element, it selects the
// coefficients close enough to a quarter-point of the ring ("safe") and
// extracts, for each, one payload bit and one reconciliation bit.
package reconcile

import "github.com/hila5/hila5-go/ring"

// SelectorLen is the size, in bytes, of the safe-coefficient bitmask.
const SelectorLen = ring.N / 8

// PayloadLen is the size, in bytes, of both the reconciliation bitstring
// and the extracted payload (the 32-byte key seed plus 30 bytes of XE5
// parity).
const PayloadLen = 62

// B bounds how close to a quarter-point a coefficient must be to count as
// safe: |x mod (Q/4) - Q/8| <= B.
const B = 799

// Selector is the 128-byte bitmask marking which of the N coefficients
// were selected as safe, one bit per coefficient in index order (bit i&7
// of byte i>>3).
type Selector [SelectorLen]byte

// Bits is a PayloadLen-byte bitstring (the reconciliation info or the
// recovered/produced payload), addressed the same way: bit j&7 of byte
// j>>3.
type Bits [PayloadLen]byte

// Safebits scans v's coefficients in index order and, for each safe one,
// records a reconciliation bit and a payload bit. It succeeds as soon as
// 8*PayloadLen bits have been extracted; if v does not contain that many
// safe coefficients, ok is false and the caller must resample v (with a
// freshly sampled ephemeral vector) and retry.
func Safebits(v ring.Vector) (sel Selector, rec, payload Bits, ok bool) {
	j := 0
	for i, x := range v {
		m := x % (ring.Q / 4)
		if m < ring.Q/8-B || m > ring.Q/8+B {
			continue
		}

		sel[i>>3] |= 1 << uint(i&7)

		y := (4 * x) / ring.Q
		rec[j>>3] ^= byte((y & 1) << uint(j&7))
		y >>= 1
		payload[j>>3] ^= byte((y & 1) << uint(j&7))

		j++
		if j >= 8*PayloadLen {
			return sel, rec, payload, true
		}
	}
	return sel, rec, payload, false
}

// Select reconstructs the payload bits from the responder's approximation
// v, using the selector and reconciliation bits an encapsulation produced
// via Safebits. It never fails: if sel marks fewer than 8*PayloadLen safe
// positions (only possible on a forged or corrupted ciphertext), the
// undetermined trailing payload bits are left zero — decapsulation always
// produces a shared secret, agreement is the caller's signal.
func Select(sel Selector, rec Bits, v ring.Vector) (payload Bits) {
	j := 0
	for i, x := range v {
		if (sel[i>>3]>>uint(i&7))&1 != 1 {
			continue
		}

		y := x + ring.Q/8
		recBit := uint((rec[j>>3] >> uint(j&7)) & 1)
		y = ring.Select(recBit, y, y-ring.Q/4)
		y = (2 * ((y + ring.Q) % ring.Q)) / ring.Q
		payload[j>>3] ^= byte((y & 1) << uint(j&7))

		j++
		if j >= 8*PayloadLen {
			return payload
		}
	}
	return payload
}
