package hila5

import (
	"github.com/hila5/hila5-go/ecc"
	"github.com/hila5/hila5-go/reconcile"
	"github.com/hila5/hila5-go/ring"
)

// Decryptor runs the responder's half of the protocol: given its private
// key and a received ciphertext, it recomputes the same reconciled payload
// the initiator derived, corrects it with XE5, and derives the shared
// secret. It never fails — a forged or corrupted ciphertext still yields a
// 32-byte value, just not one the initiator agrees on.
type Decryptor struct{}

// NewDecryptor returns a Decryptor. It carries no state: decapsulation
// needs no randomness.
func NewDecryptor() *Decryptor {
	return &Decryptor{}
}

// Decapsulate runs HILA5 decapsulation.
func (dec *Decryptor) Decapsulate(sk *PrivateKey, ct *Ciphertext) SharedSecret {
	x := ring.INTT(sk.A.Mul(ct.Tp), 1)
	x.Normalize()

	payload := reconcile.Select(ct.Sel, ct.Rec, x)

	var z [32]byte
	copy(z[:], payload[:32])
	var r [ecc.ParityLen]byte
	copy(r[:], payload[32:])
	for i := range r {
		r[i] ^= ct.Parity[i]
	}

	ecc.Fix(&z, r)

	return deriveSharedSecretFromDigest(sk.PkDigest, ct.MarshalBinary(), z)
}

// Decapsulate is the package-level convenience form of Decryptor, matching
// the scheme's decapsulate() entry point.
func Decapsulate(sk *PrivateKey, ct *Ciphertext) SharedSecret {
	return NewDecryptor().Decapsulate(sk, ct)
}
