package hila5

import (
	"fmt"

	"github.com/hila5/hila5-go/codec"
	"github.com/hila5/hila5-go/ecc"
	"github.com/hila5/hila5-go/reconcile"
	"github.com/hila5/hila5-go/ring"
)

// digestLen is the width, in bytes, of the SHA3-256 public-key digest
// carried in a private key. Numerically the same as SharedSecretLen, but
// the two sizes are coincidental, not the same quantity.
const digestLen = 32

// Wire sizes, fixed by the scheme (spec §4.7 / §6).
const (
	PublicKeyLen  = SeedLen + codec.PackedLen
	PrivateKeyLen = codec.PackedLen + digestLen
	CiphertextLen = codec.PackedLen + reconcile.SelectorLen + reconcile.PayloadLen + ecc.ParityLen
)

// PublicKey is the pair (seed, t) a responder publishes: seed expands to
// the public generator g, t = g*a + e is the NTT-domain public element.
type PublicKey struct {
	Seed [SeedLen]byte
	T    ring.NttVector
}

// MarshalBinary encodes pk as seed ‖ pack14(t), 1824 bytes.
func (pk *PublicKey) MarshalBinary() []byte {
	out := make([]byte, 0, PublicKeyLen)
	out = append(out, pk.Seed[:]...)
	out = append(out, codec.Pack14(pk.T.Slice())...)
	return out
}

// UnmarshalPublicKey decodes a wire public key.
func UnmarshalPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyLen {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidLength, PublicKeyLen, len(b))
	}
	pk := &PublicKey{}
	copy(pk.Seed[:], b[:SeedLen])
	t, err := codec.Unpack14(b[SeedLen:])
	if err != nil {
		return nil, fmt.Errorf("hila5: decoding public key: %w", err)
	}
	pk.T = ring.NttVectorFromSlice(t[:])
	return pk, nil
}

// PrivateKey is the pair (a, pk_digest): a is the responder's secret noise
// (NTT domain), pk_digest binds the private key to a specific public key
// for the transcript hash.
type PrivateKey struct {
	A        ring.NttVector
	PkDigest [32]byte
}

// MarshalBinary encodes sk as pack14(a) ‖ pk_digest, 1824 bytes.
func (sk *PrivateKey) MarshalBinary() []byte {
	out := make([]byte, 0, PrivateKeyLen)
	out = append(out, codec.Pack14(sk.A.Slice())...)
	out = append(out, sk.PkDigest[:]...)
	return out
}

// UnmarshalPrivateKey decodes a wire private key.
func UnmarshalPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidLength, PrivateKeyLen, len(b))
	}
	sk := &PrivateKey{}
	a, err := codec.Unpack14(b[:codec.PackedLen])
	if err != nil {
		return nil, fmt.Errorf("hila5: decoding private key: %w", err)
	}
	sk.A = ring.NttVectorFromSlice(a[:])
	copy(sk.PkDigest[:], b[codec.PackedLen:])
	return sk, nil
}

// Ciphertext is an encapsulation: the ephemeral public element t', the
// reconciliation info (selector + reconciliation bits), and the XE5 parity
// masked with the payload's own one-time pad.
type Ciphertext struct {
	Tp     ring.NttVector
	Sel    reconcile.Selector
	Rec    reconcile.Bits
	Parity [ecc.ParityLen]byte
}

// MarshalBinary encodes ct as pack14(t') ‖ selector ‖ reconciliation ‖
// parity, 2012 bytes.
func (ct *Ciphertext) MarshalBinary() []byte {
	out := make([]byte, 0, CiphertextLen)
	out = append(out, codec.Pack14(ct.Tp.Slice())...)
	out = append(out, ct.Sel[:]...)
	out = append(out, ct.Rec[:]...)
	out = append(out, ct.Parity[:]...)
	return out
}

// UnmarshalCiphertext decodes a wire ciphertext.
func UnmarshalCiphertext(b []byte) (*Ciphertext, error) {
	if len(b) != CiphertextLen {
		return nil, fmt.Errorf("%w: ciphertext must be %d bytes, got %d", ErrInvalidLength, CiphertextLen, len(b))
	}
	ct := &Ciphertext{}
	tp, err := codec.Unpack14(b[:codec.PackedLen])
	if err != nil {
		return nil, fmt.Errorf("hila5: decoding ciphertext: %w", err)
	}
	ct.Tp = ring.NttVectorFromSlice(tp[:])

	off := codec.PackedLen
	copy(ct.Sel[:], b[off:off+reconcile.SelectorLen])
	off += reconcile.SelectorLen
	copy(ct.Rec[:], b[off:off+reconcile.PayloadLen])
	off += reconcile.PayloadLen
	copy(ct.Parity[:], b[off:off+ecc.ParityLen])
	return ct, nil
}
