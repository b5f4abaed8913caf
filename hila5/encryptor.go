package hila5

import (
	"golang.org/x/crypto/sha3"

	"github.com/hila5/hila5-go/ecc"
	"github.com/hila5/hila5-go/reconcile"
	"github.com/hila5/hila5-go/ring"
	"github.com/hila5/hila5-go/sampling"
)

// maxReconciliationAttempts bounds encapsulation's resampling loop. Failure
// within the budget is cryptographically negligible with HILA5's
// parameters; exhausting it signals a parameter or implementation defect
// rather than bad luck in ordinary operation.
const maxReconciliationAttempts = 1000

// Encryptor runs the initiator's half of the protocol: given a responder's
// public key, it samples fresh ephemeral randomness and produces a
// ciphertext together with the shared secret it encodes.
type Encryptor struct {
	rng sampling.Rng
}

// NewEncryptor returns an Encryptor drawing randomness from rng.
func NewEncryptor(rng sampling.Rng) *Encryptor {
	return &Encryptor{rng: rng}
}

// Encapsulate runs HILA5 encapsulation against pk.
func (enc *Encryptor) Encapsulate(pk *PublicKey) (*Ciphertext, SharedSecret, error) {
	A := pk.T

	var (
		b       ring.NttVector
		sel     reconcile.Selector
		rec     reconcile.Bits
		payload reconcile.Bits
		ok      bool
		err     error
	)
	for attempt := 0; attempt < maxReconciliationAttempts; attempt++ {
		b, err = sampleNoise(enc.rng)
		if err != nil {
			return nil, SharedSecret{}, err
		}

		x := ring.INTT(A.Mul(b), 1)
		x.Normalize()

		sel, rec, payload, ok = reconcile.Safebits(x)
		if ok {
			break
		}
	}
	if !ok {
		return nil, SharedSecret{}, ErrInvalidCiphertext
	}

	var z [32]byte
	copy(z[:], payload[:32])
	var payloadR [ecc.ParityLen]byte
	copy(payloadR[:], payload[32:])

	ecc.EncodeInto(z, &payloadR)

	ePrime, err := sampleNoise(enc.rng)
	if err != nil {
		return nil, SharedSecret{}, err
	}
	g := expandGenerator(pk.Seed)
	tp := ring.MulAdd(g, b, ePrime)
	tp.Normalize()

	ct := &Ciphertext{
		Tp:     tp,
		Sel:    sel,
		Rec:    rec,
		Parity: payloadR,
	}

	ss := deriveSharedSecret(pk.MarshalBinary(), ct.MarshalBinary(), z)
	return ct, ss, nil
}

// deriveSharedSecret computes the KEM's transcript-bound shared secret:
// SHA3-256(domain ‖ SHA3-256(pk) ‖ SHA3-256(ct) ‖ z).
func deriveSharedSecret(pkBytes, ctBytes []byte, z [32]byte) SharedSecret {
	pkDigest := sha3.Sum256(pkBytes)
	return deriveSharedSecretFromDigest(pkDigest, ctBytes, z)
}

func deriveSharedSecretFromDigest(pkDigest [32]byte, ctBytes []byte, z [32]byte) SharedSecret {
	ctDigest := sha3.Sum256(ctBytes)

	h := sha3.New256()
	_, _ = h.Write([]byte(domainSeparator))
	_, _ = h.Write(pkDigest[:])
	_, _ = h.Write(ctDigest[:])
	_, _ = h.Write(z[:])

	var ss SharedSecret
	copy(ss[:], h.Sum(nil))
	return ss
}

// Encapsulate is the package-level convenience form of Encryptor, matching
// the scheme's encapsulate() entry point.
func Encapsulate(rng sampling.Rng, pk *PublicKey) (*Ciphertext, SharedSecret, error) {
	return NewEncryptor(rng).Encapsulate(pk)
}
