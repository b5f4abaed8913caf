package hila5

import (
	"golang.org/x/crypto/sha3"

	"github.com/hila5/hila5-go/ring"
	"github.com/hila5/hila5-go/sampling"
)

// KeyGenerator produces HILA5 key pairs against a caller-supplied entropy
// source. Stateless beyond that source: callers may use one KeyGenerator
// for many key pairs, or build a fresh one per call.
type KeyGenerator struct {
	rng sampling.Rng
}

// NewKeyGenerator returns a KeyGenerator drawing randomness from rng.
func NewKeyGenerator(rng sampling.Rng) *KeyGenerator {
	return &KeyGenerator{rng: rng}
}

// GenerateKeyPair runs the HILA5 key generation algorithm:
//
//  1. sample secret noise a and error e, both lifted to the NTT domain;
//  2. draw a fresh 32-byte seed and expand it into the public generator g;
//  3. compute t = g*a + e, the public element;
//  4. bind the private key to the public key via SHA3-256(pk).
func (kg *KeyGenerator) GenerateKeyPair() (*PublicKey, *PrivateKey, error) {
	a, err := sampleNoise(kg.rng)
	if err != nil {
		return nil, nil, err
	}
	e, err := sampleNoise(kg.rng)
	if err != nil {
		return nil, nil, err
	}

	seed, err := fillSeed(kg.rng)
	if err != nil {
		return nil, nil, err
	}
	g := expandGenerator(seed)

	t := ring.MulAdd(g, a, e)
	t.Normalize()

	pk := &PublicKey{Seed: seed, T: t}
	digest := sha3.Sum256(pk.MarshalBinary())

	sk := &PrivateKey{A: a, PkDigest: digest}
	return pk, sk, nil
}

// GenerateKeyPair is the package-level convenience form of KeyGenerator,
// matching the scheme's keypair() entry point.
func GenerateKeyPair(rng sampling.Rng) (*PublicKey, *PrivateKey, error) {
	return NewKeyGenerator(rng).GenerateKeyPair()
}
