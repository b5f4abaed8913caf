package hila5

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// splitmixRng is a small deterministic byte source for reproducible tests;
// it is not suitable for production use.
type splitmixRng struct{ state uint64 }

func (r *splitmixRng) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (r *splitmixRng) Fill(buf []byte) error {
	for len(buf) > 0 {
		v := r.next()
		for i := 0; i < 8 && len(buf) > 0; i++ {
			buf[0] = byte(v)
			v >>= 8
			buf = buf[1:]
		}
	}
	return nil
}

type failingRng struct{}

func (failingRng) Fill([]byte) error { return errInjected }

var errInjected = errors.New("injected failure")

func TestPublicKeyWireRoundTrip(t *testing.T) {
	rng := &splitmixRng{state: 1}
	pk, _, err := GenerateKeyPair(rng)
	require.NoError(t, err)

	b := pk.MarshalBinary()
	require.Len(t, b, PublicKeyLen)

	got, err := UnmarshalPublicKey(b)
	require.NoError(t, err)
	if diff := cmp.Diff(pk, got); diff != "" {
		t.Fatalf("public key changed across the wire (-want +got):\n%s", diff)
	}
}

func TestPrivateKeyWireRoundTrip(t *testing.T) {
	rng := &splitmixRng{state: 2}
	_, sk, err := GenerateKeyPair(rng)
	require.NoError(t, err)

	b := sk.MarshalBinary()
	require.Len(t, b, PrivateKeyLen)

	got, err := UnmarshalPrivateKey(b)
	require.NoError(t, err)
	require.Equal(t, sk, got)
}

func TestCiphertextWireRoundTrip(t *testing.T) {
	rng := &splitmixRng{state: 3}
	pk, _, err := GenerateKeyPair(rng)
	require.NoError(t, err)

	ct, _, err := Encapsulate(rng, pk)
	require.NoError(t, err)

	b := ct.MarshalBinary()
	require.Len(t, b, CiphertextLen)

	got, err := UnmarshalCiphertext(b)
	require.NoError(t, err)
	require.Equal(t, ct, got)
}

// TestKEMCorrectness covers P6: an honest encapsulation against an honest
// key pair must decapsulate to the same shared secret, across several
// independent seeds.
func TestKEMCorrectness(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		rng := &splitmixRng{state: seed}

		pk, sk, err := GenerateKeyPair(rng)
		require.NoError(t, err)

		ct, ss, err := Encapsulate(rng, pk)
		require.NoError(t, err)

		got := Decapsulate(sk, ct)
		require.Equal(t, ss, got, "seed %d: shared secret mismatch", seed)
	}
}

func TestGenerateKeyPairPropagatesRngError(t *testing.T) {
	_, _, err := GenerateKeyPair(failingRng{})
	require.ErrorIs(t, err, ErrRng)
}

func TestEncapsulatePropagatesRngError(t *testing.T) {
	rng := &splitmixRng{state: 9}
	pk, _, err := GenerateKeyPair(rng)
	require.NoError(t, err)

	_, _, err = Encapsulate(failingRng{}, pk)
	require.ErrorIs(t, err, ErrRng)
}

func TestUnmarshalRejectsWrongLength(t *testing.T) {
	_, err := UnmarshalPublicKey(make([]byte, PublicKeyLen-1))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = UnmarshalPrivateKey(make([]byte, PrivateKeyLen+1))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = UnmarshalCiphertext(make([]byte, 0))
	require.ErrorIs(t, err, ErrInvalidLength)
}

// TestDecapsulateDisagreesOnForgedCiphertext documents the KEM's no-reject
// policy: a tampered ciphertext still decapsulates, just to a different
// secret.
func TestDecapsulateDisagreesOnForgedCiphertext(t *testing.T) {
	rng := &splitmixRng{state: 42}
	pk, sk, err := GenerateKeyPair(rng)
	require.NoError(t, err)

	ct, ss, err := Encapsulate(rng, pk)
	require.NoError(t, err)

	ct.Parity[0] ^= 0xff

	got := Decapsulate(sk, ct)
	require.NotEqual(t, ss, got)
}
