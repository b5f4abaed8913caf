package sampling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func sequentialSeed() []byte {
	seed := make([]byte, SeedLen)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestParseKnownSeed(t *testing.T) {
	v := Parse(sequentialSeed(), 1024)

	require.Equal(t, []int32{34940, 52800, 640, 45901, 14601}, v[:5])
	require.Equal(t, []int32{46031, 8999, 56069, 2120, 49166}, v[len(v)-5:])
}

func TestParsePanicsOnShortSeed(t *testing.T) {
	require.Panics(t, func() {
		Parse(make([]byte, SeedLen-1), 1024)
	})
}

type fixedRng struct{ b byte }

func (f fixedRng) Fill(buf []byte) error {
	for i := range buf {
		buf[i] = f.b
	}
	return nil
}

func TestPsi16Range(t *testing.T) {
	v, err := Psi16(fixedRng{0xff}, 1024)
	require.NoError(t, err)
	// 32 set bits -> weight 32 -> x = 32-16 = 16, no reduction needed.
	for _, c := range v {
		require.Equal(t, int32(16), c)
	}

	v, err = Psi16(fixedRng{0x00}, 1024)
	require.NoError(t, err)
	// 0 set bits -> weight 0 -> x = -16 -> q-16.
	for _, c := range v {
		require.Equal(t, q-16, c)
	}
}

type failingRng struct{}

func (failingRng) Fill([]byte) error { return errFill }

var errFill = errors.New("fill failed")

func TestPsi16PropagatesRngError(t *testing.T) {
	_, err := Psi16(failingRng{}, 1024)
	require.Error(t, err)
}
