package sampling

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// SeedLen is the size, in bytes, of the seed that Parse expands.
const SeedLen = 32

// Parse expands a 32-byte seed into a length-n vector uniform mod q
// ("hila5_parse" in the original literature): a SHAKE-256 stream keyed on
// the seed is read two bytes at a time as a little-endian uint16 and
// accepted whenever it falls below 5*q (~93.75% of draws); rejected draws
// are simply replaced by the next two bytes of the same stream. Accepted
// draws are returned as they are, not reduced: each coefficient lies in
// [0, 5*q), and its residue mod q is uniform over [0, q).
func Parse(seed []byte, n int) []int32 {
	if len(seed) != SeedLen {
		panic("sampling: Parse: seed must be 32 bytes")
	}

	xof := sha3.NewShake256()
	_, _ = xof.Write(seed)

	const bound = 5 * q

	v := make([]int32, n)
	var buf [2]byte
	for i := range v {
		for {
			_, _ = xof.Read(buf[:])
			x := int32(binary.LittleEndian.Uint16(buf[:]))
			if x < bound {
				v[i] = x
				break
			}
		}
	}
	return v
}
