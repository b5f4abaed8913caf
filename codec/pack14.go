// Package codec implements the wire-level 14-bit packing of ring elements:
// four consecutive coefficients (each in [0, Q), 14 bits wide) serialize
// into exactly seven bytes, giving a fixed 1792-byte encoding of a
// 1024-coefficient vector.
package codec

import (
	"fmt"

	"github.com/hila5/hila5-go/ring"
)

// PackedLen is the wire size, in bytes, of a packed ring element.
const PackedLen = 14 * ring.N / 8

// Pack14 serializes v's coefficients, which must already be normalized to
// [0, Q) and number exactly ring.N, into PackedLen bytes. Behavior is
// unspecified if v holds out-of-range values — callers normalize before
// packing.
func Pack14(v []int32) []byte {
	if len(v) != ring.N {
		panic(fmt.Sprintf("codec: pack14: want %d coefficients, got %d", ring.N, len(v)))
	}

	d := make([]byte, PackedLen)
	for i := 0; i < ring.N/4; i++ {
		x0 := uint32(v[4*i])
		x1 := uint32(v[4*i+1])
		x2 := uint32(v[4*i+2])
		x3 := uint32(v[4*i+3])

		d[7*i+0] = byte(x0 & 0xff)
		d[7*i+1] = byte((x1&0x03)<<6 | (x0 >> 8))
		d[7*i+2] = byte((x1 >> 2) & 0xff)
		d[7*i+3] = byte((x2&0x0f)<<4 | (x1 >> 10))
		d[7*i+4] = byte((x2 >> 4) & 0xff)
		d[7*i+5] = byte((x3&0x3f)<<2 | (x2 >> 12))
		d[7*i+6] = byte(x3 >> 6)
	}
	return d
}

// Unpack14 is the mechanical inverse of Pack14. It rejects any input whose
// length is not exactly PackedLen.
func Unpack14(d []byte) (v [ring.N]int32, err error) {
	if len(d) != PackedLen {
		return v, fmt.Errorf("codec: unpack14: want %d bytes, got %d", PackedLen, len(d))
	}

	for i := 0; i < ring.N/4; i++ {
		c := d[7*i : 7*i+7]

		v[4*i+0] = int32(c[1]&0x3f)<<8 | int32(c[0])
		v[4*i+1] = int32(c[3]&0x0f)<<10 | int32(c[2])<<2 | int32(c[1]>>6)
		v[4*i+2] = int32(c[5]&0x03)<<12 | int32(c[4])<<4 | int32(c[3]>>4)
		v[4*i+3] = int32(c[6])<<6 | int32(c[5]>>2)
	}
	return v, nil
}
