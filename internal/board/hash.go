package board

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash128 is the stable 128-bit content digest required by spec.md §3. It is
// built from two independently-seeded xxhash64 streams over the same byte
// serialization of the grid, using a fixed-seed, reproducible-hash
// convention (a full content hash rather than incremental Zobrist keys,
// since spec.md requires the hash to be a pure function of `position`
// alone, not of move order).
type Hash128 struct {
	Lo, Hi uint64
}

// hashSeedLo and hashSeedHi are fixed seeds so the digest is reproducible
// across runs (spec.md's determinism property, §8).
const (
	hashSeedLo uint64 = 0x98F107A2BEEF1234
	hashSeedHi uint64 = 0xC001D00D5EED0001
)

// hashPosition computes the content hash of a grid. Each cell is encoded as
// a single byte (Color is -1, 0, or 1) so the digest changes whenever any
// cell changes, with no dependence on how the position was reached.
func hashPosition(position *[Size][Size]Color) Hash128 {
	var buf [Size * Size]byte
	i := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			buf[i] = byte(position[x][y])
			i++
		}
	}

	lo := xxhash.NewWithSeed(hashSeedLo)
	lo.Write(buf[:])
	hi := xxhash.NewWithSeed(hashSeedHi)
	hi.Write(buf[:])

	return Hash128{Lo: lo.Sum64(), Hi: hi.Sum64()}
}

// Bytes renders the hash as 16 big-endian bytes (Hi first), the form String
// encodes as hex.
func (h Hash128) Bytes() [16]byte {
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], h.Hi)
	binary.BigEndian.PutUint64(out[8:16], h.Lo)
	return out
}

// String renders the hash as hex; storage.go records it in each board
// snapshot.
func (h Hash128) String() string {
	b := h.Bytes()
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 32)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0xf]
	}
	return string(out)
}
