// Copyright (c) 2025 Visvasity LLC

package newtype

import (
	"encoding"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashInt hashes the 8-byte big-endian two's complement form of v, so equal
// integers hash equally regardless of their declared width.
func HashInt[T constraints.Integer](v T) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return xxhash.Sum64(b[:])
}

// Hash128 hashes a 128-bit value given as its high and low halves.
func Hash128(hi, lo uint64) uint64 {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], hi)
	binary.BigEndian.PutUint64(b[8:], lo)
	return xxhash.Sum64(b[:])
}

func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBinary hashes the binary encoding of v. A value that fails to encode
// hashes to zero.
func HashBinary(v encoding.BinaryMarshaler) uint64 {
	b, err := v.MarshalBinary()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(b)
}

// HashText is like HashBinary for the text encoding.
func HashText(v encoding.TextMarshaler) uint64 {
	b, err := v.MarshalText()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(b)
}
