// Copyright (c) 2025 Visvasity LLC

package num

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed returns true if T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	var x T
	return x-1 < 0
}

// BitSize returns the width of T in bits.
func BitSize[T constraints.Integer]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

// FormatInt formats v in base 10.
func FormatInt[T constraints.Integer](v T) string {
	if Signed[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// ParseInt parses a base 10 integer that must fit in T.
func ParseInt[T constraints.Integer](s string) (T, error) {
	if Signed[T]() {
		v, err := strconv.ParseInt(s, 10, BitSize[T]())
		return T(v), err
	}
	v, err := strconv.ParseUint(s, 10, BitSize[T]())
	return T(v), err
}
