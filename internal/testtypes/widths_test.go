// Copyright (c) 2025 Visvasity LLC

package testtypes

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visvasity/newtypegen/newtype"
	"github.com/visvasity/newtypegen/num"
)

type widthWrapper[W, T any] interface {
	newtype.Wrapper[W, T]
	json.Marshaler
	encoding.TextMarshaler
}

// checkWidth checks a wrapper at the two ends of its base type's range.
func checkWidth[W widthWrapper[W, T], T comparable, PW interface {
	*W
	json.Unmarshaler
	encoding.TextUnmarshaler
}](t *testing.T, wrap func(T) W, lo, hi T) {
	t.Helper()
	for _, v := range []T{lo, hi} {
		w := wrap(v)
		assert.Equal(t, v, w.Get())
		assert.True(t, w.Equal(wrap(v)))
		assert.Equal(t, 0, w.Compare(wrap(v)))
		assert.Equal(t, w.Hash(), wrap(v).Hash())

		data, err := json.Marshal(w)
		require.NoError(t, err)
		want, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(data))
		var fromJSON W
		require.NoError(t, PW(&fromJSON).UnmarshalJSON(data))
		assert.True(t, w.Equal(fromJSON), "%s", data)

		text, err := w.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprint(v), string(text))
		var fromText W
		require.NoError(t, PW(&fromText).UnmarshalText(text))
		assert.True(t, w.Equal(fromText), "%s", text)
	}

	a, b := wrap(lo), wrap(hi)
	assert.False(t, a.Equal(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.True(t, a.Less(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestIntegerWidths(t *testing.T) {
	t.Run("u8", func(t *testing.T) { checkWidth(t, NewU8, 0, math.MaxUint8) })
	t.Run("u16", func(t *testing.T) { checkWidth(t, NewU16, 0, math.MaxUint16) })
	t.Run("u32", func(t *testing.T) { checkWidth(t, NewU32, 0, math.MaxUint32) })
	t.Run("u64", func(t *testing.T) { checkWidth(t, NewU64, 0, math.MaxUint64) })
	t.Run("usize", func(t *testing.T) { checkWidth(t, NewUsize, 0, math.MaxUint) })
	t.Run("i8", func(t *testing.T) { checkWidth(t, NewI8, math.MinInt8, math.MaxInt8) })
	t.Run("i16", func(t *testing.T) { checkWidth(t, NewI16, math.MinInt16, math.MaxInt16) })
	t.Run("i32", func(t *testing.T) { checkWidth(t, NewI32, math.MinInt32, math.MaxInt32) })
	t.Run("i64", func(t *testing.T) { checkWidth(t, NewI64, math.MinInt64, math.MaxInt64) })
	t.Run("isize", func(t *testing.T) { checkWidth(t, NewIsize, math.MinInt, math.MaxInt) })
	t.Run("u128", func(t *testing.T) {
		checkWidth(t, NewU128, num.Uint128{}, num.NewUint128(math.MaxUint64, math.MaxUint64))
	})
	t.Run("i128", func(t *testing.T) {
		checkWidth(t, NewI128, num.NewInt128(math.MinInt64, 0), num.NewInt128(math.MaxInt64, math.MaxUint64))
	})
}

func TestNonZeroWidths(t *testing.T) {
	t.Run("u8", func(t *testing.T) {
		checkWidth(t, NewNonZeroU8, num.MustNonZero[uint8](1), num.MustNonZero[uint8](math.MaxUint8))
	})
	t.Run("u16", func(t *testing.T) {
		checkWidth(t, NewNonZeroU16, num.MustNonZero[uint16](1), num.MustNonZero[uint16](math.MaxUint16))
	})
	t.Run("u32", func(t *testing.T) {
		checkWidth(t, NewNonZeroU32, num.MustNonZero[uint32](1), num.MustNonZero[uint32](math.MaxUint32))
	})
	t.Run("u64", func(t *testing.T) {
		checkWidth(t, NewNonZeroU64, num.MustNonZero[uint64](1), num.MustNonZero[uint64](math.MaxUint64))
	})
	t.Run("usize", func(t *testing.T) {
		checkWidth(t, NewNonZeroUsize, num.MustNonZero[uint](1), num.MustNonZero[uint](math.MaxUint))
	})
	t.Run("i8", func(t *testing.T) {
		checkWidth(t, NewNonZeroI8, num.MustNonZero[int8](math.MinInt8), num.MustNonZero[int8](math.MaxInt8))
	})
	t.Run("i16", func(t *testing.T) {
		checkWidth(t, NewNonZeroI16, num.MustNonZero[int16](math.MinInt16), num.MustNonZero[int16](math.MaxInt16))
	})
	t.Run("i32", func(t *testing.T) {
		checkWidth(t, NewNonZeroI32, num.MustNonZero[int32](math.MinInt32), num.MustNonZero[int32](math.MaxInt32))
	})
	t.Run("i64", func(t *testing.T) {
		checkWidth(t, NewNonZeroI64, num.MustNonZero[int64](math.MinInt64), num.MustNonZero[int64](math.MaxInt64))
	})
	t.Run("isize", func(t *testing.T) {
		checkWidth(t, NewNonZeroIsize, num.MustNonZero[int](math.MinInt), num.MustNonZero[int](math.MaxInt))
	})
	t.Run("u128", func(t *testing.T) {
		lo, err := num.NewNonZeroU128(num.Uint128From64(1))
		require.NoError(t, err)
		hi, err := num.NewNonZeroU128(num.NewUint128(math.MaxUint64, math.MaxUint64))
		require.NoError(t, err)
		checkWidth(t, NewNonZeroU128, lo, hi)
	})
	t.Run("i128", func(t *testing.T) {
		lo, err := num.NewNonZeroI128(num.NewInt128(math.MinInt64, 0))
		require.NoError(t, err)
		hi, err := num.NewNonZeroI128(num.NewInt128(math.MaxInt64, math.MaxUint64))
		require.NoError(t, err)
		checkWidth(t, NewNonZeroI128, lo, hi)
	})
}

// A zero base value cannot be built, so no non-zero wrapper ever holds zero,
// whether constructed or decoded.
func TestNonZeroRejectsZero(t *testing.T) {
	zeroErrs := []error{
		func() error { _, err := num.NewNonZero[uint8](0); return err }(),
		func() error { _, err := num.NewNonZero[uint16](0); return err }(),
		func() error { _, err := num.NewNonZero[uint32](0); return err }(),
		func() error { _, err := num.NewNonZero[uint64](0); return err }(),
		func() error { _, err := num.NewNonZero[uint](0); return err }(),
		func() error { _, err := num.NewNonZero[int8](0); return err }(),
		func() error { _, err := num.NewNonZero[int16](0); return err }(),
		func() error { _, err := num.NewNonZero[int32](0); return err }(),
		func() error { _, err := num.NewNonZero[int64](0); return err }(),
		func() error { _, err := num.NewNonZero[int](0); return err }(),
		func() error { _, err := num.NewNonZeroU128(num.Uint128{}); return err }(),
		func() error { _, err := num.NewNonZeroI128(num.Int128{}); return err }(),
	}
	for i, err := range zeroErrs {
		assert.ErrorIs(t, err, num.ErrZero, "width #%d", i)
	}

	decoders := map[string]interface {
		json.Unmarshaler
		encoding.TextUnmarshaler
	}{
		"u8": new(NonZeroU8), "u16": new(NonZeroU16), "u32": new(NonZeroU32),
		"u64": new(NonZeroU64), "usize": new(NonZeroUsize), "u128": new(NonZeroU128),
		"i8": new(NonZeroI8), "i16": new(NonZeroI16), "i32": new(NonZeroI32),
		"i64": new(NonZeroI64), "isize": new(NonZeroIsize), "i128": new(NonZeroI128),
	}
	for name, d := range decoders {
		assert.ErrorIs(t, d.UnmarshalJSON([]byte("0")), num.ErrZero, name)
		assert.ErrorIs(t, d.UnmarshalText([]byte("0")), num.ErrZero, name)
	}
}
