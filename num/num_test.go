// Copyright (c) 2025 Visvasity LLC

package num

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIntHelpers(t *testing.T) {
	assert.True(t, Signed[int8]())
	assert.False(t, Signed[uint64]())
	assert.Equal(t, 16, BitSize[uint16]())
	assert.Equal(t, 64, BitSize[int64]())

	assert.Equal(t, "-128", FormatInt(int8(math.MinInt8)))
	assert.Equal(t, "18446744073709551615", FormatInt(uint64(math.MaxUint64)))

	v, err := ParseInt[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)

	_, err = ParseInt[int8]("128")
	assert.Error(t, err)
	_, err = ParseInt[uint32]("-1")
	assert.Error(t, err)
}

func TestNonZero(t *testing.T) {
	_, err := NewNonZero(0)
	assert.ErrorIs(t, err, ErrZero)
	assert.Panics(t, func() { MustNonZero[uint8](0) })

	a := MustNonZero[int32](-3)
	b := MustNonZero[int32](7)
	assert.Equal(t, int32(-3), a.Get())
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, "-3", a.String())
	assert.Equal(t, MustNonZero[int32](-3).Hash(), a.Hash())

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))

	var n NonZero[int32]
	require.NoError(t, json.Unmarshal([]byte("12"), &n))
	assert.Equal(t, int32(12), n.Get())
	assert.ErrorIs(t, json.Unmarshal([]byte("0"), &n), ErrZero)
	assert.Equal(t, int32(12), n.Get())

	assert.ErrorIs(t, n.UnmarshalText([]byte("0")), ErrZero)
	assert.ErrorIs(t, yaml.Unmarshal([]byte("0"), &n), ErrZero)
	assert.ErrorIs(t, n.Scan(int64(0)), ErrZero)
	assert.Error(t, n.Scan(nil))

	require.NoError(t, n.Scan(int64(5)))
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func TestUint128(t *testing.T) {
	max := NewUint128(math.MaxUint64, math.MaxUint64)
	assert.Equal(t, "340282366920938463463374607431768211455", max.String())
	assert.Equal(t, uint64(math.MaxUint64), max.Hi())

	x, err := ParseUint128("18446744073709551616")
	require.NoError(t, err)
	assert.Equal(t, NewUint128(1, 0), x)
	assert.Equal(t, 1, x.Compare(Uint128From64(math.MaxUint64)))
	assert.Equal(t, 0, x.Compare(NewUint128(1, 0)))

	_, err = ParseUint128("340282366920938463463374607431768211456")
	assert.Error(t, err)
	_, err = ParseUint128("-1")
	assert.Error(t, err)
	_, err = ParseUint128("ten")
	assert.Error(t, err)

	data, err := json.Marshal(x)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", string(data))

	var y Uint128
	require.NoError(t, json.Unmarshal(data, &y))
	assert.Equal(t, x, y)
	assert.Error(t, json.Unmarshal([]byte(`"42"`), &y))
	assert.Equal(t, x, y)
	assert.Error(t, yaml.Unmarshal([]byte(`"42"`), &y))
	require.NoError(t, json.Unmarshal([]byte("42"), &y))
	assert.Equal(t, Uint128From64(42), y)

	data, err = yaml.Marshal(map[string]Uint128{"v": x})
	require.NoError(t, err)
	assert.Equal(t, "v: 18446744073709551616\n", string(data))

	require.NoError(t, y.Scan([]byte("7")))
	assert.Equal(t, Uint128From64(7), y)
	v, err := y.Value()
	require.NoError(t, err)
	assert.Equal(t, "7", v)
	assert.Error(t, y.Scan(1.5))
}

func TestInt128(t *testing.T) {
	min, err := ParseInt128("-170141183460469231731687303715884105728")
	require.NoError(t, err)
	max, err := ParseInt128("170141183460469231731687303715884105727")
	require.NoError(t, err)
	assert.Equal(t, "-170141183460469231731687303715884105728", min.String())
	assert.Equal(t, "170141183460469231731687303715884105727", max.String())
	assert.Equal(t, int64(math.MinInt64), min.Hi())

	_, err = ParseInt128("170141183460469231731687303715884105728")
	assert.Error(t, err)

	neg, zero, pos := Int128From64(-1), Int128From64(0), Int128From64(1)
	assert.Equal(t, -1, neg.Sign())
	assert.Equal(t, 0, zero.Sign())
	assert.True(t, zero.IsZero())
	assert.Equal(t, -1, min.Compare(neg))
	assert.Equal(t, -1, neg.Compare(zero))
	assert.Equal(t, -1, zero.Compare(pos))
	assert.Equal(t, -1, pos.Compare(max))
	assert.Equal(t, NewInt128(-1, math.MaxUint64), neg)
	assert.Equal(t, "-1", neg.Big().String())

	var x Int128
	require.NoError(t, json.Unmarshal([]byte("-42"), &x))
	assert.Equal(t, Int128From64(-42), x)
	require.NoError(t, yaml.Unmarshal([]byte("-7"), &x))
	assert.Equal(t, Int128From64(-7), x)
	assert.Error(t, json.Unmarshal([]byte(`"-5"`), &x))
	assert.Error(t, yaml.Unmarshal([]byte(`'-5'`), &x))
	assert.Equal(t, Int128From64(-7), x)
	require.NoError(t, x.Scan(int64(-9)))
	assert.Equal(t, Int128From64(-9), x)
}

func TestNonZero128(t *testing.T) {
	_, err := NewNonZeroU128(Uint128{})
	assert.ErrorIs(t, err, ErrZero)
	_, err = NewNonZeroI128(Int128{})
	assert.ErrorIs(t, err, ErrZero)

	u, err := NewNonZeroU128(NewUint128(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", u.String())

	var n NonZeroI128
	assert.ErrorIs(t, json.Unmarshal([]byte("0"), &n), ErrZero)
	require.NoError(t, json.Unmarshal([]byte("-5"), &n))
	assert.Equal(t, Int128From64(-5), n.Get())
}
