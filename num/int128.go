// Copyright (c) 2025 Visvasity LLC

package num

import (
	"database/sql/driver"
	"fmt"
	"math/big"

	"github.com/visvasity/newtypegen/newtype"
	"gopkg.in/yaml.v3"
	"lukechampine.com/uint128"
)

var (
	two128    = new(big.Int).Lsh(big.NewInt(1), 128)
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	u uint128.Uint128
}

func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{u: uint128.New(lo, hi)}
}

func Uint128From64(v uint64) Uint128 {
	return Uint128{u: uint128.From64(v)}
}

// ParseUint128 parses a base 10 unsigned 128-bit integer.
func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, fmt.Errorf("invalid 128-bit integer %q", s)
	}
	if b.Sign() < 0 || b.Cmp(two128) >= 0 {
		return Uint128{}, fmt.Errorf("value %s is out of range for an unsigned 128-bit integer", s)
	}
	return Uint128{u: uint128.FromBig(b)}, nil
}

func (x Uint128) Hi() uint64 { return x.u.Hi }
func (x Uint128) Lo() uint64 { return x.u.Lo }

func (x Uint128) IsZero() bool {
	return x.u.IsZero()
}

func (x Uint128) Compare(y Uint128) int {
	return x.u.Cmp(y.u)
}

func (x Uint128) Hash() uint64 {
	return newtype.Hash128(x.u.Hi, x.u.Lo)
}

func (x Uint128) Big() *big.Int {
	return x.u.Big()
}

func (x Uint128) String() string {
	return x.u.String()
}

// Int128 is a signed 128-bit integer stored in two's complement form.
type Int128 struct {
	u uint128.Uint128
}

func NewInt128(hi int64, lo uint64) Int128 {
	return Int128{u: uint128.New(lo, uint64(hi))}
}

func Int128From64(v int64) Int128 {
	hi := uint64(0)
	if v < 0 {
		hi = ^uint64(0)
	}
	return Int128{u: uint128.New(uint64(v), hi)}
}

// ParseInt128 parses a base 10 signed 128-bit integer.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf("invalid 128-bit integer %q", s)
	}
	if b.Cmp(minInt128) < 0 || b.Cmp(maxInt128) > 0 {
		return Int128{}, fmt.Errorf("value %s is out of range for a signed 128-bit integer", s)
	}
	if b.Sign() < 0 {
		b.Add(b, two128)
	}
	return Int128{u: uint128.FromBig(b)}, nil
}

func (x Int128) Hi() int64  { return int64(x.u.Hi) }
func (x Int128) Lo() uint64 { return x.u.Lo }

func (x Int128) IsZero() bool {
	return x.u.IsZero()
}

func (x Int128) Sign() int {
	switch {
	case int64(x.u.Hi) < 0:
		return -1
	case x.u.IsZero():
		return 0
	}
	return 1
}

// Compare orders by numeric value. Flipping the sign bit maps two's
// complement order onto unsigned order.
func (x Int128) Compare(y Int128) int {
	a, b := x.u, y.u
	a.Hi ^= 1 << 63
	b.Hi ^= 1 << 63
	return a.Cmp(b)
}

func (x Int128) Hash() uint64 {
	return newtype.Hash128(x.u.Hi, x.u.Lo)
}

func (x Int128) Big() *big.Int {
	b := x.u.Big()
	if x.Sign() < 0 {
		b.Sub(b, two128)
	}
	return b
}

func (x Int128) String() string {
	return x.Big().String()
}

// The 128-bit types encode as plain decimal numbers in json, text and yaml.
// SQL databases have no 128-bit integer column type, so they are stored as
// decimal text.

// jsonNumber rejects JSON tokens other than bare numbers; quoted decimals
// are not the encoded form.
func jsonNumber(data []byte) (string, error) {
	s := string(data)
	if s == "" || s[0] == '"' {
		return "", fmt.Errorf("cannot decode JSON %s into a 128-bit integer", s)
	}
	return s, nil
}

// yamlNumber rejects YAML nodes other than plain scalars.
func yamlNumber(node *yaml.Node) ([]byte, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!str" {
		return nil, fmt.Errorf("cannot decode YAML %q into a 128-bit integer", node.Value)
	}
	return []byte(node.Value), nil
}

func (x Uint128) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Uint128) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	text, err := jsonNumber(data)
	if err != nil {
		return err
	}
	v, err := ParseUint128(text)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Uint128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Uint128) UnmarshalText(text []byte) error {
	v, err := ParseUint128(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Uint128) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: x.String()}, nil
}

func (x *Uint128) UnmarshalYAML(node *yaml.Node) error {
	text, err := yamlNumber(node)
	if err != nil {
		return err
	}
	return x.UnmarshalText(text)
}

func (x Uint128) Value() (driver.Value, error) {
	return x.String(), nil
}

func (x *Uint128) Scan(src any) error {
	s, err := scanDecimal(src)
	if err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}

func (x Int128) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int128) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	text, err := jsonNumber(data)
	if err != nil {
		return err
	}
	v, err := ParseInt128(text)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int128) UnmarshalText(text []byte) error {
	v, err := ParseInt128(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int128) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: x.String()}, nil
}

func (x *Int128) UnmarshalYAML(node *yaml.Node) error {
	text, err := yamlNumber(node)
	if err != nil {
		return err
	}
	return x.UnmarshalText(text)
}

func (x Int128) Value() (driver.Value, error) {
	return x.String(), nil
}

func (x *Int128) Scan(src any) error {
	s, err := scanDecimal(src)
	if err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}

func scanDecimal(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int64:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("cannot scan %T into a 128-bit integer", src)
}
