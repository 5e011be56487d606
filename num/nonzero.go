// Copyright (c) 2025 Visvasity LLC

package num

import (
	"cmp"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/visvasity/newtypegen/newtype"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// ErrZero is returned when a non-zero integer is built from zero.
var ErrZero = errors.New("value must be non-zero")

// NonZero is an integer that is known to be non-zero. Values are created by
// NewNonZero or by decoding; the zero value of NonZero itself is not a valid
// non-zero integer and is only useful as a decoding target.
type NonZero[T constraints.Integer] struct {
	v T
}

func NewNonZero[T constraints.Integer](v T) (NonZero[T], error) {
	if v == 0 {
		return NonZero[T]{}, ErrZero
	}
	return NonZero[T]{v: v}, nil
}

// MustNonZero is like NewNonZero but panics on zero.
func MustNonZero[T constraints.Integer](v T) NonZero[T] {
	n, err := NewNonZero(v)
	if err != nil {
		panic(err)
	}
	return n
}

func (n NonZero[T]) Get() T {
	return n.v
}

func (n NonZero[T]) Compare(o NonZero[T]) int {
	return cmp.Compare(n.v, o.v)
}

func (n NonZero[T]) Hash() uint64 {
	return newtype.HashInt(n.v)
}

func (n NonZero[T]) String() string {
	return FormatInt(n.v)
}

func (n *NonZero[T]) set(v T) error {
	if v == 0 {
		return ErrZero
	}
	n.v = v
	return nil
}

func (n NonZero[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.v)
}

func (n *NonZero[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return n.set(v)
}

func (n NonZero[T]) MarshalText() ([]byte, error) {
	return []byte(FormatInt(n.v)), nil
}

func (n *NonZero[T]) UnmarshalText(text []byte) error {
	v, err := ParseInt[T](string(text))
	if err != nil {
		return err
	}
	return n.set(v)
}

func (n NonZero[T]) MarshalYAML() (any, error) {
	return n.v, nil
}

func (n *NonZero[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	return n.set(v)
}

func (n NonZero[T]) Value() (driver.Value, error) {
	return driver.DefaultParameterConverter.ConvertValue(n.v)
}

func (n *NonZero[T]) Scan(src any) error {
	var v sql.Null[T]
	if err := v.Scan(src); err != nil {
		return err
	}
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into a non-zero integer")
	}
	return n.set(v.V)
}
