// Copyright (c) 2025 Visvasity LLC

package num

import (
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// NonZeroU128 is an unsigned 128-bit integer that is known to be non-zero.
type NonZeroU128 struct {
	v Uint128
}

func NewNonZeroU128(v Uint128) (NonZeroU128, error) {
	if v.IsZero() {
		return NonZeroU128{}, ErrZero
	}
	return NonZeroU128{v: v}, nil
}

func (n NonZeroU128) Get() Uint128                 { return n.v }
func (n NonZeroU128) Compare(o NonZeroU128) int    { return n.v.Compare(o.v) }
func (n NonZeroU128) Hash() uint64                 { return n.v.Hash() }
func (n NonZeroU128) String() string               { return n.v.String() }
func (n NonZeroU128) MarshalJSON() ([]byte, error) { return n.v.MarshalJSON() }
func (n NonZeroU128) MarshalText() ([]byte, error) { return n.v.MarshalText() }
func (n NonZeroU128) MarshalYAML() (any, error)    { return n.v.MarshalYAML() }
func (n NonZeroU128) Value() (driver.Value, error) { return n.v.Value() }

func (n *NonZeroU128) set(v Uint128) error {
	if v.IsZero() {
		return ErrZero
	}
	n.v = v
	return nil
}

func (n *NonZeroU128) UnmarshalJSON(data []byte) error {
	var v Uint128
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return n.set(v)
}

func (n *NonZeroU128) UnmarshalText(text []byte) error {
	var v Uint128
	if err := v.UnmarshalText(text); err != nil {
		return err
	}
	return n.set(v)
}

func (n *NonZeroU128) UnmarshalYAML(node *yaml.Node) error {
	var v Uint128
	if err := v.UnmarshalYAML(node); err != nil {
		return err
	}
	return n.set(v)
}

func (n *NonZeroU128) Scan(src any) error {
	var v Uint128
	if err := v.Scan(src); err != nil {
		return err
	}
	return n.set(v)
}

// NonZeroI128 is a signed 128-bit integer that is known to be non-zero.
type NonZeroI128 struct {
	v Int128
}

func NewNonZeroI128(v Int128) (NonZeroI128, error) {
	if v.IsZero() {
		return NonZeroI128{}, ErrZero
	}
	return NonZeroI128{v: v}, nil
}

func (n NonZeroI128) Get() Int128                  { return n.v }
func (n NonZeroI128) Compare(o NonZeroI128) int    { return n.v.Compare(o.v) }
func (n NonZeroI128) Hash() uint64                 { return n.v.Hash() }
func (n NonZeroI128) String() string               { return n.v.String() }
func (n NonZeroI128) MarshalJSON() ([]byte, error) { return n.v.MarshalJSON() }
func (n NonZeroI128) MarshalText() ([]byte, error) { return n.v.MarshalText() }
func (n NonZeroI128) MarshalYAML() (any, error)    { return n.v.MarshalYAML() }
func (n NonZeroI128) Value() (driver.Value, error) { return n.v.Value() }

func (n *NonZeroI128) set(v Int128) error {
	if v.IsZero() {
		return ErrZero
	}
	n.v = v
	return nil
}

func (n *NonZeroI128) UnmarshalJSON(data []byte) error {
	var v Int128
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return n.set(v)
}

func (n *NonZeroI128) UnmarshalText(text []byte) error {
	var v Int128
	if err := v.UnmarshalText(text); err != nil {
		return err
	}
	return n.set(v)
}

func (n *NonZeroI128) UnmarshalYAML(node *yaml.Node) error {
	var v Int128
	if err := v.UnmarshalYAML(node); err != nil {
		return err
	}
	return n.set(v)
}

func (n *NonZeroI128) Scan(src any) error {
	var v Int128
	if err := v.Scan(src); err != nil {
		return err
	}
	return n.set(v)
}
