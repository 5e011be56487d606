// Copyright (c) 2025 Visvasity LLC

package bounded

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/visvasity/newtypegen/newtype"
	"gopkg.in/yaml.v3"
)

// Bytes is a byte buffer whose storage is allocated once with the capacity of
// C and never reallocated.
type Bytes[C Capacity] struct {
	b []byte
}

// NewBytes copies src into a new buffer.
func NewBytes[C Capacity](src []byte) (Bytes[C], error) {
	n := capacityOf[C]()
	if err := newtype.CheckCapacity(n, len(src)); err != nil {
		return Bytes[C]{}, err
	}
	b := make([]byte, len(src), n)
	copy(b, src)
	return Bytes[C]{b: b}, nil
}

// MustBytes is like NewBytes but panics if src is too long.
func MustBytes[C Capacity](src []byte) Bytes[C] {
	v, err := NewBytes[C](src)
	if err != nil {
		panic(err)
	}
	return v
}

// Bytes returns the contents. The result must not be modified; its capacity
// is clipped so appending to it never writes into the buffer.
func (v Bytes[C]) Bytes() []byte {
	return v.b[:len(v.b):len(v.b)]
}

func (v Bytes[C]) Len() int { return len(v.b) }
func (v Bytes[C]) Cap() int { return capacityOf[C]() }

// Append adds p to the end of the buffer, failing without modification if
// the result would exceed the capacity.
func (v *Bytes[C]) Append(p ...byte) error {
	n := capacityOf[C]()
	if err := newtype.CheckCapacity(n, len(v.b)+len(p)); err != nil {
		return err
	}
	if v.b == nil {
		v.b = make([]byte, 0, n)
	}
	v.b = append(v.b, p...)
	return nil
}

func (v Bytes[C]) Equal(o Bytes[C]) bool  { return bytes.Equal(v.b, o.b) }
func (v Bytes[C]) Compare(o Bytes[C]) int { return bytes.Compare(v.b, o.b) }
func (v Bytes[C]) Hash() uint64           { return newtype.HashBytes(v.b) }
func (v Bytes[C]) String() string         { return fmt.Sprint(v.b) }

// Clone returns a copy with its own storage.
func (v Bytes[C]) Clone() Bytes[C] {
	if v.b == nil {
		return Bytes[C]{}
	}
	b := make([]byte, len(v.b), capacityOf[C]())
	copy(b, v.b)
	return Bytes[C]{b: b}
}

func (v *Bytes[C]) set(p []byte) error {
	x, err := NewBytes[C](p)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (v Bytes[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Bytes())
}

func (v *Bytes[C]) UnmarshalJSON(data []byte) error {
	var p []byte
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	return v.set(p)
}

func (v Bytes[C]) MarshalYAML() (any, error) {
	return v.Bytes(), nil
}

func (v *Bytes[C]) UnmarshalYAML(node *yaml.Node) error {
	var p []byte
	if err := node.Decode(&p); err != nil {
		return err
	}
	return v.set(p)
}

func (v Bytes[C]) Value() (driver.Value, error) {
	return v.Bytes(), nil
}

// Scan reads NULL as an empty buffer, the same way a []byte destination
// reads it as nil.
func (v *Bytes[C]) Scan(src any) error {
	var p sql.Null[[]byte]
	if err := p.Scan(src); err != nil {
		return err
	}
	return v.set(p.V)
}
