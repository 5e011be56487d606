// Copyright (c) 2025 Visvasity LLC

package bounded

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/visvasity/newtypegen/newtype"
	"gopkg.in/yaml.v3"
)

// String is a text value whose length in bytes never exceeds the capacity of
// C.
type String[C Capacity] struct {
	s string
}

func NewString[C Capacity](s string) (String[C], error) {
	if err := newtype.CheckCapacity(capacityOf[C](), len(s)); err != nil {
		return String[C]{}, err
	}
	return String[C]{s: s}, nil
}

// MustString is like NewString but panics if s is too long.
func MustString[C Capacity](s string) String[C] {
	v, err := NewString[C](s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s String[C]) String() string { return s.s }
func (s String[C]) Len() int       { return len(s.s) }
func (s String[C]) Cap() int       { return capacityOf[C]() }

// Push appends str, failing if the result would exceed the capacity.
func (s *String[C]) Push(str string) error {
	if err := newtype.CheckCapacity(capacityOf[C](), len(s.s)+len(str)); err != nil {
		return err
	}
	s.s += str
	return nil
}

func (s String[C]) Equal(o String[C]) bool  { return s.s == o.s }
func (s String[C]) Compare(o String[C]) int { return strings.Compare(s.s, o.s) }
func (s String[C]) Hash() uint64            { return newtype.HashString(s.s) }
func (s String[C]) Clone() String[C]        { return String[C]{s: strings.Clone(s.s)} }

func (s *String[C]) set(v string) error {
	x, err := NewString[C](v)
	if err != nil {
		return err
	}
	*s = x
	return nil
}

func (s String[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.s)
}

func (s *String[C]) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return s.set(v)
}

func (s String[C]) MarshalText() ([]byte, error) {
	return []byte(s.s), nil
}

func (s *String[C]) UnmarshalText(text []byte) error {
	return s.set(string(text))
}

func (s String[C]) MarshalYAML() (any, error) {
	return s.s, nil
}

func (s *String[C]) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	return s.set(v)
}

func (s String[C]) Value() (driver.Value, error) {
	return s.s, nil
}

func (s *String[C]) Scan(src any) error {
	var v sql.Null[string]
	if err := v.Scan(src); err != nil {
		return err
	}
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into a bounded string")
	}
	return s.set(v.V)
}
