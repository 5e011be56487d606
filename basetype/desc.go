// Copyright (c) 2025 Visvasity LLC

// Package basetype describes the base types newtypegen can wrap. Each
// supported family maps to a Desc that tells the generator how to compare,
// hash, duplicate, format and encode values of the base type. Named Go types
// outside the fixed families are analysed with go/types (see FromType).
package basetype

import "fmt"

type EqualStrategy int

const (
	EqualOperator EqualStrategy = iota // a == b
	EqualBytes                         // bytes.Equal(a, b)
	EqualMethod                        // a.Equal(b)
	EqualCompare                       // a.Compare(b) == 0
)

type OrderStrategy int

const (
	OrderCmp       OrderStrategy = iota // cmp.Compare(a, b)
	OrderBytes                          // bytes.Compare(a, b)
	OrderByteArray                      // bytes.Compare(a[:], b[:])
	OrderMethod                         // a.Compare(b)
)

type HashStrategy int

const (
	HashInt       HashStrategy = iota // newtype.HashInt(v)
	HashString                        // newtype.HashString(string(v))
	HashBytes                         // newtype.HashBytes(v)
	HashByteArray                     // newtype.HashBytes(v[:])
	HashMethod                        // v.Hash()
	HashBinary                        // newtype.HashBinary(v)
	HashText                          // newtype.HashText(v)
)

type CloneStrategy int

const (
	CloneNone   CloneStrategy = iota // copy semantics
	CloneBytes                       // slices.Clone(v)
	CloneString                      // strings.Clone(string(v))
	CloneMethod                      // v.Clone()
)

type TextStrategy int

const (
	TextNone   TextStrategy = iota
	TextInt                 // num.FormatInt / num.ParseInt
	TextString              // string conversion
	TextMethod              // base implements encoding.TextMarshaler
)

type SQLStrategy int

const (
	SQLNone    SQLStrategy = iota
	SQLBuiltin             // driver.DefaultParameterConverter and sql.Null
	SQLMethod              // base implements driver.Valuer and sql.Scanner
)

// Import is a package imported by the generated code for a base type.
type Import struct {
	Name string // package name used in generated code
	Path string
}

// Desc describes one base type.
type Desc struct {
	Family string

	// Type is the Go type expression of the base as written in generated code.
	Type    string
	Imports []Import

	// Copy is true for base types whose values can be duplicated by plain
	// assignment without sharing mutable storage.
	Copy bool

	// Sequence is true for byte and text bases, the only ones that accept a
	// capacity.
	Sequence bool

	// Source is the constructor argument type of a bounded wrapper and New is
	// the fallible function that builds the bounded base from it.
	Source string
	New    string

	Equal EqualStrategy
	Order OrderStrategy
	Hash  HashStrategy
	Clone CloneStrategy
	Text  TextStrategy
	SQL   SQLStrategy
}

// Bounded returns true if the base is a fixed-capacity container.
func (d *Desc) Bounded() bool {
	return d.New != ""
}

// Supports returns an error naming the missing strategy if the base cannot
// provide the text or sql adapter.
func (d *Desc) Supports(format string) error {
	switch format {
	case "text":
		if d.Text == TextNone {
			return fmt.Errorf("base type %s has no text encoding", d.Type)
		}
	case "sql":
		if d.SQL == SQLNone {
			return fmt.Errorf("base type %s has no sql encoding", d.Type)
		}
	}
	return nil
}
