// Copyright (c) 2025 Visvasity LLC

package basetype

import (
	"go/types"

	"github.com/pkg/errors"
)

// ErrCapability is wrapped by errors that reject a Go type lacking one of the
// capabilities every wrapper must provide.
var ErrCapability = errors.New("missing capability")

// FromType analyses a Go type for the generic family. The type must support
// equality, a total order and hashing; non-copyable types must also have a
// Clone method. Equality uses the type's Equal method if it has one, else its
// Compare method, so that it agrees with the order; a type with an Equal
// method must also have a Hash method. The qualifier controls how package
// names appear in the Type expression and every package it names is recorded
// in Imports.
func FromType(t types.Type, local *types.Package) (*Desc, error) {
	d := &Desc{Family: "go"}

	qualifier := func(p *types.Package) string {
		if p == local {
			return ""
		}
		for _, imp := range d.Imports {
			if imp.Path == p.Path() {
				return imp.Name
			}
		}
		d.Imports = append(d.Imports, Import{Name: p.Name(), Path: p.Path()})
		return p.Name()
	}
	d.Type = types.TypeString(t, qualifier)

	basic, _ := t.Underlying().(*types.Basic)
	isInt := basic != nil && basic.Info()&types.IsInteger != 0
	isString := basic != nil && basic.Info()&types.IsString != 0
	isByteSlice := isByteSlice(t.Underlying())
	isByteArray := isByteArray(t.Underlying())

	isComparable := types.Comparable(t)
	hasEqual := hasMethod(t, false, "Equal", []types.Type{t}, []types.Type{boolType})

	switch {
	case hasMethod(t, false, "Compare", []types.Type{t}, []types.Type{intType}):
		d.Order = OrderMethod
	case isInt || isString:
		d.Order = OrderCmp
	case isByteSlice:
		d.Order = OrderBytes
	case isByteArray:
		d.Order = OrderByteArray
	default:
		return nil, errors.Wrapf(ErrCapability, "%s has no total order", d.Type)
	}

	// Equality follows the base's own methods so that it agrees with Compare.
	switch {
	case hasEqual:
		d.Equal = EqualMethod
	case d.Order == OrderMethod:
		d.Equal = EqualCompare
	case isComparable:
		d.Equal = EqualOperator
	case isByteSlice:
		d.Equal = EqualBytes
	default:
		return nil, errors.Wrapf(ErrCapability, "%s has no equality", d.Type)
	}

	switch {
	case hasMethod(t, false, "Hash", nil, []types.Type{uint64Type}):
		d.Hash = HashMethod
	case d.Equal == EqualMethod:
		return nil, errors.Wrapf(ErrCapability, "%s has an Equal method but no Hash method", d.Type)
	case isInt:
		d.Hash = HashInt
	case isString:
		d.Hash = HashString
	case isByteSlice:
		d.Hash = HashBytes
	case isByteArray:
		d.Hash = HashByteArray
	case hasMethod(t, false, "MarshalBinary", nil, []types.Type{byteSliceType, errorType}):
		d.Hash = HashBinary
	case hasMethod(t, false, "MarshalText", nil, []types.Type{byteSliceType, errorType}):
		d.Hash = HashText
	default:
		return nil, errors.Wrapf(ErrCapability, "%s has no hashable representation", d.Type)
	}

	switch {
	case isCopyable(t.Underlying(), nil) || (isComparable && isOpaque(t, local)):
		d.Copy = true
		d.Clone = CloneNone
	case hasMethod(t, false, "Clone", nil, []types.Type{t}):
		d.Clone = CloneMethod
	case isByteSlice:
		d.Clone = CloneBytes
	default:
		return nil, errors.Wrapf(ErrCapability, "%s shares storage on assignment and has no Clone method", d.Type)
	}

	switch {
	case hasMethod(t, false, "MarshalText", nil, []types.Type{byteSliceType, errorType}) &&
		hasMethod(t, true, "UnmarshalText", []types.Type{byteSliceType}, []types.Type{errorType}):
		d.Text = TextMethod
	case isInt:
		d.Text = TextInt
	case isString:
		d.Text = TextString
	}

	switch {
	case hasMethod(t, false, "Value", nil, []types.Type{anyType, errorType}) &&
		hasMethod(t, true, "Scan", []types.Type{anyType}, []types.Type{errorType}):
		d.SQL = SQLMethod
	case isInt || isString || isByteSlice:
		d.SQL = SQLBuiltin
	}
	return d, nil
}

var (
	boolType      = types.Typ[types.Bool]
	intType       = types.Typ[types.Int]
	uint64Type    = types.Typ[types.Uint64]
	errorType     = types.Universe.Lookup("error").Type()
	anyType       = types.Universe.Lookup("any").Type()
	byteSliceType = types.NewSlice(types.Typ[types.Byte])
)

func isByteSlice(t types.Type) bool {
	s, ok := t.(*types.Slice)
	return ok && isByte(s.Elem())
}

func isByteArray(t types.Type) bool {
	a, ok := t.(*types.Array)
	return ok && isByte(a.Elem())
}

func isByte(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.Uint8
}

// isCopyable returns true if assignment duplicates the whole value, i.e. the
// type holds no pointers, slices, maps, channels, functions or interfaces.
func isCopyable(t types.Type, seen map[types.Type]bool) bool {
	switch x := t.(type) {
	case *types.Basic:
		return x.Kind() != types.UnsafePointer
	case *types.Array:
		return isCopyable(x.Elem().Underlying(), seen)
	case *types.Struct:
		if seen == nil {
			seen = make(map[types.Type]bool)
		}
		if seen[x] {
			return true
		}
		seen[x] = true
		for i := 0; i < x.NumFields(); i++ {
			if !isCopyable(x.Field(i).Type().Underlying(), seen) {
				return false
			}
		}
		return true
	}
	return false
}

// isOpaque returns true for a named struct type from another package whose
// fields are all unexported, such as netip.Addr or unique.Handle. Callers
// cannot reach storage behind such values, so a comparable one is treated
// as an immutable value.
func isOpaque(t types.Type, local *types.Package) bool {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg() == local {
		return false
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}
	for i := 0; i < st.NumFields(); i++ {
		if st.Field(i).Exported() {
			return false
		}
	}
	return true
}

// hasMethod reports whether t (or *t when pointer is true) has a method with
// exactly the given parameter and result types.
func hasMethod(t types.Type, pointer bool, name string, params, results []types.Type) bool {
	recv := t
	if pointer {
		recv = types.NewPointer(t)
	}
	sel := types.NewMethodSet(recv).Lookup(nil, name)
	if sel == nil {
		return false
	}
	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Variadic() {
		return false
	}
	return matchTuple(sig.Params(), params) && matchTuple(sig.Results(), results)
}

func matchTuple(tuple *types.Tuple, want []types.Type) bool {
	if tuple.Len() != len(want) {
		return false
	}
	for i, w := range want {
		got := tuple.At(i).Type()
		if types.Identical(got, w) {
			continue
		}
		// driver.Value and any are both the empty interface.
		gi, ok1 := got.Underlying().(*types.Interface)
		wi, ok2 := w.Underlying().(*types.Interface)
		if ok1 && ok2 && gi.Empty() && wi.Empty() {
			continue
		}
		return false
	}
	return true
}
