// Copyright (c) 2025 Visvasity LLC

package newtype

import "slices"

// Wrapper is the method set shared by every generated wrapper type W over a
// base type T.
type Wrapper[W any, T any] interface {
	Get() T
	Equal(W) bool
	Compare(W) int
	Less(W) bool
	Hash() uint64
	Capabilities() Capabilities
}

// Ordered is satisfied by any type with a total order, including all
// generated wrappers.
type Ordered[W any] interface {
	Compare(W) int
}

// Sort sorts ws in ascending order.
func Sort[W Ordered[W]](ws []W) {
	slices.SortFunc(ws, func(a, b W) int {
		return a.Compare(b)
	})
}

// Search finds target in the sorted slice ws and returns its position and
// whether it was found.
func Search[W Ordered[W]](ws []W, target W) (int, bool) {
	return slices.BinarySearchFunc(ws, target, func(a, b W) int {
		return a.Compare(b)
	})
}

// Max returns the largest element of a non-empty slice.
func Max[W Ordered[W]](ws []W) W {
	return slices.MaxFunc(ws, func(a, b W) int {
		return a.Compare(b)
	})
}
