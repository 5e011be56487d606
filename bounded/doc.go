// Copyright (c) 2025 Visvasity LLC

// Package bounded provides fixed-capacity byte and text containers. The
// capacity is carried in the type through a zero-size marker type that
// implements Capacity, so two containers with different bounds are different
// types:
//
//	type tagCapacity struct{}
//
//	func (tagCapacity) Capacity() int { return 8 }
//
//	s, err := bounded.NewString[tagCapacity]("longtext") // ok
//	_, err = bounded.NewString[tagCapacity]("toolongtext") // newtype.ErrCapacityExceeded
//
// Storage never grows past the capacity: construction, appends and decoding
// that would exceed it fail with a *newtype.CapacityError instead of
// truncating or reallocating.
package bounded

// Capacity is implemented by the marker types that parameterize Bytes and
// String.
type Capacity interface {
	Capacity() int
}

func capacityOf[C Capacity]() int {
	var c C
	return c.Capacity()
}
