// Copyright (c) 2025 Visvasity LLC

package newtype

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is matched by every CapacityError.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityError reports that a bounded value would hold more than Capacity
// elements.
type CapacityError struct {
	Capacity int
	Length   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: length %d exceeds capacity %d", ErrCapacityExceeded, e.Length, e.Capacity)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// CheckCapacity returns a CapacityError if length is larger than capacity.
func CheckCapacity(capacity, length int) error {
	if length > capacity {
		return &CapacityError{Capacity: capacity, Length: length}
	}
	return nil
}
