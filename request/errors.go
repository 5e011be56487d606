// Copyright (c) 2025 Visvasity LLC

package request

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidName        = errors.New("invalid type name")
	ErrNameCollision      = errors.New("name collision")
	ErrUnknownBase        = errors.New("unknown base type")
	ErrVisibility         = errors.New("invalid visibility")
	ErrFormat             = errors.New("invalid serialization format")
	ErrMode               = errors.New("invalid capacity mode")
	ErrInvalidCapacity    = errors.New("capacity must be a positive integer")
	ErrCapacityRequired   = errors.New("capacity is required in bounded mode")
	ErrCapacityNotAllowed = errors.New("capacity is not allowed")
	ErrBaseCapability     = errors.New("base type lacks a required capability")
	ErrShorthand          = errors.New("malformed shorthand")
)

// Error is a generation-time error tied to one request of a table.
type Error struct {
	Index int
	Name  string
	Err   error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("type #%d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("type #%d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(index int, name string, err error, format string, args ...any) *Error {
	if format != "" {
		err = errors.Wrapf(err, format, args...)
	}
	return &Error{Index: index, Name: name, Err: err}
}
