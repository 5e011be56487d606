// Copyright (c) 2025 Visvasity LLC

package request

import (
	"slices"

	"github.com/pkg/errors"
)

// Format names a serialization adapter.
type Format string

const (
	JSON Format = "json"
	Text Format = "text"
	YAML Format = "yaml"
	SQL  Format = "sql"
)

var Formats = []Format{JSON, Text, YAML, SQL}

func (f Format) Valid() bool {
	return slices.Contains(Formats, f)
}

// normalizeFormats validates fs and returns them deduplicated in canonical
// order.
func normalizeFormats(fs []Format) ([]Format, error) {
	var out []Format
	for _, f := range fs {
		if !f.Valid() {
			return nil, errors.Wrapf(ErrFormat, "%q is not one of %v", f, Formats)
		}
	}
	for _, f := range Formats {
		if slices.Contains(fs, f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// Mode is the capacity mode of a request table.
type Mode string

const (
	// Mixed lets each sequence request choose bounded or unbounded storage
	// through the presence of a capacity.
	Mixed Mode = "mixed"

	// Bounded requires a capacity on every byte and text request.
	Bounded Mode = "bounded"

	// Unbounded forbids capacities.
	Unbounded Mode = "unbounded"
)

func (m Mode) Valid() bool {
	return m == "" || m == Mixed || m == Bounded || m == Unbounded
}
