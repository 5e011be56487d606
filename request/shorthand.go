// Copyright (c) 2025 Visvasity LLC

package request

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseShorthand parses a command line request of the form
//
//	Name=base[,vis=public|private|crate|scoped][,scope=path][,cap=N][,ser=json+yaml][,doc=text]
//
// An empty ser value disables serialization for the request.
func ParseShorthand(s string) (*Request, error) {
	parts := strings.Split(s, ",")
	name, base, ok := strings.Cut(parts[0], "=")
	if !ok || name == "" || base == "" {
		return nil, errors.Wrapf(ErrShorthand, "%q: want Name=base", s)
	}
	r := &Request{Name: strings.TrimSpace(name), Base: strings.TrimSpace(base)}
	for _, opt := range parts[1:] {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return nil, errors.Wrapf(ErrShorthand, "%q: option %q has no value", s, opt)
		}
		switch strings.TrimSpace(key) {
		case "vis", "visibility":
			r.Visibility = value
		case "scope":
			r.Scope = value
		case "cap", "capacity":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidCapacity, "%q: %v", s, err)
			}
			r.Capacity = &n
		case "ser", "serialize":
			fs := []Format{}
			for _, f := range strings.Split(value, "+") {
				if f != "" {
					fs = append(fs, Format(f))
				}
			}
			r.Serialize = &fs
		case "doc":
			r.Doc = value
		default:
			return nil, errors.Wrapf(ErrShorthand, "%q: unknown option %q", s, key)
		}
	}
	return r, nil
}
