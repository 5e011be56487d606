// Copyright (c) 2025 Visvasity LLC

// Package num provides the integer value types that Go does not have natively
// and that newtypegen can wrap: non-zero integers of every width and signed
// and unsigned 128-bit integers.
//
// The types implement comparison, hashing, formatting and the json, text,
// yaml and sql encodings. They do not implement arithmetic.
package num
