// Copyright (c) 2025 Visvasity LLC

// Package newtype holds the runtime pieces shared by all wrapper types emitted
// by newtypegen: the capability bundle, capacity errors and hashing helpers.
//
// Generated code imports this package; user code normally only needs
// ErrCapacityExceeded and the Sort/Search helpers.
package newtype
