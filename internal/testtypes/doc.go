// Copyright (c) 2025 Visvasity LLC

// Package testtypes holds wrapper types generated from newtypes.yaml and
// widths.yaml. Its
// tests exercise generated code together with the runtime packages.
package testtypes

//go:generate go run github.com/visvasity/newtypegen -c newtypes.yaml
//go:generate go run github.com/visvasity/newtypegen -c widths.yaml
