// Copyright (c) 2025 Visvasity LLC

package newtype

import "strings"

// Capabilities is the set of capabilities attached to a generated wrapper
// type. Every generated type reports its set through a Capabilities method.
type Capabilities uint16

const (
	Equal Capabilities = 1 << iota
	Order
	Hash
	Debug
	Clone
	Copy
	JSON
	Text
	YAML
	SQL
)

// Structural is the bundle every wrapper receives regardless of its base type.
const Structural = Equal | Order | Hash | Debug

var capabilityNames = []struct {
	c    Capabilities
	name string
}{
	{Equal, "equal"},
	{Order, "order"},
	{Hash, "hash"},
	{Debug, "debug"},
	{Clone, "clone"},
	{Copy, "copy"},
	{JSON, "json"},
	{Text, "text"},
	{YAML, "yaml"},
	{SQL, "sql"},
}

// Has returns true if all capabilities in x are present in c.
func (c Capabilities) Has(x Capabilities) bool {
	return c&x == x
}

func (c Capabilities) String() string {
	var names []string
	for _, v := range capabilityNames {
		if c.Has(v.c) {
			names = append(names, v.name)
		}
	}
	return strings.Join(names, "|")
}
