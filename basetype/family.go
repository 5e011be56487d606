// Copyright (c) 2025 Visvasity LLC

package basetype

import (
	"fmt"
	"slices"
	"strings"
)

const (
	NumPkg     = "github.com/visvasity/newtypegen/num"
	BoundedPkg = "github.com/visvasity/newtypegen/bounded"
	UUIDPkg    = "github.com/google/uuid"
)

var (
	numImport     = Import{Name: "num", Path: NumPkg}
	boundedImport = Import{Name: "bounded", Path: BoundedPkg}
	uuidImport    = Import{Name: "uuid", Path: UUIDPkg}
)

var families = map[string]*Desc{}

// intWidths lists the fixed-width integer families and their Go types. The
// pointer-width families map to int and uint.
var intWidths = []struct{ family, gotype string }{
	{"u8", "uint8"},
	{"u16", "uint16"},
	{"u32", "uint32"},
	{"u64", "uint64"},
	{"usize", "uint"},
	{"i8", "int8"},
	{"i16", "int16"},
	{"i32", "int32"},
	{"i64", "int64"},
	{"isize", "int"},
}

func register(d *Desc) {
	if _, ok := families[d.Family]; ok {
		panic(fmt.Sprintf("base type family %q registered twice", d.Family))
	}
	families[d.Family] = d
}

func init() {
	for _, w := range intWidths {
		register(&Desc{
			Family: w.family,
			Type:   w.gotype,
			Copy:   true,
			Equal:  EqualOperator,
			Order:  OrderCmp,
			Hash:   HashInt,
			Text:   TextInt,
			SQL:    SQLBuiltin,
		})
		register(numeric("nonzero_"+w.family, "num.NonZero["+w.gotype+"]"))
	}
	register(numeric("u128", "num.Uint128"))
	register(numeric("i128", "num.Int128"))
	register(numeric("nonzero_u128", "num.NonZeroU128"))
	register(numeric("nonzero_i128", "num.NonZeroI128"))

	register(&Desc{
		Family:  "uuid",
		Type:    "uuid.UUID",
		Imports: []Import{uuidImport},
		Copy:    true,
		Equal:   EqualOperator,
		Order:   OrderByteArray,
		Hash:    HashByteArray,
		Text:    TextMethod,
		SQL:     SQLMethod,
	})

	register(&Desc{
		Family:   "bytes",
		Type:     "[]byte",
		Sequence: true,
		Equal:    EqualBytes,
		Order:    OrderBytes,
		Hash:     HashBytes,
		Clone:    CloneBytes,
		Text:     TextNone,
		SQL:      SQLBuiltin,
	})
	register(&Desc{
		Family:   "string",
		Type:     "string",
		Sequence: true,
		Equal:    EqualOperator,
		Order:    OrderCmp,
		Hash:     HashString,
		Clone:    CloneString,
		Text:     TextString,
		SQL:      SQLBuiltin,
	})
}

// numeric describes the copyable num package types, which carry their own
// comparison, hashing and encodings.
func numeric(family, gotype string) *Desc {
	return &Desc{
		Family:  family,
		Type:    gotype,
		Imports: []Import{numImport},
		Copy:    true,
		Equal:   EqualOperator,
		Order:   OrderMethod,
		Hash:    HashMethod,
		Text:    TextMethod,
		SQL:     SQLMethod,
	}
}

// Lookup returns the descriptor for a family name.
func Lookup(family string) (*Desc, bool) {
	d, ok := families[family]
	return d, ok
}

// Families returns the names of all fixed families in sorted order.
func Families() []string {
	var names []string
	for name := range families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsSequence returns true if family accepts a capacity.
func IsSequence(family string) bool {
	d, ok := families[family]
	return ok && d.Sequence
}

// WithCapacity returns the bounded descriptor of a sequence family. The
// marker names the generated type whose Capacity method returns the bound.
func WithCapacity(d *Desc, marker string) (*Desc, error) {
	if !d.Sequence {
		return nil, fmt.Errorf("base type %s does not accept a capacity", d.Family)
	}
	b := &Desc{
		Family:   d.Family,
		Imports:  []Import{boundedImport},
		Sequence: true,
		Equal:    EqualMethod,
		Order:    OrderMethod,
		Hash:     HashMethod,
		Clone:    CloneMethod,
		SQL:      SQLMethod,
	}
	switch d.Family {
	case "bytes":
		b.Type = "bounded.Bytes[" + marker + "]"
		b.Source = "[]byte"
		b.New = "bounded.NewBytes[" + marker + "]"
		b.Text = TextNone
	case "string":
		b.Type = "bounded.String[" + marker + "]"
		b.Source = "string"
		b.New = "bounded.NewString[" + marker + "]"
		b.Text = TextMethod
	}
	return b, nil
}

// SplitGoType splits a generic base such as "time.Duration" or
// "github.com/google/uuid.UUID" into its package path and type name. Names
// without a package, such as "int" or "string", return an empty path.
func SplitGoType(base string) (pkgPath, name string, ok bool) {
	slash := strings.LastIndex(base, "/")
	dot := strings.LastIndex(base, ".")
	if dot < 0 {
		return "", base, base != ""
	}
	if dot < slash || dot == len(base)-1 || dot == 0 {
		return "", "", false
	}
	return base[:dot], base[dot+1:], true
}
