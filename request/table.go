// Copyright (c) 2025 Visvasity LLC

package request

import (
	"bytes"
	"go/token"
	"go/types"
	"os"

	"github.com/pkg/errors"
	"github.com/visvasity/newtypegen/basetype"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the file written when a table does not name one.
const DefaultOutput = "newtypes.gen.go"

// Request asks for one wrapper type.
type Request struct {
	Name       string    `yaml:"name"`
	Base       string    `yaml:"base"`
	Visibility string    `yaml:"visibility,omitempty"`
	Scope      string    `yaml:"scope,omitempty"`
	Capacity   *int      `yaml:"capacity,omitempty"`
	Serialize  *[]Format `yaml:"serialize,omitempty"`
	Doc        string    `yaml:"doc,omitempty"`
}

// Table is a set of requests generated into one file.
type Table struct {
	Package   string     `yaml:"package,omitempty"`
	Output    string     `yaml:"output,omitempty"`
	Mode      Mode       `yaml:"mode,omitempty"`
	Serialize []Format   `yaml:"serialize,omitempty"`
	Types     []*Request `yaml:"types"`
}

// Decl is a validated request with all generated identifiers decided.
type Decl struct {
	Index int

	// Name is the type identifier, with its case adjusted to Visibility.
	Name       string
	Base       string
	Visibility Visibility
	Scope      string

	// Capacity is zero for unbounded wrappers.
	Capacity int
	Formats  []Format
	Doc      string

	// Constructor names the function that wraps a base value.
	Constructor string

	// CapacityType names the marker type of bounded wrappers.
	CapacityType string
}

func (d *Decl) Bounded() bool {
	return d.Capacity > 0
}

// Identifiers returns the package-level identifiers the declaration adds.
func (d *Decl) Identifiers() []string {
	ids := []string{d.Name, d.Constructor}
	if d.Bounded() {
		ids = append(ids, d.CapacityType)
	}
	return ids
}

func (d *Decl) HasFormat(f Format) bool {
	for _, x := range d.Formats {
		if x == f {
			return true
		}
	}
	return false
}

// LoadTable reads a YAML request table. Unknown fields are rejected.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request table")
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return t, nil
}

func ParseTable(data []byte) (*Table, error) {
	var t Table
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&t); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}
	return &t, nil
}

// Resolve validates every request of the table and returns the resulting
// declarations in table order. All problems are reported together; each one
// is a *Error.
func (t *Table) Resolve() ([]*Decl, error) {
	if !t.Mode.Valid() {
		return nil, errors.Wrapf(ErrMode, "%q is not one of mixed, bounded or unbounded", t.Mode)
	}
	defaults, err := normalizeFormats(t.Serialize)
	if err != nil {
		return nil, err
	}

	var decls []*Decl
	var errs error
	owner := make(map[string]*Decl)
	for i, r := range t.Types {
		d, err := t.resolve(i, r, defaults)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		var clash error
		for _, id := range d.Identifiers() {
			if prev, ok := owner[id]; ok {
				clash = newError(i, r.Name, ErrNameCollision,
					"identifier %s is also declared by type #%d (%s)", id, prev.Index, prev.Name)
				break
			}
		}
		if clash != nil {
			errs = multierr.Append(errs, clash)
			continue
		}
		for _, id := range d.Identifiers() {
			owner[id] = d
		}
		decls = append(decls, d)
	}
	if errs != nil {
		return nil, errs
	}
	return decls, nil
}

func (t *Table) resolve(index int, r *Request, defaults []Format) (*Decl, error) {
	if r == nil {
		return nil, newError(index, "", ErrInvalidName, "empty request")
	}
	if !token.IsIdentifier(r.Name) || r.Name == "_" {
		return nil, newError(index, r.Name, ErrInvalidName, "%q is not a Go identifier", r.Name)
	}

	vis, err := ParseVisibility(r.Visibility)
	if err != nil {
		return nil, newError(index, r.Name, err, "")
	}
	if vis == Scoped && r.Scope == "" {
		return nil, newError(index, r.Name, ErrVisibility, "scoped visibility needs a scope path")
	}
	if vis != Scoped && r.Scope != "" {
		return nil, newError(index, r.Name, ErrVisibility, "scope %q is only valid with scoped visibility", r.Scope)
	}

	name := vis.Identifier(r.Name)
	if types.Universe.Lookup(name) != nil {
		return nil, newError(index, r.Name, ErrInvalidName, "%s shadows a predeclared identifier", name)
	}

	if err := checkBase(r.Base); err != nil {
		return nil, newError(index, r.Name, err, "")
	}

	d := &Decl{
		Index:      index,
		Name:       name,
		Base:       r.Base,
		Visibility: vis,
		Scope:      r.Scope,
		Doc:        r.Doc,
	}
	if vis.Exported() {
		d.Constructor = "New" + name
	} else {
		d.Constructor = "new" + Export(name)
	}

	sequence := basetype.IsSequence(r.Base)
	switch {
	case r.Capacity != nil && !sequence:
		return nil, newError(index, r.Name, ErrCapacityNotAllowed, "base type %s is not a byte or text sequence", r.Base)
	case r.Capacity != nil && t.Mode == Unbounded:
		return nil, newError(index, r.Name, ErrCapacityNotAllowed, "table mode is unbounded")
	case r.Capacity != nil && *r.Capacity <= 0:
		return nil, newError(index, r.Name, ErrInvalidCapacity, "got %d", *r.Capacity)
	case r.Capacity == nil && sequence && t.Mode == Bounded:
		return nil, newError(index, r.Name, ErrCapacityRequired, "base type %s", r.Base)
	}
	if r.Capacity != nil {
		d.Capacity = *r.Capacity
		d.CapacityType = name + "Capacity"
	}

	d.Formats = defaults
	if r.Serialize != nil {
		fs, err := normalizeFormats(*r.Serialize)
		if err != nil {
			return nil, newError(index, r.Name, err, "")
		}
		d.Formats = fs
	}
	return d, nil
}

// checkBase accepts family names and syntactically valid Go type paths. Go
// types are resolved later, against the loaded packages.
func checkBase(base string) error {
	if _, ok := basetype.Lookup(base); ok {
		return nil
	}
	pkgPath, name, ok := basetype.SplitGoType(base)
	if !ok || !token.IsIdentifier(name) {
		return errors.Wrapf(ErrUnknownBase, "%q", base)
	}
	if pkgPath == "" {
		if _, ok := types.Universe.Lookup(name).(*types.TypeName); !ok {
			return errors.Wrapf(ErrUnknownBase, "%q is neither a family (%v) nor a Go type", base, basetype.Families())
		}
	}
	return nil
}
