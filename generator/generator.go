// Copyright (c) 2025 Visvasity LLC

// Package generator emits the Go source of newtype wrapper declarations.
//
// Every wrapper is a struct with a single unexported field holding the base
// value. The generator attaches the accessors (Get, IntoInner and, for bases
// that share storage on assignment, Clone), the structural capabilities
// (Equal, Compare, Less, Hash, String, Capabilities) and the serialization
// adapters enabled for the declaration.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/visvasity/newtypegen/request"
	"github.com/visvasity/newtypegen/typecheck"
	"go.uber.org/zap"
)

// Header is the first line of every generated file.
const Header = "// Code generated by github.com/visvasity/newtypegen. DO NOT EDIT."

// reserved holds the local identifiers used by generated method bodies. A
// wrapper named after one of them would be shadowed inside its own methods.
var reserved = map[string]bool{
	"w": true, "o": true, "v": true, "b": true, "err": true,
	"data": true, "text": true, "node": true, "src": true,
}

type Option func(*Generator)

func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

type Generator struct {
	pkgName string

	body bytes.Buffer

	// imports maps a package path to the name generated code refers to it by.
	imports map[string]string

	// declared holds every identifier declared by the generated file.
	declared map[string]bool

	log *zap.Logger
}

func New(pkgName string, opts ...Option) *Generator {
	g := &Generator{
		pkgName:  pkgName,
		imports:  make(map[string]string),
		declared: make(map[string]bool),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate is a shorthand for New, Add and Source.
func Generate(pkgName string, ws []*typecheck.Checked, opts ...Option) ([]byte, error) {
	g := New(pkgName, opts...)
	if err := g.Add(ws...); err != nil {
		return nil, err
	}
	return g.Source()
}

// P prints its arguments followed by a newline into the file body.
func (g *Generator) P(v ...any) {
	for _, x := range v {
		fmt.Fprint(&g.body, x)
	}
	fmt.Fprintln(&g.body)
}

func (g *Generator) addImport(importName, packagePath string) error {
	if x, ok := g.imports[packagePath]; ok {
		if x != importName {
			return errors.Errorf("multiple different import names for package %q", packagePath)
		}
		return nil
	}
	for path, name := range g.imports {
		if name == importName {
			return errors.Errorf("packages %q and %q are both imported as %s", path, packagePath, importName)
		}
	}
	g.imports[packagePath] = importName
	return nil
}

// ImportNames returns the package names the generated file imports, sorted.
func (g *Generator) ImportNames() []string {
	var names []string
	for _, name := range g.imports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Add generates the declarations of ws in order.
func (g *Generator) Add(ws ...*typecheck.Checked) error {
	for _, w := range ws {
		if reserved[w.Name] {
			return &request.Error{Index: w.Index, Name: w.Name,
				Err: errors.Wrapf(request.ErrInvalidName, "%s is reserved by generated method bodies", w.Name)}
		}
		for _, id := range w.Identifiers() {
			g.declared[id] = true
		}
	}
	for _, w := range ws {
		if err := g.generate(w); err != nil {
			return &request.Error{Index: w.Index, Name: w.Name, Err: err}
		}
		g.log.Debug("generated type",
			zap.String("name", w.Name),
			zap.String("base", w.Base.Type),
			zap.String("capabilities", capabilities(w).String()))
	}
	for path, name := range g.imports {
		if g.declared[name] {
			return errors.Wrapf(request.ErrNameCollision, "generated identifier %s is also the name of imported package %q", name, path)
		}
	}
	return nil
}

func (g *Generator) sourceWithImports() *bytes.Buffer {
	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, Header)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	var paths []string
	for path := range g.imports {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	if len(paths) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, path := range paths {
			name := g.imports[path]
			if name == path[strings.LastIndex(path, "/")+1:] {
				fmt.Fprintf(buf, "\t%q\n", path)
			} else {
				fmt.Fprintf(buf, "\t%s %q\n", name, path)
			}
		}
		fmt.Fprintln(buf, ")")
		fmt.Fprintln(buf)
	}

	buf.Write(g.body.Bytes())
	return buf
}

// Source returns the gofmt-ed file. Unformattable output is returned as is,
// together with the formatting error, so it can be inspected.
func (g *Generator) Source() ([]byte, error) {
	buf := g.sourceWithImports()
	src, err := format.Source(buf.Bytes())
	if err != nil {
		g.log.Warn("internal error: invalid Go generated", zap.Error(err))
		return buf.Bytes(), errors.Wrap(err, "generated source does not parse")
	}
	return src, nil
}
