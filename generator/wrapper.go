// Copyright (c) 2025 Visvasity LLC

package generator

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/visvasity/newtypegen/basetype"
	"github.com/visvasity/newtypegen/newtype"
	"github.com/visvasity/newtypegen/request"
	"github.com/visvasity/newtypegen/typecheck"
)

const newtypePkg = "github.com/visvasity/newtypegen/newtype"

// capabilities returns the bundle recorded on the generated type.
func capabilities(w *typecheck.Checked) newtype.Capabilities {
	c := newtype.Structural
	if w.Base.Copy {
		c |= newtype.Copy
	} else {
		c |= newtype.Clone
	}
	for _, f := range w.Formats {
		switch f {
		case request.JSON:
			c |= newtype.JSON
		case request.Text:
			c |= newtype.Text
		case request.YAML:
			c |= newtype.YAML
		case request.SQL:
			c |= newtype.SQL
		}
	}
	return c
}

var capabilityIdents = []struct {
	c     newtype.Capabilities
	ident string
}{
	{newtype.Copy, "newtype.Copy"},
	{newtype.Clone, "newtype.Clone"},
	{newtype.JSON, "newtype.JSON"},
	{newtype.Text, "newtype.Text"},
	{newtype.YAML, "newtype.YAML"},
	{newtype.SQL, "newtype.SQL"},
}

func capabilitiesExpr(c newtype.Capabilities) string {
	parts := []string{"newtype.Structural"}
	for _, x := range capabilityIdents {
		if c.Has(x.c) {
			parts = append(parts, x.ident)
		}
	}
	return strings.Join(parts, " | ")
}

func (g *Generator) generate(w *typecheck.Checked) error {
	base := w.Base
	for _, imp := range base.Imports {
		if err := g.addImport(imp.Name, imp.Path); err != nil {
			return err
		}
	}
	if err := g.addImport("newtype", newtypePkg); err != nil {
		return err
	}

	if w.Bounded() {
		if !base.Bounded() {
			return errors.Errorf("base type %s has no bounded representation", base.Type)
		}
		g.P("// ", w.CapacityType, " is the capacity of ", w.Name, " in bytes.")
		g.P("type ", w.CapacityType, " struct{}")
		g.P()
		g.P("func (", w.CapacityType, ") Capacity() int { return ", w.Capacity, " }")
		g.P()
	}

	if w.Doc != "" {
		for _, line := range strings.Split(strings.TrimSpace(w.Doc), "\n") {
			g.P(strings.TrimRight("// "+line, " "))
		}
	} else {
		g.P("// ", w.Name, " is a distinct type over ", base.Type, ".")
	}
	g.P("type ", w.Name, " struct {")
	g.P("v ", base.Type)
	g.P("}")
	g.P()

	if err := g.generateAccessors(w); err != nil {
		return err
	}
	if err := g.generateCapabilities(w); err != nil {
		return err
	}
	for _, f := range w.Formats {
		if err := base.Supports(string(f)); err != nil {
			return errors.Wrap(request.ErrBaseCapability, err.Error())
		}
		var err error
		switch f {
		case request.JSON:
			err = g.generateJSON(w)
		case request.Text:
			err = g.generateText(w)
		case request.YAML:
			err = g.generateYAML(w)
		case request.SQL:
			err = g.generateSQL(w)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateAccessors(w *typecheck.Checked) error {
	base := w.Base
	if base.Bounded() {
		if err := g.addImport("fmt", "fmt"); err != nil {
			return err
		}
		g.P("// ", w.Constructor, " returns a ", w.Name, " holding a copy of v. It fails if v is")
		g.P("// longer than ", w.Capacity, " bytes.")
		g.P("func ", w.Constructor, "(v ", base.Source, ") (", w.Name, ", error) {")
		g.P("b, err := ", base.New, "(v)")
		g.P("if err != nil {")
		g.P("return ", w.Name, "{}, fmt.Errorf(\"", w.Name, ": %w\", err)")
		g.P("}")
		g.P("return ", w.Name, "{v: b}, nil")
		g.P("}")
		g.P()
	} else {
		if base.Clone == basetype.CloneBytes {
			g.P("// ", w.Constructor, " returns a ", w.Name, " that takes ownership of v. The caller")
			g.P("// must not modify v after this call.")
		}
		g.P("func ", w.Constructor, "(v ", base.Type, ") ", w.Name, " {")
		g.P("return ", w.Name, "{v: v}")
		g.P("}")
		g.P()
	}

	if base.Clone == basetype.CloneBytes {
		g.P("// Get returns the wrapped value. The result aliases the storage of w and")
		g.P("// must not be modified; use Clone for a copy. Its capacity is clipped so")
		g.P("// appending to it never writes into w.")
		g.P("func (w ", w.Name, ") Get() ", base.Type, " {")
		g.P("return w.v[:len(w.v):len(w.v)]")
	} else {
		g.P("// Get returns the wrapped value.")
		g.P("func (w ", w.Name, ") Get() ", base.Type, " {")
		g.P("return w.v")
	}
	g.P("}")
	g.P()

	if base.Copy {
		g.P("// IntoInner returns the wrapped value.")
		g.P("func (w ", w.Name, ") IntoInner() ", base.Type, " {")
		g.P("return w.v")
		g.P("}")
		g.P()
		return nil
	}

	g.P("// IntoInner returns the wrapped value and leaves w empty.")
	g.P("func (w *", w.Name, ") IntoInner() ", base.Type, " {")
	g.P("v := w.v")
	g.P("*w = ", w.Name, "{}")
	g.P("return v")
	g.P("}")
	g.P()

	var clone string
	switch base.Clone {
	case basetype.CloneBytes:
		if err := g.addImport("slices", "slices"); err != nil {
			return err
		}
		clone = "slices.Clone(w.v)"
	case basetype.CloneString:
		if err := g.addImport("strings", "strings"); err != nil {
			return err
		}
		clone = "strings.Clone(w.v)"
	case basetype.CloneMethod:
		clone = "w.v.Clone()"
	default:
		return errors.Errorf("base type %s has no clone strategy", base.Type)
	}
	g.P("// Clone returns a copy of w that shares no storage with it.")
	g.P("func (w ", w.Name, ") Clone() ", w.Name, " {")
	g.P("return ", w.Name, "{v: ", clone, "}")
	g.P("}")
	g.P()
	return nil
}

func (g *Generator) generateCapabilities(w *typecheck.Checked) error {
	base := w.Base

	var equal string
	switch base.Equal {
	case basetype.EqualOperator:
		equal = "w.v == o.v"
	case basetype.EqualBytes:
		if err := g.addImport("bytes", "bytes"); err != nil {
			return err
		}
		equal = "bytes.Equal(w.v, o.v)"
	case basetype.EqualMethod:
		equal = "w.v.Equal(o.v)"
	case basetype.EqualCompare:
		equal = "w.v.Compare(o.v) == 0"
	}
	g.P("func (w ", w.Name, ") Equal(o ", w.Name, ") bool {")
	g.P("return ", equal)
	g.P("}")
	g.P()

	var compare string
	switch base.Order {
	case basetype.OrderCmp:
		if err := g.addImport("cmp", "cmp"); err != nil {
			return err
		}
		compare = "cmp.Compare(w.v, o.v)"
	case basetype.OrderBytes:
		if err := g.addImport("bytes", "bytes"); err != nil {
			return err
		}
		compare = "bytes.Compare(w.v, o.v)"
	case basetype.OrderByteArray:
		if err := g.addImport("bytes", "bytes"); err != nil {
			return err
		}
		compare = "bytes.Compare(w.v[:], o.v[:])"
	case basetype.OrderMethod:
		compare = "w.v.Compare(o.v)"
	}
	g.P("func (w ", w.Name, ") Compare(o ", w.Name, ") int {")
	g.P("return ", compare)
	g.P("}")
	g.P()

	g.P("func (w ", w.Name, ") Less(o ", w.Name, ") bool {")
	g.P("return w.Compare(o) < 0")
	g.P("}")
	g.P()

	var hash string
	switch base.Hash {
	case basetype.HashInt:
		hash = "newtype.HashInt(w.v)"
	case basetype.HashString:
		hash = "newtype.HashString(string(w.v))"
	case basetype.HashBytes:
		hash = "newtype.HashBytes(w.v)"
	case basetype.HashByteArray:
		hash = "newtype.HashBytes(w.v[:])"
	case basetype.HashMethod:
		hash = "w.v.Hash()"
	case basetype.HashBinary:
		hash = "newtype.HashBinary(w.v)"
	case basetype.HashText:
		hash = "newtype.HashText(w.v)"
	}
	g.P("func (w ", w.Name, ") Hash() uint64 {")
	g.P("return ", hash)
	g.P("}")
	g.P()

	if err := g.addImport("fmt", "fmt"); err != nil {
		return err
	}
	verb := "%v"
	if base.Family == "string" {
		verb = "%q"
	}
	g.P("func (w ", w.Name, ") String() string {")
	g.P("return fmt.Sprintf(\"", w.Name, "(", verb, ")\", w.v)")
	g.P("}")
	g.P()

	g.P("func (", w.Name, ") Capabilities() newtype.Capabilities {")
	g.P("return ", capabilitiesExpr(capabilities(w)))
	g.P("}")
	g.P()
	return nil
}
