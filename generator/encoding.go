// Copyright (c) 2025 Visvasity LLC

package generator

import (
	"github.com/visvasity/newtypegen/basetype"
	"github.com/visvasity/newtypegen/typecheck"
)

// Decoders always decode into a fresh base value and assign it only on
// success, so a failed decode leaves the wrapper unchanged.

func (g *Generator) generateJSON(w *typecheck.Checked) error {
	if err := g.addImport("json", "encoding/json"); err != nil {
		return err
	}
	g.P("func (w ", w.Name, ") MarshalJSON() ([]byte, error) {")
	g.P("return json.Marshal(w.v)")
	g.P("}")
	g.P()
	g.P("func (w *", w.Name, ") UnmarshalJSON(data []byte) error {")
	g.P("var v ", w.Base.Type)
	g.P("if err := json.Unmarshal(data, &v); err != nil {")
	g.P("return err")
	g.P("}")
	g.P("w.v = v")
	g.P("return nil")
	g.P("}")
	g.P()
	return nil
}

func (g *Generator) generateText(w *typecheck.Checked) error {
	base := w.Base
	switch base.Text {
	case basetype.TextInt:
		if err := g.addImport("num", basetype.NumPkg); err != nil {
			return err
		}
		g.P("func (w ", w.Name, ") MarshalText() ([]byte, error) {")
		g.P("return []byte(num.FormatInt(w.v)), nil")
		g.P("}")
		g.P()
		g.P("func (w *", w.Name, ") UnmarshalText(text []byte) error {")
		g.P("v, err := num.ParseInt[", base.Type, "](string(text))")
		g.P("if err != nil {")
		g.P("return err")
		g.P("}")
		g.P("w.v = v")
		g.P("return nil")
		g.P("}")
		g.P()

	case basetype.TextString:
		g.P("func (w ", w.Name, ") MarshalText() ([]byte, error) {")
		g.P("return []byte(w.v), nil")
		g.P("}")
		g.P()
		g.P("func (w *", w.Name, ") UnmarshalText(text []byte) error {")
		g.P("w.v = ", base.Type, "(text)")
		g.P("return nil")
		g.P("}")
		g.P()

	case basetype.TextMethod:
		g.P("func (w ", w.Name, ") MarshalText() ([]byte, error) {")
		g.P("return w.v.MarshalText()")
		g.P("}")
		g.P()
		g.P("func (w *", w.Name, ") UnmarshalText(text []byte) error {")
		g.P("var v ", base.Type)
		g.P("if err := v.UnmarshalText(text); err != nil {")
		g.P("return err")
		g.P("}")
		g.P("w.v = v")
		g.P("return nil")
		g.P("}")
		g.P()
	}
	return nil
}

func (g *Generator) generateYAML(w *typecheck.Checked) error {
	if err := g.addImport("yaml", "gopkg.in/yaml.v3"); err != nil {
		return err
	}
	g.P("func (w ", w.Name, ") MarshalYAML() (any, error) {")
	g.P("return w.v, nil")
	g.P("}")
	g.P()
	g.P("func (w *", w.Name, ") UnmarshalYAML(node *yaml.Node) error {")
	g.P("var v ", w.Base.Type)
	g.P("if err := node.Decode(&v); err != nil {")
	g.P("return err")
	g.P("}")
	g.P("w.v = v")
	g.P("return nil")
	g.P("}")
	g.P()
	return nil
}

func (g *Generator) generateSQL(w *typecheck.Checked) error {
	base := w.Base
	if err := g.addImport("driver", "database/sql/driver"); err != nil {
		return err
	}
	switch base.SQL {
	case basetype.SQLBuiltin:
		if err := g.addImport("sql", "database/sql"); err != nil {
			return err
		}
		g.P("func (w ", w.Name, ") Value() (driver.Value, error) {")
		g.P("return driver.DefaultParameterConverter.ConvertValue(w.v)")
		g.P("}")
		g.P()
		g.P("func (w *", w.Name, ") Scan(src any) error {")
		g.P("var v sql.Null[", base.Type, "]")
		g.P("if err := v.Scan(src); err != nil {")
		g.P("return err")
		g.P("}")
		// Byte slices read NULL as nil, like database/sql does for *[]byte.
		if base.Clone != basetype.CloneBytes {
			g.P("if !v.Valid {")
			g.P("return fmt.Errorf(\"cannot scan NULL into ", w.Name, "\")")
			g.P("}")
		}
		g.P("w.v = v.V")
		g.P("return nil")
		g.P("}")
		g.P()

	case basetype.SQLMethod:
		g.P("func (w ", w.Name, ") Value() (driver.Value, error) {")
		g.P("return w.v.Value()")
		g.P("}")
		g.P()
		g.P("func (w *", w.Name, ") Scan(src any) error {")
		g.P("var v ", base.Type)
		g.P("if err := v.Scan(src); err != nil {")
		g.P("return err")
		g.P("}")
		g.P("w.v = v")
		g.P("return nil")
		g.P("}")
		g.P()
	}
	return nil
}
