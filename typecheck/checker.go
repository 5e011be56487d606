// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/visvasity/newtypegen/basetype"
	"github.com/visvasity/newtypegen/request"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// Checked is a declaration whose base type has been resolved against the
// output package.
type Checked struct {
	*request.Decl

	Base *basetype.Desc
}

type Checker struct {
	dir string

	pkg *packages.Package

	// declared maps top-level identifiers of the output package to the file
	// that declares them.
	declared map[string]string

	loaded map[string]*packages.Package

	log *zap.Logger
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedModule

// New loads the package in dir. A directory without Go files is accepted; it
// has no declarations and no import path.
func New(dir string, log *zap.Logger) (*Checker, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Checker{
		dir:      dir,
		declared: make(map[string]string),
		loaded:   make(map[string]*packages.Package),
		log:      log,
	}

	cfg := &packages.Config{Mode: loadMode, Dir: dir}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load package in %s", dir)
	}
	if len(pkgs) != 1 {
		return nil, errors.Errorf("directory %s must hold exactly one package, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.GoFiles) == 0 {
		log.Debug("output directory has no go files", zap.String("dir", dir))
		return c, nil
	}
	// Type errors are expected while a previously generated file is stale;
	// only the syntax and the package identity are needed.
	for _, e := range pkg.Errors {
		log.Debug("ignoring package error", zap.String("error", e.Error()))
	}
	c.pkg = pkg
	c.collectDeclared()
	return c, nil
}

func (c *Checker) PkgPath() string {
	if c.pkg == nil {
		return ""
	}
	return c.pkg.PkgPath
}

func (c *Checker) PkgName() string {
	if c.pkg == nil {
		return ""
	}
	return c.pkg.Name
}

func (c *Checker) ModulePath() string {
	if c.pkg == nil || c.pkg.Module == nil {
		return ""
	}
	return c.pkg.Module.Path
}

func (c *Checker) collectDeclared() {
	for _, file := range c.pkg.Syntax {
		filename := c.pkg.Fset.Position(file.Package).Filename
		for _, name := range TopLevelNames(file) {
			if _, ok := c.declared[name]; !ok {
				c.declared[name] = filename
			}
		}
	}
}

// TopLevelNames returns the package-level identifiers declared by file.
// Methods are not package-level identifiers.
func TopLevelNames(file *ast.File) []string {
	var names []string
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil && d.Name.Name != "init" {
				names = append(names, d.Name.Name)
			}
		case *ast.GenDecl:
			if d.Tok == token.IMPORT {
				continue
			}
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						if n.Name != "_" {
							names = append(names, n.Name)
						}
					}
				}
			}
		}
	}
	return names
}

// Check validates the declarations against the output package and resolves
// their base types. Identifiers declared by outFile are ignored because that
// file is about to be replaced.
func (c *Checker) Check(decls []*request.Decl, outFile string) ([]*Checked, error) {
	var out []*Checked
	var errs error
	for _, d := range decls {
		cd, err := c.check(d, outFile)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, cd)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (c *Checker) check(d *request.Decl, outFile string) (*Checked, error) {
	fail := func(err error) error {
		return &request.Error{Index: d.Index, Name: d.Name, Err: err}
	}

	for _, id := range d.Identifiers() {
		file, ok := c.declared[id]
		if !ok || sameFile(file, filepath.Join(c.dir, outFile)) {
			continue
		}
		return nil, fail(errors.Wrapf(request.ErrNameCollision, "%s is already declared in %s", id, filepath.Base(file)))
	}

	if err := c.checkVisibility(d); err != nil {
		return nil, fail(err)
	}

	base, err := c.resolveBase(d)
	if err != nil {
		return nil, fail(err)
	}
	for _, f := range d.Formats {
		if err := base.Supports(string(f)); err != nil {
			return nil, fail(errors.Wrap(request.ErrBaseCapability, err.Error()))
		}
	}
	c.log.Debug("checked type",
		zap.String("name", d.Name),
		zap.String("base", base.Type),
		zap.Bool("copy", base.Copy))
	return &Checked{Decl: d, Base: base}, nil
}

func sameFile(a, b string) bool {
	x, err1 := filepath.Abs(a)
	y, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return a == b
	}
	return x == y
}

// checkVisibility maps crate and scoped visibility onto Go's internal
// package rule: the output package must sit directly below <scope>/internal.
func (c *Checker) checkVisibility(d *request.Decl) error {
	var scope string
	switch d.Visibility {
	case request.Crate:
		scope = c.ModulePath()
		if scope == "" {
			return errors.Wrap(request.ErrVisibility, "crate visibility needs the output package to be inside a module")
		}
	case request.Scoped:
		scope = d.Scope
	default:
		return nil
	}
	pkgPath := c.PkgPath()
	if pkgPath == "" {
		return errors.Wrapf(request.ErrVisibility, "%s visibility needs an output package with an import path", d.Visibility)
	}
	if parent, ok := InternalParent(pkgPath); !ok || parent != scope {
		return errors.Wrapf(request.ErrVisibility, "package %s is not importable only from %s; place it under %s/internal", pkgPath, scope, scope)
	}
	return nil
}

// InternalParent returns the import path that may import pkgPath because of
// its last "internal" element.
func InternalParent(pkgPath string) (string, bool) {
	elems := strings.Split(pkgPath, "/")
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i] == "internal" {
			return strings.Join(elems[:i], "/"), true
		}
	}
	return "", false
}

func (c *Checker) resolveBase(d *request.Decl) (*basetype.Desc, error) {
	if desc, ok := basetype.Lookup(d.Base); ok {
		if !d.Bounded() {
			return desc, nil
		}
		return basetype.WithCapacity(desc, d.CapacityType)
	}

	t, err := c.lookupType(d.Base)
	if err != nil {
		return nil, err
	}
	var local *types.Package
	if c.pkg != nil {
		local = c.pkg.Types
	}
	desc, err := basetype.FromType(t, local)
	if err != nil {
		return nil, errors.Wrap(request.ErrBaseCapability, err.Error())
	}
	return desc, nil
}

func (c *Checker) lookupType(base string) (types.Type, error) {
	pkgPath, name, ok := basetype.SplitGoType(base)
	if !ok {
		return nil, errors.Wrapf(request.ErrUnknownBase, "%q", base)
	}

	var obj types.Object
	switch {
	case pkgPath == "":
		obj = types.Universe.Lookup(name)
	case c.pkg != nil && pkgPath == c.pkg.PkgPath:
		obj = c.pkg.Types.Scope().Lookup(name)
	default:
		pkg, err := c.load(pkgPath)
		if err != nil {
			return nil, err
		}
		obj = pkg.Types.Scope().Lookup(name)
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, errors.Wrapf(request.ErrUnknownBase, "%s is not a type", base)
	}
	if named, ok := tn.Type().(*types.Named); ok && named.TypeParams().Len() != 0 {
		return nil, errors.Wrapf(request.ErrUnknownBase, "%s is a generic type", base)
	}
	return tn.Type(), nil
}

func (c *Checker) load(pkgPath string) (*packages.Package, error) {
	if pkg, ok := c.loaded[pkgPath]; ok {
		return pkg, nil
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports,
		Dir:  c.dir,
	}
	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load package %s", pkgPath)
	}
	if len(pkgs) != 1 || pkgs[0].Types == nil || len(pkgs[0].Errors) != 0 {
		return nil, errors.Wrapf(request.ErrUnknownBase, "package %s could not be loaded", pkgPath)
	}
	c.loaded[pkgPath] = pkgs[0]
	return pkgs[0], nil
}
