// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visvasity/newtypegen/basetype"
	"github.com/visvasity/newtypegen/request"
)

func resolve(t *testing.T, reqs ...*request.Request) []*request.Decl {
	t.Helper()
	table := &request.Table{Types: reqs}
	decls, err := table.Resolve()
	require.NoError(t, err)
	return decls
}

func TestInternalParent(t *testing.T) {
	tests := []struct {
		path   string
		parent string
		ok     bool
	}{
		{"example.com/m/internal", "example.com/m", true},
		{"example.com/m/internal/ids", "example.com/m", true},
		{"example.com/m/a/internal/b/internal/c", "example.com/m/a/internal/b", true},
		{"example.com/m/ids", "", false},
		{"example.com/m/internals", "", false},
	}
	for _, test := range tests {
		parent, ok := InternalParent(test.path)
		assert.Equal(t, test.ok, ok, test.path)
		assert.Equal(t, test.parent, parent, test.path)
	}
}

func TestTopLevelNames(t *testing.T) {
	src := `package p

import "fmt"

type (
	A int
	b string
)

var x, _, y = 1, 2, 3

const C = "c"

func init() {}

func F() { fmt.Println() }

func (A) Method() {}
`
	file, err := parser.ParseFile(token.NewFileSet(), "p.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "b", "x", "y", "C", "F"}, TopLevelNames(file))
}

func TestCheckerCollision(t *testing.T) {
	c, err := New("testdata/existing", nil)
	require.NoError(t, err)
	assert.Equal(t, "existing", c.PkgName())

	decls := resolve(t,
		&request.Request{Name: "Existing", Base: "u64", Visibility: "public"},
		&request.Request{Name: "Other", Base: "u64", Visibility: "public"},
		&request.Request{Name: "Stale", Base: "i64", Visibility: "public"},
		&request.Request{Name: "Fresh", Base: "string", Visibility: "public"},
	)

	_, err = c.Check(decls, "newtypes.gen.go")
	require.Error(t, err)
	assert.True(t, errors.Is(err, request.ErrNameCollision))
	assert.Contains(t, err.Error(), "Existing is already declared")
	assert.Contains(t, err.Error(), "NewOther is already declared")
	assert.NotContains(t, err.Error(), "Stale")

	// Identifiers of the file being regenerated do not collide.
	checked, err := c.Check(decls[2:], "newtypes.gen.go")
	require.NoError(t, err)
	require.Len(t, checked, 2)
	assert.Equal(t, "int64", checked[0].Base.Type)
	assert.Equal(t, "string", checked[1].Base.Type)

	// Generating into another file makes them collide.
	_, err = c.Check(decls[2:3], "other.gen.go")
	assert.True(t, errors.Is(err, request.ErrNameCollision))
}

func TestCheckerVisibility(t *testing.T) {
	outside, err := New("testdata/existing", nil)
	require.NoError(t, err)
	inside, err := New("../internal/testtypes", nil)
	require.NoError(t, err)
	assert.Equal(t, "github.com/visvasity/newtypegen", inside.ModulePath())

	crate := resolve(t, &request.Request{Name: "Handle", Base: "u32", Visibility: "crate"})
	_, err = outside.Check(crate, "newtypes.gen.go")
	assert.True(t, errors.Is(err, request.ErrVisibility))
	_, err = inside.Check(crate, "newtypes.gen.go")
	assert.NoError(t, err)

	scoped := resolve(t, &request.Request{Name: "Handle", Base: "u32", Visibility: "scoped", Scope: "github.com/visvasity/newtypegen"})
	_, err = inside.Check(scoped, "newtypes.gen.go")
	assert.NoError(t, err)

	narrow := resolve(t, &request.Request{Name: "Handle", Base: "u32", Visibility: "scoped", Scope: "github.com/visvasity/newtypegen/cmd"})
	_, err = inside.Check(narrow, "newtypes.gen.go")
	assert.True(t, errors.Is(err, request.ErrVisibility))
}

func TestCheckerBounded(t *testing.T) {
	c, err := New("testdata/existing", nil)
	require.NoError(t, err)

	capacity := 16
	decls := resolve(t, &request.Request{Name: "Label", Base: "string", Capacity: &capacity})
	checked, err := c.Check(decls, "newtypes.gen.go")
	require.NoError(t, err)
	base := checked[0].Base
	assert.Equal(t, "bounded.String[labelCapacity]", base.Type)
	assert.Equal(t, "bounded.NewString[labelCapacity]", base.New)
	assert.True(t, base.Bounded())
}

func TestCheckerGoTypes(t *testing.T) {
	c, err := New("testdata/existing", nil)
	require.NoError(t, err)

	decls := resolve(t,
		&request.Request{Name: "Timeout", Base: "time.Duration"},
		&request.Request{Name: "Token", Base: "github.com/google/uuid.UUID"},
		&request.Request{Name: "Verbosity", Base: "github.com/visvasity/newtypegen/typecheck/testdata/existing.Level"},
		&request.Request{Name: "Count", Base: "int"},
	)
	checked, err := c.Check(decls, "newtypes.gen.go")
	require.NoError(t, err)
	require.Len(t, checked, 4)

	timeout := checked[0].Base
	assert.Equal(t, "time.Duration", timeout.Type)
	assert.Equal(t, []basetype.Import{{Name: "time", Path: "time"}}, timeout.Imports)
	assert.True(t, timeout.Copy)
	assert.Equal(t, basetype.OrderCmp, timeout.Order)
	assert.Equal(t, basetype.HashInt, timeout.Hash)

	token := checked[1].Base
	assert.Equal(t, "uuid.UUID", token.Type)
	assert.Equal(t, basetype.OrderByteArray, token.Order)
	assert.Equal(t, basetype.TextMethod, token.Text)
	assert.Equal(t, basetype.SQLMethod, token.SQL)

	level := checked[2].Base
	assert.Equal(t, "Level", level.Type)
	assert.Empty(t, level.Imports)

	assert.Equal(t, "int", checked[3].Base.Type)
}

func TestCheckerLibraryValueType(t *testing.T) {
	c, err := New("testdata/existing", nil)
	require.NoError(t, err)

	formats := []request.Format{request.JSON, request.Text, request.YAML}
	decls := resolve(t, &request.Request{Name: "Host", Base: "net/netip.Addr", Visibility: "public", Serialize: &formats})
	checked, err := c.Check(decls, "newtypes.gen.go")
	require.NoError(t, err)

	addr := checked[0].Base
	assert.Equal(t, "netip.Addr", addr.Type)
	assert.Equal(t, []basetype.Import{{Name: "netip", Path: "net/netip"}}, addr.Imports)
	assert.True(t, addr.Copy)
	assert.Equal(t, basetype.EqualCompare, addr.Equal)
	assert.Equal(t, basetype.OrderMethod, addr.Order)
	assert.Equal(t, basetype.HashBinary, addr.Hash)
	assert.Equal(t, basetype.TextMethod, addr.Text)
	assert.Equal(t, basetype.SQLNone, addr.SQL)

	sqlOnly := []request.Format{request.SQL}
	decls = resolve(t, &request.Request{Name: "Host", Base: "net/netip.Addr", Serialize: &sqlOnly})
	_, err = c.Check(decls, "newtypes.gen.go")
	assert.True(t, errors.Is(err, request.ErrBaseCapability), "%v", err)
}

func TestCheckerRejectsBase(t *testing.T) {
	c, err := New("testdata/existing", nil)
	require.NoError(t, err)

	tests := []struct {
		base string
		want error
	}{
		{"float64", request.ErrBaseCapability},
		{"bool", request.ErrBaseCapability},
		{"time.Nope", request.ErrUnknownBase},
		{"github.com/visvasity/newtypegen/typecheck/testdata/existing.Pair", request.ErrUnknownBase},
		{"github.com/visvasity/newtypegen/typecheck/testdata/existing.NewOther", request.ErrUnknownBase},
	}
	for _, test := range tests {
		decls := resolve(t, &request.Request{Name: "W", Base: test.base, Visibility: "public"})
		_, err := c.Check(decls, "newtypes.gen.go")
		assert.True(t, errors.Is(err, test.want), "%s: %v", test.base, err)
	}
}

func TestCheckerFormats(t *testing.T) {
	c, err := New("testdata/existing", nil)
	require.NoError(t, err)

	formats := []request.Format{request.Text}
	decls := resolve(t, &request.Request{Name: "Blob", Base: "bytes", Serialize: &formats})
	_, err = c.Check(decls, "newtypes.gen.go")
	assert.True(t, errors.Is(err, request.ErrBaseCapability))
}

func TestCheckerEmptyDir(t *testing.T) {
	c, err := New(t.TempDir(), nil)
	if err != nil {
		// Outside a module the go command refuses to list the directory.
		t.Skip(err)
	}
	assert.Empty(t, c.PkgPath())

	decls := resolve(t, &request.Request{Name: "ID", Base: "u64", Visibility: "public"})
	checked, err := c.Check(decls, "newtypes.gen.go")
	require.NoError(t, err)
	assert.Equal(t, "uint64", checked[0].Base.Type)
}
