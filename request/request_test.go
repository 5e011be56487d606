// Copyright (c) 2025 Visvasity LLC

package request

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func intp(n int) *int {
	return &n
}

func formats(fs ...Format) *[]Format {
	return &fs
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		exported string
		private  string
	}{
		{"UserID", "UserID", "userID"},
		{"ID", "ID", "id"},
		{"URLPath", "URLPath", "urlPath"},
		{"URL", "URL", "url"},
		{"tag", "Tag", "tag"},
		{"A1", "A1", "a1"},
		{"Ωmega", "Ωmega", "ωmega"},
	}
	for _, test := range tests {
		assert.Equal(t, test.exported, Public.Identifier(test.name), test.name)
		assert.Equal(t, test.exported, Crate.Identifier(test.name), test.name)
		assert.Equal(t, test.private, Private.Identifier(test.name), test.name)
	}
}

func TestParseVisibility(t *testing.T) {
	for s, want := range map[string]Visibility{"": Private, "PUBLIC": Public, " crate ": Crate, "scoped": Scoped} {
		v, err := ParseVisibility(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, v, s)
	}
	_, err := ParseVisibility("friends")
	assert.True(t, errors.Is(err, ErrVisibility))
	assert.Equal(t, "scoped", Scoped.String())
}

func TestResolve(t *testing.T) {
	table := &Table{
		Serialize: []Format{YAML, JSON, JSON},
		Types: []*Request{
			{Name: "UserID", Base: "u64", Visibility: "public"},
			{Name: "Tag", Base: "string", Capacity: intp(8), Serialize: formats(SQL, Text)},
			{Name: "Handle", Base: "time.Duration", Visibility: "scoped", Scope: "example.com/app", Serialize: formats()},
		},
	}
	decls, err := table.Resolve()
	require.NoError(t, err)
	require.Len(t, decls, 3)

	user := decls[0]
	assert.Equal(t, "UserID", user.Name)
	assert.Equal(t, "NewUserID", user.Constructor)
	assert.False(t, user.Bounded())
	assert.Equal(t, []Format{JSON, YAML}, user.Formats)
	assert.Equal(t, []string{"UserID", "NewUserID"}, user.Identifiers())

	tag := decls[1]
	assert.Equal(t, 1, tag.Index)
	assert.Equal(t, "tag", tag.Name)
	assert.Equal(t, "newTag", tag.Constructor)
	assert.Equal(t, "tagCapacity", tag.CapacityType)
	assert.Equal(t, 8, tag.Capacity)
	assert.True(t, tag.Bounded())
	assert.Equal(t, []Format{Text, SQL}, tag.Formats)
	assert.True(t, tag.HasFormat(SQL))
	assert.False(t, tag.HasFormat(JSON))
	assert.Equal(t, []string{"tag", "newTag", "tagCapacity"}, tag.Identifiers())

	handle := decls[2]
	assert.Equal(t, Scoped, handle.Visibility)
	assert.Equal(t, "example.com/app", handle.Scope)
	assert.Empty(t, handle.Formats)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		req   *Request
		want  error
		inMsg string
	}{
		{"bad identifier", "", &Request{Name: "1abc", Base: "u8"}, ErrInvalidName, ""},
		{"blank identifier", "", &Request{Name: "_", Base: "u8"}, ErrInvalidName, ""},
		{"keyword", "", &Request{Name: "func", Base: "u8"}, ErrInvalidName, ""},
		{"predeclared", "", &Request{Name: "int", Base: "u8"}, ErrInvalidName, "shadows"},
		{"unknown family", "", &Request{Name: "X", Base: "u7"}, ErrUnknownBase, ""},
		{"bad go type", "", &Request{Name: "X", Base: "time."}, ErrUnknownBase, ""},
		{"bad visibility", "", &Request{Name: "X", Base: "u8", Visibility: "friends"}, ErrVisibility, ""},
		{"scope missing", "", &Request{Name: "X", Base: "u8", Visibility: "scoped"}, ErrVisibility, ""},
		{"scope unused", "", &Request{Name: "X", Base: "u8", Visibility: "public", Scope: "example.com"}, ErrVisibility, ""},
		{"capacity on integer", "", &Request{Name: "X", Base: "u64", Capacity: intp(4)}, ErrCapacityNotAllowed, "not a byte or text sequence"},
		{"zero capacity", "", &Request{Name: "X", Base: "bytes", Capacity: intp(0)}, ErrInvalidCapacity, ""},
		{"negative capacity", Bounded, &Request{Name: "X", Base: "bytes", Capacity: intp(-1)}, ErrInvalidCapacity, ""},
		{"unbounded mode", Unbounded, &Request{Name: "X", Base: "string", Capacity: intp(4)}, ErrCapacityNotAllowed, "unbounded"},
		{"bounded mode", Bounded, &Request{Name: "x", Base: "string"}, ErrCapacityRequired, "type #0 (x): base type string: capacity is required in bounded mode"},
		{"unknown format", "", &Request{Name: "X", Base: "u8", Serialize: formats("xml")}, ErrFormat, ""},
		{"bad mode", "sometimes", &Request{Name: "X", Base: "u8"}, ErrMode, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table := &Table{Mode: test.mode, Types: []*Request{test.req}}
			_, err := table.Resolve()
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.want), "%v", err)
			assert.Contains(t, err.Error(), test.inMsg)
		})
	}
}

func TestResolveIntegersInBoundedMode(t *testing.T) {
	table := &Table{Mode: Bounded, Types: []*Request{{Name: "Count", Base: "u32"}}}
	_, err := table.Resolve()
	assert.NoError(t, err)
}

func TestResolveCollisions(t *testing.T) {
	table := &Table{Types: []*Request{
		{Name: "UserID", Base: "u64", Visibility: "public"},
		{Name: "UserID", Base: "u32", Visibility: "public"},
		{Name: "Tag", Base: "string", Visibility: "public", Capacity: intp(4)},
		{Name: "TagCapacity", Base: "u8", Visibility: "public"},
		{Name: "Bad", Base: "nope"},
	}}
	_, err := table.Resolve()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	var rerr *Error
	require.True(t, errors.As(errs[0], &rerr))
	assert.Equal(t, 1, rerr.Index)
	assert.True(t, errors.Is(errs[0], ErrNameCollision))
	assert.Contains(t, errs[0].Error(), "also declared by type #0 (UserID)")

	require.True(t, errors.As(errs[1], &rerr))
	assert.Equal(t, 3, rerr.Index)
	assert.True(t, errors.Is(errs[1], ErrNameCollision))

	require.True(t, errors.As(errs[2], &rerr))
	assert.Equal(t, 4, rerr.Index)
	assert.True(t, errors.Is(errs[2], ErrUnknownBase))
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(`
package: ids
output: ids.gen.go
mode: bounded
serialize: [json, sql]
types:
  - name: UserID
    base: u64
    visibility: public
    doc: UserID identifies a user.
  - name: Tag
    base: string
    capacity: 8
    serialize: []
`))
	require.NoError(t, err)
	assert.Equal(t, "ids", table.Package)
	assert.Equal(t, "ids.gen.go", table.Output)
	assert.Equal(t, Bounded, table.Mode)
	assert.Equal(t, []Format{JSON, SQL}, table.Serialize)
	require.Len(t, table.Types, 2)
	assert.Equal(t, "UserID identifies a user.", table.Types[0].Doc)
	assert.Nil(t, table.Types[0].Serialize)
	require.NotNil(t, table.Types[1].Serialize)
	assert.Empty(t, *table.Types[1].Serialize)
	assert.Equal(t, 8, *table.Types[1].Capacity)

	_, err = ParseTable([]byte("types:\n  - name: X\n    base: u8\n    colour: red\n"))
	assert.ErrorContains(t, err, "failed to parse YAML")

	_, err = LoadTable("testdata/missing.yaml")
	assert.ErrorContains(t, err, "failed to read request table")
}

func TestParseShorthand(t *testing.T) {
	r, err := ParseShorthand("UserID=u64")
	require.NoError(t, err)
	assert.Equal(t, &Request{Name: "UserID", Base: "u64"}, r)

	r, err = ParseShorthand("Tag=string,vis=public,cap=8,ser=json+yaml,doc=A tag.")
	require.NoError(t, err)
	assert.Equal(t, "public", r.Visibility)
	assert.Equal(t, 8, *r.Capacity)
	assert.Equal(t, []Format{JSON, YAML}, *r.Serialize)
	assert.Equal(t, "A tag.", r.Doc)

	r, err = ParseShorthand("Handle=u32,visibility=scoped,scope=example.com/app,ser=")
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", r.Scope)
	assert.Empty(t, *r.Serialize)

	for _, s := range []string{"UserID", "=u64", "UserID=", "UserID=u64,vis", "UserID=u64,colour=red"} {
		_, err := ParseShorthand(s)
		assert.True(t, errors.Is(err, ErrShorthand), s)
	}
	_, err = ParseShorthand("Tag=string,cap=eight")
	assert.True(t, errors.Is(err, ErrInvalidCapacity))
}
