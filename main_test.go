// Copyright (c) 2025 Visvasity LLC

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visvasity/newtypegen/request"
)

const testDir = "generator/testdata/gen"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDryRunShorthands(t *testing.T) {
	out, err := execute(t, "-d", testDir, "--dry-run", "--serialize", "json",
		"UserID=u64,vis=public", "Tag=string,cap=8,ser=")
	require.NoError(t, err)

	assert.Contains(t, out, "package gen\n")
	assert.Contains(t, out, "func NewUserID(v uint64) UserID {")
	assert.Contains(t, out, "func (w UserID) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, out, "func newTag(v string) (tag, error) {")
	assert.NotContains(t, out, "func (w tag) MarshalJSON")
}

func TestDryRunConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "newtypes.yaml")
	table := `package: ids
serialize: [yaml]
mode: bounded
types:
  - name: Name
    base: string
    visibility: public
    capacity: 32
  - name: Serial
    base: nonzero_u32
    visibility: public
`
	require.NoError(t, os.WriteFile(config, []byte(table), 0644))

	out, err := execute(t, "-c", config, "-d", testDir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "package ids\n")
	assert.Contains(t, out, "type NameCapacity struct{}")
	assert.Contains(t, out, "v num.NonZero[uint32]")
	assert.Contains(t, out, "func (w *Serial) UnmarshalYAML(node *yaml.Node) error {")

	// Overriding the mode to unbounded rejects the capacity.
	_, err = execute(t, "-c", config, "-d", testDir, "--dry-run", "--mode", "unbounded")
	assert.True(t, errors.Is(err, request.ErrCapacityNotAllowed), "%v", err)
}

func TestErrors(t *testing.T) {
	_, err := execute(t)
	assert.ErrorContains(t, err, "no requests")

	_, err = execute(t, "-d", testDir, "--dry-run", "--mode", "sometimes", "ID=u64")
	assert.True(t, errors.Is(err, request.ErrMode), "%v", err)

	_, err = execute(t, "-d", testDir, "--dry-run", "Level=u8,vis=public")
	assert.True(t, errors.Is(err, request.ErrNameCollision), "%v", err)

	_, err = execute(t, "-d", testDir, "--dry-run", "ID")
	assert.True(t, errors.Is(err, request.ErrShorthand), "%v", err)

	_, err = execute(t, "-d", testDir, "--dry-run", "Blob=bytes,ser=text")
	assert.True(t, errors.Is(err, request.ErrBaseCapability), "%v", err)
}
