// Copyright (c) 2025 Visvasity LLC

package request

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Visibility decides the case of the generated identifiers and, for Crate and
// Scoped, where the output package may live.
type Visibility int

const (
	// Private declarations are unexported.
	Private Visibility = iota

	// Public declarations are exported.
	Public

	// Crate declarations are exported from a package under the module's
	// internal/ tree, so only the module can import them.
	Crate

	// Scoped declarations are exported from a package under <scope>/internal/,
	// so only packages rooted at scope can import them.
	Scoped
)

var visibilityNames = map[string]Visibility{
	"":        Private,
	"private": Private,
	"public":  Public,
	"crate":   Crate,
	"scoped":  Scoped,
}

func ParseVisibility(s string) (Visibility, error) {
	v, ok := visibilityNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Private, errors.Wrapf(ErrVisibility, "%q is not one of private, public, crate or scoped", s)
	}
	return v, nil
}

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Crate:
		return "crate"
	case Scoped:
		return "scoped"
	}
	return "private"
}

// Exported returns true if identifiers with this visibility are exported.
func (v Visibility) Exported() bool {
	return v != Private
}

// Export returns name with its first letter upper-cased.
func Export(name string) string {
	if name == "" {
		return name
	}
	rs := []rune(name)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// Unexport lower-cases the leading upper-case run of name, keeping the last
// letter of the run when it starts a new word: "UserID" becomes "userID",
// "ID" becomes "id" and "URLPath" becomes "urlPath".
func Unexport(name string) string {
	rs := []rune(name)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	if n > 1 && n < len(rs) && unicode.IsLower(rs[n]) {
		n--
	}
	if n == 0 && len(rs) > 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}

// Identifier adjusts name to the case required by v.
func (v Visibility) Identifier(name string) string {
	if v.Exported() {
		return Export(name)
	}
	return Unexport(name)
}
