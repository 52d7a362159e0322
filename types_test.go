// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package stringargs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/LukasJankowski/stringargs"
)

func TestTypeFor(t *testing.T) {
	tests := []struct {
		tag  string
		kind stringargs.Kind
	}{
		{"s", stringargs.String},
		{"i", stringargs.Int},
		{"f", stringargs.Float},
		{"b", stringargs.Bool},
		{"n", stringargs.Null},
		{"a", stringargs.Array},
		{"o", stringargs.Object},
	}
	for _, tc := range tests {
		typ, err := stringargs.TypeFor(tc.tag)
		if err != nil {
			t.Errorf("TypeFor %q: unexpected error: %v", tc.tag, err)
		} else if typ.Kind != tc.kind {
			t.Errorf("TypeFor %q: got kind %v, want %v", tc.tag, typ.Kind, tc.kind)
		}
	}
}

func TestTypeForInvalid(t *testing.T) {
	for _, tag := range []string{"", "x", "S", "ss", "string"} {
		_, err := stringargs.TypeFor(tag)
		var terr *stringargs.TypeError
		if !errors.As(err, &terr) {
			t.Errorf("TypeFor %q: error %v is not a *TypeError", tag, err)
			continue
		}
		if terr.Tag != tag {
			t.Errorf("TypeFor %q: error reports tag %q", tag, terr.Tag)
		}
		if !strings.Contains(err.Error(), "s, i, f, b, n, a, o") {
			t.Errorf("TypeFor %q: error %q does not list the valid tags", tag, err)
		}
	}
}

func TestTypesOrder(t *testing.T) {
	var tags []string
	for _, typ := range stringargs.Types() {
		tags = append(tags, typ.Tag)
	}
	if got, want := strings.Join(tags, ""), "sifbnao"; got != want {
		t.Errorf("Types: got order %q, want %q", got, want)
	}
}

func TestCutTag(t *testing.T) {
	tests := []struct {
		token string
		kind  stringargs.Kind
		raw   string
	}{
		{"s:hello", stringargs.String, "hello"},
		{"i:42", stringargs.Int, "42"},
		{"a:[s:a]", stringargs.Array, "[s:a]"},
		{"s:", stringargs.String, ""},
		{"s:a:b", stringargs.String, "a:b"}, // only the first separator counts

		// Bare string shortcut: no separator anywhere
		{"", stringargs.String, ""},
		{"hello", stringargs.String, "hello"},
		{"a=b", stringargs.String, "a=b"},
	}
	for _, tc := range tests {
		typ, raw, err := stringargs.CutTag(tc.token, stringargs.DefaultSyntax)
		if err != nil {
			t.Errorf("CutTag %q: unexpected error: %v", tc.token, err)
			continue
		}
		if typ.Kind != tc.kind || raw != tc.raw {
			t.Errorf("CutTag %q: got (%v, %q), want (%v, %q)",
				tc.token, typ.Kind, raw, tc.kind, tc.raw)
		}
	}

	// A token with a separator must carry a registered tag.
	for _, token := range []string{"x:1", "hello:world", ":v"} {
		if _, _, err := stringargs.CutTag(token, stringargs.DefaultSyntax); err == nil {
			t.Errorf("CutTag %q: got nil, want error", token)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind stringargs.Kind
		want string
	}{
		{stringargs.Invalid, "invalid"},
		{stringargs.String, "string"},
		{stringargs.Int, "int"},
		{stringargs.Float, "float"},
		{stringargs.Bool, "bool"},
		{stringargs.Null, "null"},
		{stringargs.Array, "array"},
		{stringargs.Object, "object"},
		{stringargs.Kind(100), "invalid"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String: got %q, want %q", tc.kind, got, tc.want)
		}
	}
}
