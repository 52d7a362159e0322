// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/LukasJankowski/stringargs"
	"github.com/LukasJankowski/stringargs/ast"
	"github.com/google/go-cmp/cmp"
)

func TestValueStrings(t *testing.T) {
	tests := []struct {
		value ast.Value
		kind  stringargs.Kind
		want  string
	}{
		{ast.String(""), stringargs.String, ""},
		{ast.String("hello"), stringargs.String, "hello"},
		{ast.Int(-25), stringargs.Int, "-25"},
		{ast.Float(1.2345), stringargs.Float, "1.2345"},
		{ast.Float(-0.001), stringargs.Float, "-0.001"},
		{ast.Bool(true), stringargs.Bool, "true"},
		{ast.Bool(false), stringargs.Bool, "false"},
		{ast.Null{}, stringargs.Null, "null"},
		{&ast.Compound{}, stringargs.Array, "[]"},
		{&ast.Compound{IsRecord: true}, stringargs.Object, "[]"},
		{ast.MustDecode("a:[x=s:1,s:2]"), stringargs.Array, "[x=1,0=2]"},
	}
	for _, tc := range tests {
		if got := tc.value.Kind(); got != tc.kind {
			t.Errorf("Kind of %#v: got %v, want %v", tc.value, got, tc.kind)
		}
		if got := tc.value.String(); got != tc.want {
			t.Errorf("String of %#v: got %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestKeys(t *testing.T) {
	s := ast.StringKey("007")
	if s.IsInt() {
		t.Error("StringKey(007).IsInt: got true, want false")
	}
	if got := s.String(); got != "007" {
		t.Errorf("StringKey(007).String: got %q, want %q", got, "007")
	}
	n := ast.IntKey(-3)
	if !n.IsInt() {
		t.Error("IntKey(-3).IsInt: got false, want true")
	}
	if got, want := n.Int(), int64(-3); got != want {
		t.Errorf("IntKey(-3).Int: got %d, want %d", got, want)
	}
	if got := n.String(); got != "-3" {
		t.Errorf("IntKey(-3).String: got %q, want %q", got, "-3")
	}
}

func TestCompoundLookup(t *testing.T) {
	c := ast.MustDecode("a:[key=s:value,123=s:bar,s:pos]").(*ast.Compound)

	if e := c.Find("key"); e == nil {
		t.Error(`Find("key"): got nil, want entry`)
	} else if got := e.Value.String(); got != "value" {
		t.Errorf(`Find("key"): got value %q, want "value"`, got)
	}
	if e := c.FindInt(123); e == nil {
		t.Error("FindInt(123): got nil, want entry")
	} else if got := e.Value.String(); got != "bar" {
		t.Errorf("FindInt(123): got value %q, want %q", got, "bar")
	}

	// The integer-looking explicit key is not a string key, and the
	// positional entry got index 0 independent of the explicit keys.
	if e := c.Find("123"); e != nil {
		t.Errorf(`Find("123"): got %v, want nil`, e)
	}
	if e := c.FindInt(0); e == nil {
		t.Error("FindInt(0): got nil, want positional entry")
	} else if got := e.Value.String(); got != "pos" {
		t.Errorf("FindInt(0): got value %q, want %q", got, "pos")
	}
	if e := c.Find("nonesuch"); e != nil {
		t.Errorf(`Find("nonesuch"): got %v, want nil`, e)
	}

	if got, want := c.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	if got := c.At(2).Value.String(); got != "pos" {
		t.Errorf("At(2): got value %q, want %q", got, "pos")
	}
}

func TestToGo(t *testing.T) {
	tests := []struct {
		token string
		want  any
	}{
		{"s:hello", "hello"},
		{"i:-25", int64(-25)},
		{"f:1.5", 1.5},
		{"b:on", true},
		{"n:", nil},
		{"a:", []any{}},
		{"o:", map[string]any{}},
		{"a:[s:a,s:b]", []any{"a", "b"}},
		{"a:[i:1,a:[b:true]]", []any{int64(1), []any{true}}},

		// Explicit keys force the map form, ints rendered in decimal.
		{"a:[key=s:value,123=s:bar]", map[string]any{"key": "value", "123": "bar"}},
		{"a:[key=s:value,s:bar]", map[string]any{"key": "value", "0": "bar"}},
		{"a:[1=s:a,0=s:b]", map[string]any{"1": "a", "0": "b"}},

		// Records are maps even when purely positional.
		{"o:[s:a,s:b]", map[string]any{"0": "a", "1": "b"}},
		{"o:[list=a:[s:x]]", map[string]any{"list": map[string]any{"0": "x"}}},
	}
	for _, tc := range tests {
		got := ast.ToGo(ast.MustDecode(tc.token))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ToGo %q: wrong value (-want, +got):\n%s", tc.token, diff)
		}
	}
}
