// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

// Package ast defines the decoded value tree for stringargs tokens,
// and a decoder that constructs values from token text.
package ast

import (
	"strconv"
	"strings"

	"github.com/LukasJankowski/stringargs"
)

// A Value is a decoded stringargs value.
type Value interface {
	Kind() stringargs.Kind
	String() string
}

// A String is a plain string value.
type String string

// Kind satisfies the Value interface.
func (String) Kind() stringargs.Kind { return stringargs.String }

func (s String) String() string { return string(s) }

// An Int is a decimal integer value.
type Int int64

// Kind satisfies the Value interface.
func (Int) Kind() stringargs.Kind { return stringargs.Int }

func (z Int) String() string { return strconv.FormatInt(int64(z), 10) }

// A Float is a decimal floating-point value.
type Float float64

// Kind satisfies the Value interface.
func (Float) Kind() stringargs.Kind { return stringargs.Float }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// A Bool is a boolean value.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() stringargs.Kind { return stringargs.Bool }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Null is the null value.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() stringargs.Kind { return stringargs.Null }

func (Null) String() string { return "null" }

// A Key identifies one entry of a Compound. A key is either a string or
// an integer, as written in the input: an explicit key whose text is a
// canonical decimal integer becomes an integer key, any other explicit
// key stays a string, and positional entries get successive integer keys.
type Key struct {
	text  string
	num   int64
	isInt bool
}

// StringKey returns the string key with the given text.
func StringKey(text string) Key { return Key{text: text} }

// IntKey returns the integer key with the given value.
func IntKey(n int64) Key { return Key{num: n, isInt: true} }

// keyFor returns the key for the explicit key text as written: integer if
// the text is a canonical decimal integer, string otherwise. Forms like
// "007" or "+1" are not canonical and stay string keys.
func keyFor(text string) Key {
	n, err := stringargs.CoerceInt(text)
	if err == nil && strconv.FormatInt(n, 10) == text {
		return IntKey(n)
	}
	return StringKey(text)
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of k, or 0 if k is a string key.
func (k Key) Int() int64 { return k.num }

// String returns the text form of k.
func (k Key) String() string {
	if k.isInt {
		return strconv.FormatInt(k.num, 10)
	}
	return k.text
}

// An Entry is a single key-value pair of a Compound.
type Entry struct {
	Key   Key
	Value Value
}

// A Compound is an ordered key-value container. It represents both
// decoded arrays and decoded records; the two differ only in the record
// flag carried at the root of the literal, so one container serves both.
type Compound struct {
	IsRecord bool // record semantics (decoded under an object root)
	Entries  []*Entry
}

// Kind satisfies the Value interface.
func (c *Compound) Kind() stringargs.Kind {
	if c.IsRecord {
		return stringargs.Object
	}
	return stringargs.Array
}

// Len reports the number of entries in c.
func (c *Compound) Len() int { return len(c.Entries) }

// At returns the entry at offset i of c, in insertion order.
func (c *Compound) At(i int) *Entry { return c.Entries[i] }

// Find returns the first entry of c with the given string key, or nil.
func (c *Compound) Find(key string) *Entry {
	for _, e := range c.Entries {
		if !e.Key.IsInt() && e.Key.String() == key {
			return e
		}
	}
	return nil
}

// FindInt returns the first entry of c with the given integer key, or nil.
func (c *Compound) FindInt(n int64) *Entry {
	for _, e := range c.Entries {
		if e.Key.IsInt() && e.Key.Int() == n {
			return e
		}
	}
	return nil
}

// String renders c in the compound literal form "[k=v,...]" using the
// default syntax. The rendering is for diagnostics; it does not restore
// type tags and is not guaranteed to re-decode to an equal value.
func (c *Compound) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range c.Entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.Key.String())
		sb.WriteByte('=')
		sb.WriteString(e.Value.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// isList reports whether c can be rendered as a plain list: it is not a
// record and its keys are exactly the offsets 0..n-1 in order.
func (c *Compound) isList() bool {
	if c.IsRecord {
		return false
	}
	for i, e := range c.Entries {
		if !e.Key.IsInt() || e.Key.Int() != int64(i) {
			return false
		}
	}
	return true
}

// ToGo converts v into plain Go values: string, int64, float64, bool, nil,
// []any for plain lists, and map[string]any for records and for
// collections with explicit keys (integer keys are rendered in decimal).
// Insertion order is not preserved by the map form; callers that need
// order must walk the Compound directly.
func ToGo(v Value) any {
	switch t := v.(type) {
	case String:
		return string(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case Bool:
		return bool(t)
	case Null:
		return nil
	case *Compound:
		if t.isList() {
			vs := make([]any, len(t.Entries))
			for i, e := range t.Entries {
				vs[i] = ToGo(e.Value)
			}
			return vs
		}
		m := make(map[string]any, len(t.Entries))
		for _, e := range t.Entries {
			m[e.Key.String()] = ToGo(e.Value)
		}
		return m
	default:
		return nil
	}
}
