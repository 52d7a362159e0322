// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

// Package cursor implements traversal over decoded stringargs values.
package cursor

import (
	"fmt"

	"github.com/LukasJankowski/stringargs/ast"
)

// Path traverses a sequential path into the structure of v where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and
// retrieving its value.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	var result T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return result, err
	}
	result, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return result, nil
}

// A Cursor is a pointer that navigates into the structure of a decoded
// value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from
// the current value, where path elements are either strings (denoting
// explicit string keys), int or int64 values (denoting entry offsets in
// insertion order), or functions (see below). If the path cannot be
// completely consumed, traversal stops and an error is recorded. Use Err
// to recover the error.
//
// If a path element is a string, the corresponding value must be a
// compound, and the string resolves the first entry with that string key.
//
// If a path element is an int or int64, the corresponding value must be a
// compound, and the integer resolves the entry at that offset in
// insertion order. Negative offsets count backward from the end (-1 is
// last, -2 second last). An error is reported if the offset is out of
// bounds.
//
// If a path element is a function, the function is executed and its
// result becomes the next value in the sequence. The function must have a
// signature
//
//	func(ast.Value) (ast.Value, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			comp, ok := cur.(*ast.Compound)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, elt)
			}
			e := comp.Find(t)
			if e == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(e.Value)

		case int, int64:
			comp, ok := cur.(*ast.Compound)
			if !ok {
				return c.setErrorf("cannot traverse %T with %v", cur, elt)
			}
			n, _ := elt.(int)
			if w, ok := elt.(int64); ok {
				n = int(w)
			}
			i, ok := fixBound(comp.Len(), n)
			if !ok {
				return c.setErrorf("offset %d out of bounds (n=%d)", n, comp.Len())
			}
			cur = c.push(comp.At(i).Value)

		case func(ast.Value) (ast.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
