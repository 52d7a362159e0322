// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package ast

import (
	"sync"

	"github.com/LukasJankowski/stringargs"
)

// maxDepth bounds compound nesting so that adversarially deep input fails
// with a *stringargs.DepthError instead of exhausting the stack.
const maxDepth = 200

// A Decoder decodes stringargs tokens into Values. A zero Decoder is
// ready to use and decodes with the default syntax.
//
// The syntax accessors are safe for concurrent use. Each call to Decode
// reads the syntax once at the start, so changing a marker token affects
// only decodes that begin after the change.
type Decoder struct {
	mu  sync.Mutex
	syn *stringargs.Syntax // nil means DefaultSyntax
}

// NewDecoder constructs a Decoder using the given syntax.
// It reports an error if the syntax is not valid.
func NewDecoder(syn stringargs.Syntax) (*Decoder, error) {
	if err := syn.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{syn: &syn}, nil
}

// Syntax returns the syntax d currently decodes with.
func (d *Decoder) Syntax() stringargs.Syntax {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.syn == nil {
		return stringargs.DefaultSyntax
	}
	return *d.syn
}

// SetSyntax replaces the syntax of d for subsequent decodes.
// It reports an error and leaves d unchanged if syn is not valid.
func (d *Decoder) SetSyntax(syn stringargs.Syntax) error {
	if err := syn.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.syn = &syn
	return nil
}

// Separator returns the compound element separator of d.
func (d *Decoder) Separator() string { return d.Syntax().Separator }

// SetSeparator replaces the compound element separator of d.
func (d *Decoder) SetSeparator(sep string) error {
	syn := d.Syntax()
	syn.Separator = sep
	return d.SetSyntax(syn)
}

// Assign returns the key assignment token of d.
func (d *Decoder) Assign() string { return d.Syntax().Assign }

// SetAssign replaces the key assignment token of d.
func (d *Decoder) SetAssign(assign string) error {
	syn := d.Syntax()
	syn.Assign = assign
	return d.SetSyntax(syn)
}

// TypeSep returns the type separator of d.
func (d *Decoder) TypeSep() string { return d.Syntax().TypeSep }

// SetTypeSep replaces the type separator of d.
func (d *Decoder) SetTypeSep(tsep string) error {
	syn := d.Syntax()
	syn.TypeSep = tsep
	return d.SetSyntax(syn)
}

// Decode decodes a single token. Any failure aborts the whole decode and
// returns a nil Value; there are no partial results. The error has one of
// the concrete types *stringargs.TypeError, *stringargs.MissingValueError,
// *stringargs.CoerceError, or *stringargs.DepthError.
func (d *Decoder) Decode(token string) (Value, error) {
	return decode(token, d.Syntax(), false, 0)
}

// Decode decodes a single token with the default syntax.
func Decode(token string) (Value, error) {
	return decode(token, stringargs.DefaultSyntax, false, 0)
}

// MustDecode is as Decode, but panics on error. It is intended for tokens
// known to be well formed, such as literals in tests.
func MustDecode(token string) Value {
	v, err := Decode(token)
	if err != nil {
		panic("stringargs: " + err.Error())
	}
	return v
}

// decode is the driver. The record flag carries object-ness down the
// tree: every compound decoded under an object root is a record.
func decode(token string, syn stringargs.Syntax, record bool, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, &stringargs.DepthError{Depth: depth}
	}
	typ, raw, err := stringargs.CutTag(token, syn)
	if err != nil {
		return nil, err
	}
	if raw == "" && typ.RequiresValue {
		return nil, &stringargs.MissingValueError{Type: typ}
	}
	switch typ.Kind {
	case stringargs.String:
		return String(raw), nil
	case stringargs.Int:
		n, err := stringargs.CoerceInt(raw)
		if err != nil {
			return nil, err
		}
		return Int(n), nil
	case stringargs.Float:
		f, err := stringargs.CoerceFloat(raw)
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case stringargs.Bool:
		b, err := stringargs.CoerceBool(raw)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case stringargs.Null:
		// The raw value is ignored entirely; "n:" and "n:anything" are
		// both null.
		return Null{}, nil
	case stringargs.Array:
		c, err := decodeCompound(raw, syn, record, depth)
		if err != nil {
			return nil, err
		}
		return c, nil
	default: // stringargs.Object
		c, err := decodeCompound(raw, syn, true, depth)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func decodeCompound(raw string, syn stringargs.Syntax, record bool, depth int) (*Compound, error) {
	c := &Compound{IsRecord: record}
	if raw == "" {
		return c, nil // missing value: the empty collection
	}
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return nil, &stringargs.CoerceError{Value: raw, Target: c.Kind()}
	}
	body := raw[1 : len(raw)-1]
	if body == "" {
		return c, nil // "[]" has zero elements, not one empty element
	}
	var pos int64
	for _, elem := range stringargs.SplitCompound(body, syn) {
		key, sub, hasKey := stringargs.SplitElement(elem, syn)
		v, err := decode(sub, syn, record, depth+1)
		if err != nil {
			return nil, err
		}
		k := IntKey(pos)
		if hasKey {
			k = keyFor(key)
		} else {
			pos++
		}
		c.Entries = append(c.Entries, &Entry{Key: k, Value: v})
	}
	return c, nil
}
