// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package stringargs

import "fmt"

// TypeError is the concrete type of errors reported for an unrecognized
// type tag.
type TypeError struct {
	Tag string // the tag that was not recognized
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type tag %q (valid tags: %s)", e.Tag, tagList())
}

// MissingValueError is the concrete type of errors reported when a type
// that requires a value is given none.
type MissingValueError struct {
	Type Type // the type whose value is missing
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing required value for type %s", e.Type.Kind)
}

// CoerceError is the concrete type of errors reported when a raw value
// does not have the textual form its target type requires.
type CoerceError struct {
	Value  string // the raw text that failed to coerce
	Target Kind   // the kind the text was coerced toward
}

func (e *CoerceError) Error() string {
	return fmt.Sprintf("cannot coerce %q to %s", e.Value, e.Target)
}

// DepthError is the concrete type of errors reported when compound
// nesting exceeds the decoder's depth limit.
type DepthError struct {
	Depth int // the nesting depth at which decoding stopped
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("compound nesting too deep (%d levels)", e.Depth)
}
