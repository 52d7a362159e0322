// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

// Package stringargs implements the token-level layer of the stringargs
// grammar: a compact, single-line textual encoding of typed values.
//
// # Grammar
//
// A token is a raw value with an optional one-character type tag:
//
//	token    := [ tag ":" ] value
//	tag      := "s" | "i" | "f" | "b" | "n" | "a" | "o"
//	value    := scalar-text | compound
//	compound := "[" [ element { "," element } ] "]"
//	element  := [ key "=" ] token
//
// A token with no type separator at all is a plain string. The three
// marker tokens (element separator, assignment token, type separator) are
// configurable through a Syntax value; the defaults shown above are
// DefaultSyntax.
//
// # Layers
//
// This package provides the pieces a decoder is assembled from: the type
// registry (TypeFor, Types), tag resolution (CutTag), compound splitting
// (SplitCompound, SplitElement), and strict scalar coercion (CoerceInt,
// CoerceFloat, CoerceBool). The ast subpackage builds decoded value trees
// on top of these.
//
// # Splitting
//
// SplitCompound splits the body of a compound literal into its top-level
// elements. The element separator is only recognized at bracket depth 0,
// so a separator inside a nested "[...]" belongs to the nested literal:
//
//	SplitCompound("s:a,a:[s:b,s:c]", DefaultSyntax)
//	// yields "s:a" and "a:[s:b,s:c]"
//
// The scan tracks an explicit bracket-depth counter; nesting depth does
// not affect its memory use.
//
// # Coercion
//
// Scalar coercion is strict: each coercer accepts a narrow textual form
// and rejects everything else with a *CoerceError naming the target type.
// There is no type juggling; "1.0" is not an int and "maybe" is not a
// bool.
package stringargs
