// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package stringargs

import "strings"

// A Type is one entry of the type registry. It describes how tokens
// carrying its tag are decoded.
type Type struct {
	Tag           string // the one-character type tag
	Kind          Kind   // the kind of value the type decodes to
	RequiresValue bool   // an empty raw value is an error
}

// Registration order is fixed; error messages list tags in this order.
var types = []Type{
	{Tag: "s", Kind: String},
	{Tag: "i", Kind: Int, RequiresValue: true},
	{Tag: "f", Kind: Float, RequiresValue: true},
	{Tag: "b", Kind: Bool, RequiresValue: true},
	{Tag: "n", Kind: Null},
	{Tag: "a", Kind: Array},
	{Tag: "o", Kind: Object},
}

// Types returns the entries of the type registry in registration order.
// The caller must not modify the returned slice.
func Types() []Type { return types }

// TypeFor returns the registry entry for the given type tag. If tag is
// not registered the error has concrete type *TypeError.
func TypeFor(tag string) (Type, error) {
	for _, t := range types {
		if t.Tag == tag {
			return t, nil
		}
	}
	return Type{}, &TypeError{Tag: tag}
}

func tagList() string {
	tags := make([]string, len(types))
	for i, t := range types {
		tags[i] = t.Tag
	}
	return strings.Join(tags, ", ")
}

// CutTag splits token at the first occurrence of the type separator and
// resolves the tag against the registry. A token containing no type
// separator at all is a plain string whose raw value is the whole token.
func CutTag(token string, syn Syntax) (Type, string, error) {
	tag, raw, ok := strings.Cut(token, syn.TypeSep)
	if !ok {
		return types[0], token, nil // bare string shortcut
	}
	t, err := TypeFor(tag)
	if err != nil {
		return Type{}, "", err
	}
	return t, raw, nil
}
