// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package stringargs

import "strings"

// SplitCompound splits the body of a compound literal into its top-level
// elements. The body is the literal's content with the surrounding
// brackets already stripped. The element separator only splits at bracket
// depth 0; a separator inside a nested "[...]" is kept as part of the
// current element. An empty body yields a single empty element; callers
// that need "zero elements" for an empty literal must check for it before
// splitting.
func SplitCompound(body string, syn Syntax) []string {
	var elems []string
	depth, start := 0, 0
	for i := 0; i < len(body); {
		switch {
		case body[i] == '[':
			depth++
			i++
		case body[i] == ']':
			depth--
			i++
		case depth == 0 && strings.HasPrefix(body[i:], syn.Separator):
			elems = append(elems, body[start:i])
			i += len(syn.Separator)
			start = i
		default:
			i++
		}
	}
	return append(elems, body[start:])
}

// SplitElement resolves one top-level element into an optional explicit
// key and the raw token to decode. The assignment token is only
// recognized at bracket depth 0. If it is absent the element is
// positional: hasKey is false and value is the element unchanged. An
// empty key is a valid explicit key.
func SplitElement(element string, syn Syntax) (key, value string, hasKey bool) {
	depth := 0
	for i := 0; i < len(element); {
		switch {
		case element[i] == '[':
			depth++
			i++
		case element[i] == ']':
			depth--
			i++
		case depth == 0 && strings.HasPrefix(element[i:], syn.Assign):
			return element[:i], element[i+len(syn.Assign):], true
		default:
			i++
		}
	}
	return "", element, false
}
