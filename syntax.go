// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package stringargs

import (
	"fmt"
	"strings"
)

// Syntax holds the three configurable marker tokens of the grammar.
type Syntax struct {
	Separator string // separates elements of a compound literal
	Assign    string // separates an explicit key from its value
	TypeSep   string // separates a type tag from the raw value
}

// DefaultSyntax is the syntax used when none is configured.
var DefaultSyntax = Syntax{Separator: ",", Assign: "=", TypeSep: ":"}

// Validate checks that the marker tokens of s are usable: each must be
// non-empty, the three must be pairwise distinct, and none may contain a
// bracket (brackets delimit compound literals and are not configurable).
func (s Syntax) Validate() error {
	marks := []struct{ name, tok string }{
		{"separator", s.Separator},
		{"assignment token", s.Assign},
		{"type separator", s.TypeSep},
	}
	for i, m := range marks {
		if m.tok == "" {
			return fmt.Errorf("empty %s", m.name)
		}
		if strings.ContainsAny(m.tok, "[]") {
			return fmt.Errorf("%s %q contains a bracket", m.name, m.tok)
		}
		for _, p := range marks[:i] {
			if p.tok == m.tok {
				return fmt.Errorf("%s and %s are both %q", p.name, m.name, m.tok)
			}
		}
	}
	return nil
}
