// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package stringargs

// Kind is the kind of a decoded value in the stringargs grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid kind
	String              // plain string, no validation
	Int                 // decimal integer
	Float               // decimal floating-point number
	Bool                // boolean constant
	Null                // the null value
	Array               // ordered collection
	Object              // keyed record
)

var kindStr = [...]string{
	Invalid: "invalid",
	String:  "string",
	Int:     "int",
	Float:   "float",
	Bool:    "bool",
	Null:    "null",
	Array:   "array",
	Object:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return kindStr[Invalid]
}

// IsCompound reports whether k is one of the bracketed compound kinds.
func (k Kind) IsCompound() bool { return k == Array || k == Object }
