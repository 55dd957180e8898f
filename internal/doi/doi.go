// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doi recognises Digital Object Identifiers and classifies
// command-line input as either a DOI or a page URL.
package doi

import "regexp"

// IdentifierType classifies an input identifier.
type IdentifierType int

const (
	TypeURL IdentifierType = iota
	TypeDOI
)

func (t IdentifierType) String() string {
	switch t {
	case TypeDOI:
		return "doi"
	default:
		return "url"
	}
}

// Pattern matches a DOI-shaped prefix: "10.", 4 to 9 registrant digits,
// "/", then one or more suffix characters. It is anchored at the start only,
// so "10.1234/abc<garbage" still matches.
var Pattern = regexp.MustCompile(`^10\.\d{4,9}/[-._;()/:A-Za-z0-9]+`)

// Valid reports whether s starts with a DOI-shaped token.
func Valid(s string) bool {
	return Pattern.MatchString(s)
}

// Classify reports whether input is a DOI or should be treated as a URL.
// Anything that fails Valid is a URL; no further URL checking is done.
func Classify(input string) IdentifierType {
	if Valid(input) {
		return TypeDOI
	}
	return TypeURL
}

