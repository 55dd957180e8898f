// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doi

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "10.1234/abc.1", true},
		{"acm", "10.1145/1234567.1234568", true},
		{"nature", "10.1038/s41586-024-07487-w", true},
		{"nine digit registrant", "10.123456789/x", true},
		{"sici punctuation", "10.1002/(SICI)1097-4571(199806)49:8;2-F", true},
		{"trailing garbage kept", "10.1234/abc def", true},
		{"three digit registrant", "10.123/x", false},
		{"ten digit registrant", "10.1234567890/x", false},
		{"not anchored", "abc/10.1234/x", false},
		{"leading space", " 10.1234/x", false},
		{"url form", "https://doi.org/10.1234/x", false},
		{"missing suffix", "10.1234/", false},
		{"dot is literal", "10x1234/abc", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.input); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IdentifierType
	}{
		{"bare doi", "10.1145/1234567.1234568", TypeDOI},
		{"https url", "https://dl.acm.org/doi/10.1145/1234567", TypeURL},
		{"doi.org url", "https://doi.org/10.1145/1234567", TypeURL},
		{"garbage is a url", "not-an-id", TypeURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdentifierTypeString(t *testing.T) {
	if TypeDOI.String() != "doi" {
		t.Errorf("TypeDOI.String() = %q", TypeDOI.String())
	}
	if TypeURL.String() != "url" {
		t.Errorf("TypeURL.String() = %q", TypeURL.String())
	}
}
