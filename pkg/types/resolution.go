// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Status records how far a resolution got.
type Status string

const (
	StatusOK             Status = "ok"
	StatusNoDOI          Status = "no_doi"
	StatusCitationFailed Status = "citation_failed"
)

// Resolution holds the outcome of one doicite invocation.
type Resolution struct {
	// Input is the first command-line argument as given.
	Input string `json:"input" yaml:"input"`

	// URL is set when the input was treated as a page URL.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// DOI is the resolved identifier; empty when none was found.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Style is the citation style requested from the resolver.
	Style string `json:"style" yaml:"style"`

	// Citation is the formatted reference text returned by the resolver.
	Citation string `json:"citation,omitempty" yaml:"citation,omitempty"`

	// Candidates is the ranked aggregation table, populated only when the
	// caller asked for it.
	Candidates []AggregatedCandidate `json:"candidates,omitempty" yaml:"candidates,omitempty"`

	Status Status `json:"status" yaml:"status"`
}
