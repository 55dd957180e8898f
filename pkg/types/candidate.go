// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the doicite pipeline.
// Candidate and AggregatedCandidate carry the DOI extractor's observations;
// Resolution is the record the report layer renders.
package types

// Candidate is a single DOI observation found while scanning a page.
// Several candidates may carry the same DOI string.
type Candidate struct {
	// DOI is the extracted identifier. It always satisfies the DOI
	// validity predicate once it reaches aggregation.
	DOI string `json:"doi" yaml:"doi"`

	// Source names the signal that produced the observation
	// (e.g. "citation_doi", "free text").
	Source string `json:"source" yaml:"source"`

	// Weight is the fixed confidence of the signal.
	Weight float64 `json:"weight" yaml:"weight"`
}

// AggregatedCandidate is a DOI paired with the summed weight of every
// candidate that shares its string. It is derived fresh on every extraction.
type AggregatedCandidate struct {
	DOI   string  `json:"doi" yaml:"doi"`
	Score float64 `json:"score" yaml:"score"`

	// Sources lists the contributing signal names in first-seen order,
	// one entry per signal.
	Sources []string `json:"sources" yaml:"sources"`
}
