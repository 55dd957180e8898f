// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract decides the most likely DOI of a publisher page.
//
// Each signal (a meta tag, a labelled "DOI:" string, a bare DOI-shaped
// token) is an independent Extractor producing weighted Candidates. Collect
// concatenates their output and drops strings that are not DOIs; Aggregate
// sums weights per DOI and ranks the result.
package extract

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/doicite/internal/doi"
	"github.com/pdiddy/doicite/pkg/types"
)

// ErrNoDOI is returned when a page yields no valid candidate.
var ErrNoDOI = errors.New("no DOI found")

// Extractor scans a page for one kind of DOI signal.
type Extractor interface {
	// Name identifies the signal in Candidate.Source.
	Name() string

	// Extract returns every raw observation of the signal. Strings are not
	// validated here; Collect does that.
	Extract(p *Page) []types.Candidate
}

// Collect runs extractors over p in order and returns the concatenation of
// their valid candidates. Strings failing doi.Valid are dropped without error.
func Collect(p *Page, extractors []Extractor) []types.Candidate {
	var all []types.Candidate
	for _, e := range extractors {
		found := e.Extract(p)
		kept := filterValid(found)
		log.Debug().
			Str("signal", e.Name()).
			Int("found", len(found)).
			Int("kept", len(kept)).
			Msg("signal scanned")
		all = append(all, kept...)
	}
	return all
}

// filterValid keeps candidates whose DOI passes the validity predicate.
// Rejected strings are silently discarded; a noisy page is not an error.
func filterValid(cands []types.Candidate) []types.Candidate {
	kept := make([]types.Candidate, 0, len(cands))
	for _, c := range cands {
		if doi.Valid(c.DOI) {
			kept = append(kept, c)
			continue
		}
		log.Debug().Str("signal", c.Source).Str("value", c.DOI).Msg("discarding invalid DOI string")
	}
	return kept
}

// Resolve runs the default extractors over p and returns the best DOI
// together with the full ranked table.
func Resolve(p *Page) (string, []types.AggregatedCandidate, error) {
	ranked := Aggregate(Collect(p, DefaultExtractors()))
	best, err := Best(ranked)
	return best, ranked, err
}
