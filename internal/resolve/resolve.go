// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve runs one lookup: classify the input, extract a DOI from the
// page when the input is a URL, then fetch the citation.
package resolve

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/doicite/internal/cite"
	"github.com/pdiddy/doicite/internal/doi"
	"github.com/pdiddy/doicite/internal/extract"
	"github.com/pdiddy/doicite/pkg/types"
)

// Resolver holds the collaborators for a lookup. The zero value is not
// usable; build one with New.
type Resolver struct {
	client  *http.Client
	fetcher *cite.Fetcher
	cfg     types.CiteConfig
}

// New returns a Resolver that issues requests through client.
func New(client *http.Client, cfg types.CiteConfig) *Resolver {
	return &Resolver{
		client:  client,
		fetcher: cite.NewFetcher(client, cfg.ResolverBase),
		cfg:     cfg,
	}
}

// Run resolves input and fetches its citation in style. The two expected
// failures (no DOI on the page, resolver rejection) are reported through
// Resolution.Status with a nil error; only transport failures return an
// error. At most two requests are made and never concurrently.
func (r *Resolver) Run(ctx context.Context, input, style string) (types.Resolution, error) {
	res := types.Resolution{Input: input, Style: style}

	if doi.Classify(input) == doi.TypeDOI {
		log.Debug().Str("doi", input).Msg("input is a DOI; skipping page extraction")
		res.DOI = input
	} else {
		res.URL = input
		page, err := extract.Fetch(ctx, r.client, input, r.cfg.HTTPConfig)
		if err != nil {
			return res, err
		}

		best, ranked, err := extract.Resolve(page)
		if r.cfg.Explain {
			res.Candidates = ranked
		}
		if errors.Is(err, extract.ErrNoDOI) {
			res.Status = types.StatusNoDOI
			return res, nil
		}
		log.Debug().Str("doi", best).Int("candidates", len(ranked)).Msg("DOI extracted")
		res.DOI = best
	}

	citation, err := r.fetcher.Cite(ctx, res.DOI, style)
	if errors.Is(err, cite.ErrCitationUnavailable) {
		res.Status = types.StatusCitationFailed
		return res, nil
	}
	if err != nil {
		return res, err
	}
	res.Citation = citation
	res.Status = types.StatusOK
	return res, nil
}
