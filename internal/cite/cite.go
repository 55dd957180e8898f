// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite fetches formatted citations from a DOI resolver using content
// negotiation.
package cite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"

	"github.com/pdiddy/doicite/internal/httputil"
)

// DefaultResolverBase is the public DOI resolver.
const DefaultResolverBase = "https://doi.org/"

// ErrCitationUnavailable is returned when the resolver rejects the request.
// An unknown DOI and an unsupported style are indistinguishable.
var ErrCitationUnavailable = errors.New("citation unavailable")

// Fetcher requests citations for DOIs.
type Fetcher struct {
	Client *http.Client

	// Base is prepended to the DOI to form the request URL.
	Base string
}

// NewFetcher returns a Fetcher using client and base. An empty base selects
// DefaultResolverBase.
func NewFetcher(client *http.Client, base string) *Fetcher {
	if base == "" {
		base = DefaultResolverBase
	}
	return &Fetcher{Client: client, Base: base}
}

// Cite asks the resolver for doi formatted in style and returns the body
// verbatim. Undecodable bytes are replaced with U+FFFD rather than failing.
func (f *Fetcher) Cite(ctx context.Context, doi, style string) (string, error) {
	header := make(http.Header)
	header.Set("Accept", AcceptHeader(style))

	url := f.Base + doi
	resp, err := httputil.Get(ctx, f.Client, url, header)
	if err != nil {
		return "", fmt.Errorf("requesting citation for %s: %w", doi, err)
	}
	defer resp.Body.Close()

	if !httputil.IsSuccess(resp.StatusCode) {
		log.Debug().Str("doi", doi).Str("style", style).Int("status", resp.StatusCode).Msg("resolver rejected citation request")
		return "", ErrCitationUnavailable
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading citation for %s: %w", doi, err)
	}

	text, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding citation for %s: %w", doi, err)
	}
	return string(text), nil
}

// AcceptHeader returns the content-negotiation value for a bibliography
// entry in style.
func AcceptHeader(style string) string {
	return "text/x-bibliography; style=" + style
}
