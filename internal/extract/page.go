// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"

	"github.com/pdiddy/doicite/internal/httputil"
	"github.com/pdiddy/doicite/pkg/types"
)

// Page is a fetched publisher page: the body as UTF-8 text for free-text
// scanning plus a parsed view for meta tag lookups.
type Page struct {
	URL        string
	StatusCode int
	Body       string
	Doc        *goquery.Document
}

// NewPage transcodes raw to UTF-8 using the declared or sniffed charset and
// parses it as HTML. contentType may be empty.
func NewPage(raw []byte, contentType string) (*Page, error) {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		// Empty body; there is nothing to transcode.
		r = bytes.NewReader(raw)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{Body: string(text), Doc: doc}, nil
}

// Fetch downloads url with the browser header set and returns the page.
// An error status is logged but the body is still parsed, so a 403 page
// and a page without a DOI look the same to the caller. Only transport
// and read failures return an error.
func Fetch(ctx context.Context, client *http.Client, url string, cfg types.HTTPConfig) (*Page, error) {
	resp, err := httputil.Get(ctx, client, url, httputil.BrowserHeaders(cfg.UserAgent))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if !httputil.IsSuccess(resp.StatusCode) {
		log.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("page returned error status; scanning body anyway")
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}

	p, err := NewPage(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	p.URL = url
	p.StatusCode = resp.StatusCode
	log.Debug().Str("url", url).Int("status", resp.StatusCode).Int("bytes", len(raw)).Msg("page fetched")
	return p, nil
}
