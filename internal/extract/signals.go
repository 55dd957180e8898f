// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/doicite/pkg/types"
)

// Signal weights. Structured meta tags are far more reliable than free text.
const (
	weightCitationDOI  = 1.0
	weightEvtDOIPage   = 1.0
	weightDCIdentifier = 0.9
	weightPBContext    = 0.8
	weightDOILabel     = 0.2
	weightFreeText     = 0.1
)

// Free-text patterns. Only the literal prefixes are case-insensitive; the
// suffix class is ASCII-only and omits ';'.
var (
	// pbContextRe pulls the DOI out of a decoded Atypon pbContext value, e.g.
	// "...;article:article:doi\:10.1145/3290605.3300233;...".
	pbContextRe = regexp.MustCompile(`(?i:article:article:doi)\\:(10\.\d{4,9}/[-._()/:A-Za-z0-9]+);`)

	// doiLabelRe matches "DOI: 10.x/y" and "DOI: https://doi.org/10.x/y".
	doiLabelRe = regexp.MustCompile(`(?i:DOI): +(?:(?i:(?:https?://)?doi\.org)/)?(10\.\d{4,9}/[-._()/:A-Za-z0-9]+)`)

	// freeTextRe matches any doi.org link or bare DOI-shaped token.
	freeTextRe = regexp.MustCompile(`(?:(?i:(?:https?://)?doi\.org)/)?(10\.\d{4,9}/[-._()/:A-Za-z0-9]+)`)
)

// DefaultExtractors returns the signals in priority order.
func DefaultExtractors() []Extractor {
	return []Extractor{
		metaExtractor{name: "citation_doi", weight: weightCitationDOI},
		metaExtractor{name: "evt-doiPage", weight: weightEvtDOIPage},
		metaExtractor{name: "dc.Identifier", weight: weightDCIdentifier},
		pbContextExtractor{weight: weightPBContext},
		textExtractor{name: "doi: text", re: doiLabelRe, weight: weightDOILabel},
		textExtractor{name: "free text", re: freeTextRe, weight: weightFreeText},
	}
}

// metaExtractor reads the content attribute of every <meta name="..."> tag
// with the given name. Matching on the name value is case-sensitive.
type metaExtractor struct {
	name   string
	weight float64
}

func (m metaExtractor) Name() string { return m.name }

func (m metaExtractor) Extract(p *Page) []types.Candidate {
	var out []types.Candidate
	p.Doc.Find(`meta[name="` + m.name + `"][content]`).Each(func(_ int, s *goquery.Selection) {
		content, _ := s.Attr("content")
		out = append(out, types.Candidate{DOI: content, Source: m.name, Weight: m.weight})
	})
	return out
}

// pbContextExtractor URL-decodes each pbContext meta value and takes the
// first embedded article DOI.
type pbContextExtractor struct {
	weight float64
}

func (pbContextExtractor) Name() string { return "pbContext" }

func (e pbContextExtractor) Extract(p *Page) []types.Candidate {
	var out []types.Candidate
	p.Doc.Find(`meta[name="pbContext"][content]`).Each(func(_ int, s *goquery.Selection) {
		raw, _ := s.Attr("content")
		if m := pbContextRe.FindStringSubmatch(unescape(raw)); m != nil {
			out = append(out, types.Candidate{DOI: m[1], Source: e.Name(), Weight: e.weight})
		}
	})
	return out
}

// unescape decodes every well-formed %XX sequence and leaves malformed ones
// untouched. Invalid UTF-8 in the result becomes U+FFFD.
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c <= 'F':
		return c - 'A' + 10
	default:
		return c - 'a' + 10
	}
}

// textExtractor scans the whole page body, tags and scripts included, and
// records every match of re's first group.
type textExtractor struct {
	name   string
	re     *regexp.Regexp
	weight float64
}

func (t textExtractor) Name() string { return t.name }

func (t textExtractor) Extract(p *Page) []types.Candidate {
	var out []types.Candidate
	for _, m := range t.re.FindAllStringSubmatch(p.Body, -1) {
		out = append(out, types.Candidate{DOI: m[1], Source: t.name, Weight: t.weight})
	}
	return out
}
