// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAPACitation = "Vaswani, A., Shazeer, N., & Parmar, N. (2017). Attention is all you need. Advances in Neural Information Processing Systems, 30.\n"

// newResolver serves citations for known DOIs and styles, mimicking doi.org
// content negotiation.
func newResolver(t *testing.T, citations map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept")
		if !strings.HasPrefix(accept, "text/x-bibliography; style=") {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}
		style := strings.TrimPrefix(accept, "text/x-bibliography; style=")
		if style != "apa" && style != "ieee" {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}
		doi := strings.TrimPrefix(r.URL.Path, "/")
		c, ok := citations[doi]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/x-bibliography; charset=utf-8")
		w.Write([]byte(c))
	}))
}

func TestCite(t *testing.T) {
	ts := newResolver(t, map[string]string{"10.5555/3295222.3295349": sampleAPACitation})
	defer ts.Close()

	f := NewFetcher(ts.Client(), ts.URL+"/")
	got, err := f.Cite(context.Background(), "10.5555/3295222.3295349", "apa")
	require.NoError(t, err)
	assert.Equal(t, sampleAPACitation, got)
}

func TestCite_UnknownDOI(t *testing.T) {
	ts := newResolver(t, map[string]string{})
	defer ts.Close()

	f := NewFetcher(ts.Client(), ts.URL+"/")
	got, err := f.Cite(context.Background(), "10.9999/missing", "apa")
	assert.ErrorIs(t, err, ErrCitationUnavailable)
	assert.Empty(t, got)
}

func TestCite_UnsupportedStyle(t *testing.T) {
	ts := newResolver(t, map[string]string{"10.5555/x": sampleAPACitation})
	defer ts.Close()

	f := NewFetcher(ts.Client(), ts.URL+"/")
	_, err := f.Cite(context.Background(), "10.5555/x", "no-such-style")
	assert.ErrorIs(t, err, ErrCitationUnavailable)
}

func TestCite_ReplacesInvalidUTF8(t *testing.T) {
	ts := newResolver(t, map[string]string{"10.5555/x": "Jos\xe9 (2020). Title."})
	defer ts.Close()

	f := NewFetcher(ts.Client(), ts.URL+"/")
	got, err := f.Cite(context.Background(), "10.5555/x", "ieee")
	require.NoError(t, err)
	assert.Equal(t, "Jos\uFFFD (2020). Title.", got)
}

func TestCite_SendsAcceptHeader(t *testing.T) {
	var gotAccept, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	f := NewFetcher(ts.Client(), ts.URL+"/")
	_, err := f.Cite(context.Background(), "10.1145/1234567.1234568", "chicago-author-date")
	require.NoError(t, err)
	assert.Equal(t, "text/x-bibliography; style=chicago-author-date", gotAccept)
	assert.Equal(t, "/10.1145/1234567.1234568", gotPath)
}

func TestCite_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := ts.URL + "/"
	ts.Close()

	_, err := NewFetcher(nil, base).Cite(context.Background(), "10.5555/x", "apa")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCitationUnavailable)
}

func TestNewFetcher_DefaultBase(t *testing.T) {
	f := NewFetcher(nil, "")
	assert.Equal(t, DefaultResolverBase, f.Base)
}

func TestAcceptHeader(t *testing.T) {
	assert.Equal(t, "text/x-bibliography; style=apa", AcceptHeader("apa"))
}
