// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doicite/pkg/types"
)

func TestAggregate(t *testing.T) {
	cands := []types.Candidate{
		{DOI: "10.1000/b", Source: "free text", Weight: 0.1},
		{DOI: "10.1000/a", Source: "dc.Identifier", Weight: 0.9},
		{DOI: "10.1000/b", Source: "doi: text", Weight: 0.2},
		{DOI: "10.1000/a", Source: "free text", Weight: 0.1},
		{DOI: "10.1000/b", Source: "free text", Weight: 0.1},
		{DOI: "10.1000/A", Source: "citation_doi", Weight: 1.0},
		{DOI: "10.1000/A", Source: "evt-doiPage", Weight: 1.0},
	}

	ranked := Aggregate(cands)
	require.Len(t, ranked, 3)

	// Grouping is case-sensitive.
	assert.Equal(t, "10.1000/A", ranked[0].DOI)
	assert.Equal(t, 2.0, ranked[0].Score)

	assert.Equal(t, "10.1000/a", ranked[1].DOI)
	assert.Equal(t, 1.0, ranked[1].Score)
	assert.Equal(t, []string{"dc.Identifier", "free text"}, ranked[1].Sources)

	assert.Equal(t, "10.1000/b", ranked[2].DOI)
	assert.Equal(t, 0.4, ranked[2].Score)
	assert.Equal(t, []string{"free text", "doi: text"}, ranked[2].Sources)
}

func TestAggregate_ExactSums(t *testing.T) {
	// 0.1 added ten times in float64 is not 1.0; the summed score must be.
	var cands []types.Candidate
	for i := 0; i < 10; i++ {
		cands = append(cands, types.Candidate{DOI: "10.1000/x", Source: "free text", Weight: 0.1})
	}
	ranked := Aggregate(cands)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].Score)
}

func TestAggregate_EqualScoresKeepBothGroups(t *testing.T) {
	ranked := Aggregate([]types.Candidate{
		{DOI: "10.1000/z", Source: "citation_doi", Weight: 1.0},
		{DOI: "10.1000/y", Source: "evt-doiPage", Weight: 1.0},
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.ElementsMatch(t, []string{"10.1000/y", "10.1000/z"}, []string{ranked[0].DOI, ranked[1].DOI})
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestBest(t *testing.T) {
	_, err := Best(nil)
	assert.ErrorIs(t, err, ErrNoDOI)

	got, err := Best([]types.AggregatedCandidate{{DOI: "10.1000/top", Score: 2}, {DOI: "10.1000/low", Score: 1}})
	require.NoError(t, err)
	assert.Equal(t, "10.1000/top", got)
}
