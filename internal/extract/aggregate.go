// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"math"
	"slices"
	"sort"

	"github.com/pdiddy/doicite/pkg/types"
)

// Aggregate groups candidates by exact DOI string, sums their weights and
// returns the groups ordered by score, highest first.
//
// Weights are summed in integer thousandths, so a group's score does not
// depend on the order candidates were discovered in.
//
// Groups with equal scores currently come out in ascending DOI order, a side
// effect of ordering by DOI before the stable score sort. That order is not
// part of the contract.
func Aggregate(cands []types.Candidate) []types.AggregatedCandidate {
	type group struct {
		milli   int64
		sources []string
	}

	groups := make(map[string]*group)
	for _, c := range cands {
		g, ok := groups[c.DOI]
		if !ok {
			g = &group{}
			groups[c.DOI] = g
		}
		g.milli += int64(math.Round(c.Weight * 1000))
		if !slices.Contains(g.sources, c.Source) {
			g.sources = append(g.sources, c.Source)
		}
	}

	ranked := make([]types.AggregatedCandidate, 0, len(groups))
	for d, g := range groups {
		ranked = append(ranked, types.AggregatedCandidate{
			DOI:     d,
			Score:   float64(g.milli) / 1000,
			Sources: g.sources,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DOI < ranked[j].DOI
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Best returns the DOI of the top-ranked group, or ErrNoDOI when there is none.
func Best(ranked []types.AggregatedCandidate) (string, error) {
	if len(ranked) == 0 {
		return "", ErrNoDOI
	}
	return ranked[0].DOI, nil
}
