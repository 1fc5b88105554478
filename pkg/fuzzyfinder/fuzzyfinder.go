package fuzzyfinder

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type Rank struct {
	// Source is the query.
	Source string

	// Target is the key matched against.
	Target string

	// Distance is the Levenshtein distance between Source and Target.
	Distance int

	// OriginalIndex is the position of Target in the key list.
	OriginalIndex int
}

// RankFindFold matches query against keys ignoring case and returns the hits
// closest first. Equal distances keep key order.
func RankFindFold(keys []string, query string) []Rank {
	found := fuzzy.RankFindFold(query, keys)
	ranks := make([]Rank, len(found))
	for i, r := range found {
		ranks[i] = Rank{
			Source:        r.Source,
			Target:        r.Target,
			Distance:      r.Distance,
			OriginalIndex: r.OriginalIndex,
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks
}
