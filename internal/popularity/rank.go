package popularity

import (
	"cmp"
	"slices"
)

// NoResult is the hit count recorded for a name no pageviews were found for.
const NoResult = -1

const DefaultTop = 5

type Result struct {
	Hits int
	Name string
}

func compareResults(a, b Result) int {
	if c := cmp.Compare(a.Hits, b.Hits); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// Rank sorts `results` in place on (Hits, Name) ascending and then reverses
// it, leaving the most viewed first with ties ordered by descending name.
func Rank(results []Result) []Result {
	slices.SortStableFunc(results, compareResults)
	slices.Reverse(results)
	return results
}

// Top returns at most `n` leading results of a ranking.
func Top(ranked []Result, n int) []Result {
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}

func CountNoResult(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Hits == NoResult {
			count++
		}
	}
	return count
}
