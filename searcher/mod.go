package searcher

import (
	"yahtzee/game"

	"golang.org/x/exp/slices"
)

// Result is a candidate hold with its expected score after re-rolling the
// remaining FreeDice dice.
type Result struct {
	Value    float64
	Hold     game.Hand
	FreeDice int
}

// compareResults orders results by expected value, highest first. Equal values
// fall back to the lexicographic order of the sorted holds, so the empty hold
// precedes every other hold with the same value.
func compareResults(a, b Result) int {
	switch {
	case a.Value > b.Value:
		return -1
	case a.Value < b.Value:
		return 1
	}
	return slices.Compare(a.Hold, b.Hold)
}
