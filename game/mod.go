package game

import "golang.org/x/exp/slices"

// Hand is a multiset of die face values. Order only matters for display;
// scoring always works on a sorted copy.
type Hand []int

// Sorted returns a sorted copy of the hand, leaving h untouched.
func (h Hand) Sorted() Hand {
	sorted := slices.Clone(h)
	if sorted == nil {
		sorted = Hand{}
	}
	slices.Sort(sorted)
	return sorted
}

// Intn is the source of randomness used to roll dice.
type Intn interface {
	Intn(n int) int
}
