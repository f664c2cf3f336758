package game

// Score computes the best upper-section score of a hand: the maximum of
// count*value over the maximal runs of equal values. The hand must already be
// sorted in non-decreasing order. An empty hand scores 0.
func Score(hand []int) int {
	best := 0
	for i := 0; i < len(hand); {
		j := i
		for j < len(hand) && hand[j] == hand[i] {
			j++
		}
		if total := (j - i) * hand[i]; total > best {
			best = total
		}
		i = j
	}
	return best
}
