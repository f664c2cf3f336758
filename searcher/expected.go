package searcher

import (
	"yahtzee/game"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// ExpectedValue averages the score of held combined with every possible roll
// of numFreeDice dice with numDieSides sides each. With no free dice it is the
// score of held itself.
func ExpectedValue(held game.Hand, numDieSides int, numFreeDice int) (float64, error) {
	faces, err := game.Faces(numDieSides)
	if err != nil {
		return 0, err
	}
	value, _, err := expectedValue(held, faces, numFreeDice)
	return value, err
}

// expectedValue also reports how many outcomes were scored.
func expectedValue(held game.Hand, faces []int, numFreeDice int) (float64, int, error) {
	outcomes, err := game.Sequences(faces, numFreeDice)
	if err != nil {
		return 0, 0, err
	}

	total := lo.SumBy(outcomes, func(outcome []int) int {
		hand := make([]int, 0, len(outcome)+len(held))
		hand = append(hand, outcome...)
		hand = append(hand, held...)
		slices.Sort(hand)
		return game.Score(hand)
	})
	return float64(total) / float64(len(outcomes)), len(outcomes), nil
}
