package searcher

import (
	"yahtzee/game"
	"yahtzee/utils"

	"github.com/samber/lo"
)

// Holds lists every subset of hand that can be kept, 2^len(hand) in total.
// Dice are distinguished by position, so equal faces produce repeated holds.
func Holds(hand game.Hand) []game.Hand {
	return lo.Map(utils.Powerset([]int(hand)), func(subset []int, _ int) game.Hand {
		return game.Hand(subset)
	})
}
