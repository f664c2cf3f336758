package game

import "yahtzee/meta"

// NewStandardRules returns the rules of a classic game: five six-sided dice.
func NewStandardRules() Rules {
	return Rules{
		NumDieSides: meta.NUM_DIE_SIDES,
		HandSize:    meta.HAND_SIZE,
	}
}
