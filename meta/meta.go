// meta/meta.go
package meta

// NUM_DIE_SIDES defines the number of sides of each die.
const NUM_DIE_SIDES = 6

// HAND_SIZE defines the number of dice in play.
const HAND_SIZE = 5

// EXAMPLE_HAND is the hand evaluated when none is given.
var EXAMPLE_HAND = []int{3, 3, 1, 2, 5}

// MAX_HAND_SIZE bounds the dice a configured search may evaluate.
const MAX_HAND_SIZE = 10
