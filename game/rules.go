package game

import "fmt"

type Rules struct {
	NumDieSides int
	HandSize    int
}

func (r Rules) Validate() error {
	if r.NumDieSides < 1 {
		return fmt.Errorf("rules with %d die sides: %w", r.NumDieSides, ErrInvalidDieSides)
	}
	if r.HandSize < 0 {
		return fmt.Errorf("rules with %d dice: %w", r.HandSize, ErrInvalidHandSize)
	}
	return nil
}

// ValidateHand checks that every face of hand can be rolled with these rules.
// The hand size is not enforced so that partial hands (holds) validate too.
func (r Rules) ValidateHand(hand Hand) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for i, face := range hand {
		if face < 1 || face > r.NumDieSides {
			return fmt.Errorf("die %d shows %d on a %d-sided die: %w", i, face, r.NumDieSides, ErrInvalidFace)
		}
	}
	return nil
}

// Roll rolls a fresh hand of HandSize dice.
func (r Rules) Roll(rng Intn) Hand {
	return RollDice(rng, r.HandSize, r.NumDieSides)
}

// RollDice rolls num independent dice with numDieSides sides each.
func RollDice(rng Intn, num int, numDieSides int) Hand {
	if numDieSides < 1 {
		panic("cannot roll a die with no sides")
	}
	rolls := make(Hand, num)
	for i := range rolls {
		rolls[i] = rng.Intn(numDieSides) + 1
	}
	return rolls
}
