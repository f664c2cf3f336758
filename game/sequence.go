package game

import "fmt"

// Faces returns the face values of a die with numDieSides sides: 1..numDieSides.
func Faces(numDieSides int) ([]int, error) {
	if numDieSides < 1 {
		return nil, fmt.Errorf("faces of a %d-sided die: %w", numDieSides, ErrInvalidDieSides)
	}
	faces := make([]int, numDieSides)
	for i := range faces {
		faces[i] = i + 1
	}
	return faces, nil
}

// Sequences enumerates every ordered sequence of the given length drawn with
// repetition from faces, len(faces)^length sequences in total. A length of 0
// yields exactly one empty sequence.
func Sequences(faces []int, length int) ([][]int, error) {
	if length < 0 {
		return nil, fmt.Errorf("sequences of length %d: %w", length, ErrInvalidFreeDiceCount)
	}
	if len(faces) == 0 && length > 0 {
		return nil, fmt.Errorf("sequences of length %d: %w", length, ErrNoFaces)
	}

	sequences := [][]int{{}}
	for i := 0; i < length; i++ {
		// Grow every partial sequence by one position
		next := make([][]int, 0, len(sequences)*len(faces))
		for _, partial := range sequences {
			for _, face := range faces {
				sequence := make([]int, len(partial)+1)
				copy(sequence, partial)
				sequence[len(partial)] = face
				next = append(next, sequence)
			}
		}
		sequences = next
	}
	return sequences, nil
}
