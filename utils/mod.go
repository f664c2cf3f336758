package utils

import "github.com/samber/lo"

// Powerset returns all 2^len(items) sub-slices of items. Items are treated as
// distinguishable by position, so repeated values yield repeated subsets.
// Every subset is a fresh slice.
func Powerset[T any](items []T) [][]T {
	return lo.Reduce(items, func(result [][]T, item T, _ int) [][]T {
		extended := make([][]T, 0, 2*len(result))
		extended = append(extended, result...)
		for _, subset := range result {
			grown := make([]T, len(subset)+1)
			copy(grown, subset)
			grown[len(subset)] = item
			extended = append(extended, grown)
		}
		return extended
	}, [][]T{{}})
}
