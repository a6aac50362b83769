package dynarr

import "golang.org/x/exp/slices"

// SortInsertion sorts the elements ascending by cmp with a stable insertion
// sort. Quadratic; meant for short or nearly sorted arrays.
func (arr *Array[T]) SortInsertion(cmp func(a, b T) int) {
	items := arr.Items()

	for j := 1; j < len(items); j++ {
		for i := j; i > 0 && cmp(items[i-1], items[i]) > 0; i-- {
			items[i-1], items[i] = items[i], items[i-1]
		}
	}
}

// Sort sorts the elements ascending by cmp. Equal elements may be reordered.
func (arr *Array[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(arr.Items(), cmp)
}
