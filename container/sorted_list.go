package container

import (
	"github.com/webbmaffian/go-dynarr/dynarr"
	"golang.org/x/exp/slices"
)

// SortedList keeps its values ordered ascending by a comparison function.
// Lookups are O(log n); Add and Delete shift elements and are O(n).
type SortedList[T any] struct {
	arr *dynarr.Array[T]
	cmp func(a, b T) int
}

func NewSortedList[T any](cmp func(a, b T) int, opts ...dynarr.Option) (*SortedList[T], error) {
	arr, err := dynarr.New[T](opts...)

	if err != nil {
		return nil, err
	}

	return &SortedList[T]{arr: arr, cmp: cmp}, nil
}

// Add inserts val before any equal values already in the list and returns its
// index. On allocation failure it returns dynarr.NotFound and the list is
// unchanged.
func (l *SortedList[T]) Add(val T) (int, error) {
	i, _ := slices.BinarySearchFunc(l.arr.Items(), val, l.cmp)

	if i == l.arr.Len() {
		return l.arr.Push(val)
	}

	return l.arr.Insert(i, val)
}

// Index returns the index of a value equal to val, or dynarr.NotFound.
func (l *SortedList[T]) Index(val T) int {
	return l.arr.FindBinary(val, l.cmp)
}

func (l *SortedList[T]) Contains(val T) bool {
	return l.Index(val) != dynarr.NotFound
}

// Delete removes one value equal to val and reports whether there was one.
func (l *SortedList[T]) Delete(val T) bool {
	i := l.Index(val)

	if i == dynarr.NotFound {
		return false
	}

	l.arr.Remove(i)
	return true
}

// At returns the value at index i, which must be in range.
func (l *SortedList[T]) At(i int) T {
	return l.arr.At(i)
}

func (l *SortedList[T]) Min() (val T, ok bool) {
	if l.arr.Len() == 0 {
		return
	}

	return *l.arr.First(), true
}

func (l *SortedList[T]) Max() (val T, ok bool) {
	if l.arr.Len() == 0 {
		return
	}

	return *l.arr.Last(), true
}

// Items returns the values in order. The slice aliases the list and is
// invalidated by the next Add.
func (l *SortedList[T]) Items() []T {
	return l.arr.Items()
}

func (l *SortedList[T]) Len() int {
	return l.arr.Len()
}

func (l *SortedList[T]) Free() error {
	return l.arr.Free()
}
