package dynarr

import "github.com/webbmaffian/go-dynarr/internal/utils"

// Get returns a pointer to element i, valid until the next call that may
// reallocate or compact.
func (arr *Array[T]) Get(i int) *T {
	arr.mustBeValid(i)
	return arr.slotPtr(arr.head.offset + i)
}

// At returns a copy of element i.
func (arr *Array[T]) At(i int) T {
	return *arr.Get(i)
}

// Set overwrites element i.
func (arr *Array[T]) Set(i int, val T) {
	*arr.Get(i) = val
}

// First returns a pointer to element 0.
func (arr *Array[T]) First() *T {
	arr.mustNotBeEmpty("first")
	return arr.slotPtr(arr.head.offset)
}

// Last returns a pointer to the final element.
func (arr *Array[T]) Last() *T {
	arr.mustNotBeEmpty("last")
	return arr.slotPtr(arr.head.offset + arr.head.length - 1)
}

// Items returns the elements as a slice aliasing the block. It is invalidated
// like the pointer returned by Get, and must not be appended to.
func (arr *Array[T]) Items() []T {
	arr.mustBeLive()

	h := arr.head
	return utils.BytesToSlice[T](arr.data[h.byteIdx(h.offset):h.byteIdx(h.offset+h.length)], h.length)
}

func (arr *Array[T]) slot(idx int) []byte {
	h := arr.head
	return arr.data[h.byteIdx(idx):h.byteIdx(idx+1)]
}

func (arr *Array[T]) slotPtr(idx int) *T {
	return utils.BytesToPointer[T](arr.slot(idx))
}
