package dynarr

import (
	"bytes"

	"github.com/webbmaffian/go-dynarr/internal/utils"
	"golang.org/x/exp/slices"
)

// FindLinear returns the index of the first element whose bytes equal those
// of key, or NotFound. Values that differ only in struct padding may not
// match.
func (arr *Array[T]) FindLinear(key T) int {
	arr.mustBeLive()

	h := arr.head
	k := utils.PointerToBytes(&key, h.itemSize)

	for i := 0; i < h.length; i++ {
		if bytes.Equal(k, arr.slot(h.offset+i)) {
			return i
		}
	}

	return NotFound
}

// FindBinary returns the index of an element equal to key under cmp, or
// NotFound. The array must already be sorted ascending by cmp; otherwise the
// result is meaningless. Among equal elements any one may be returned.
func (arr *Array[T]) FindBinary(key T, cmp func(a, b T) int) int {
	if i, found := slices.BinarySearchFunc(arr.Items(), key, cmp); found {
		return i
	}

	return NotFound
}
