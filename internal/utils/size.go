package utils

import "math"

// BlockSize returns headSize + itemSize*count, or ok = false if any operand is
// negative or the result would overflow int.
func BlockSize(headSize, itemSize, count int) (size int, ok bool) {
	if headSize < 0 || itemSize < 0 || count < 0 {
		return 0, false
	}

	if itemSize != 0 && count > math.MaxInt/itemSize {
		return 0, false
	}

	size = itemSize * count

	if size > math.MaxInt-headSize {
		return 0, false
	}

	return headSize + size, true
}
