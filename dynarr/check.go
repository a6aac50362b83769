package dynarr

import "github.com/cockroachdb/errors"

func (arr *Array[T]) mustBeLive() {
	if checked && arr.head == nil {
		panic(errors.AssertionFailedf("dynarr: use of freed array"))
	}
}

func (arr *Array[T]) mustBeValid(i int) {
	if !checked {
		return
	}

	arr.mustBeLive()

	if i < 0 || i >= arr.head.length {
		panic(errors.AssertionFailedf("dynarr: index %d out of range [0:%d]", i, arr.head.length))
	}
}

func (arr *Array[T]) mustNotBeEmpty(op string) {
	if !checked {
		return
	}

	arr.mustBeLive()

	if arr.head.length == 0 {
		panic(errors.AssertionFailedf("dynarr: %s on empty array", errors.Safe(op)))
	}
}
