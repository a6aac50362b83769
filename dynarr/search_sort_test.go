package dynarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Key int32
	Seq int32
}

func byKey(a, b record) int {
	return ascending(a.Key, b.Key)
}

func TestFindLinear(t *testing.T) {
	arr := newTestArray[record](t)
	pushAll(t, arr,
		record{Key: 1, Seq: 0},
		record{Key: 2, Seq: 1},
		record{Key: 1, Seq: 2},
		record{Key: 2, Seq: 1},
	)

	assert.Equal(t, 1, arr.FindLinear(record{Key: 2, Seq: 1}), "first match wins")
	assert.Equal(t, 2, arr.FindLinear(record{Key: 1, Seq: 2}))
	assert.Equal(t, NotFound, arr.FindLinear(record{Key: 1, Seq: 1}), "all bytes must match")

	arr.Dequeue()
	assert.Equal(t, 0, arr.FindLinear(record{Key: 2, Seq: 1}), "index is logical, not slot")
}

func TestFindLinearEmpty(t *testing.T) {
	arr := newTestArray[int64](t)
	assert.Equal(t, NotFound, arr.FindLinear(0))
}

func TestFindBinary(t *testing.T) {
	arr := newTestArray[int64](t)
	pushAll(t, arr, 0, 2, 4, 6, 8, 10, 12)

	for i, v := range arr.Items() {
		assert.Equal(t, i, arr.FindBinary(v, ascending[int64]))
	}

	for _, v := range []int64{-1, 1, 5, 11, 13} {
		assert.Equal(t, NotFound, arr.FindBinary(v, ascending[int64]))
	}

	arr.Dequeue()
	assert.Equal(t, 0, arr.FindBinary(2, ascending[int64]))
	assert.Equal(t, 5, arr.FindBinary(12, ascending[int64]))
}

func TestFindBinaryDuplicates(t *testing.T) {
	arr := newTestArray[int64](t)
	pushAll(t, arr, 1, 3, 3, 3, 5)

	i := arr.FindBinary(3, ascending[int64])
	assert.Contains(t, []int{1, 2, 3}, i)
	assert.Equal(t, NotFound, newTestArray[int64](t).FindBinary(3, ascending[int64]))
}

func TestSort(t *testing.T) {
	arr := newTestArray[int64](t)
	pushAll(t, arr, 9, -4, 7, 0, 7, 3, 12, -4, 1)
	arr.Dequeue()

	arr.Sort(ascending[int64])
	assert.Equal(t, []int64{-4, -4, 0, 1, 3, 7, 7, 12}, arr.Items())
}

func TestSortInsertionIsStable(t *testing.T) {
	arr := newTestArray[record](t)
	pushAll(t, arr,
		record{Key: 3, Seq: 0},
		record{Key: 1, Seq: 1},
		record{Key: 3, Seq: 2},
		record{Key: 2, Seq: 3},
		record{Key: 1, Seq: 4},
		record{Key: 3, Seq: 5},
	)

	arr.SortInsertion(byKey)
	assert.Equal(t, []record{
		{Key: 1, Seq: 1},
		{Key: 1, Seq: 4},
		{Key: 2, Seq: 3},
		{Key: 3, Seq: 0},
		{Key: 3, Seq: 2},
		{Key: 3, Seq: 5},
	}, arr.Items())
}

func TestSortEmptyAndSingle(t *testing.T) {
	arr := newTestArray[int64](t)
	arr.Sort(ascending[int64])
	arr.SortInsertion(ascending[int64])

	pushAll(t, arr, 1)
	arr.Sort(ascending[int64])
	arr.SortInsertion(ascending[int64])
	assert.Equal(t, []int64{1}, arr.Items())
}
