package dynarr

import (
	"cmp"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/webbmaffian/go-dynarr/alloc"
)

func newTestArray[T any](tb testing.TB, opts ...Option) *Array[T] {
	tb.Helper()

	arr, err := New[T](opts...)
	require.NoError(tb, err)

	tb.Cleanup(func() {
		if arr.head != nil {
			require.NoError(tb, arr.Free())
		}
	})

	return arr
}

func pushAll[T any](tb testing.TB, arr *Array[T], vals ...T) {
	tb.Helper()

	for _, v := range vals {
		_, err := arr.Push(v)
		require.NoError(tb, err)
	}
}

// snapshot copies everything observable about an array.
type snapshot[T any] struct {
	Len, Cap, Offset int
	Items            []T
}

func snap[T any](arr *Array[T]) snapshot[T] {
	return snapshot[T]{
		Len:    arr.Len(),
		Cap:    arr.Cap(),
		Offset: arr.Offset(),
		Items:  append([]T(nil), arr.Items()...),
	}
}

// checkInvariants asserts the header invariants and that the block matches
// the capacity.
func checkInvariants[T any](tb testing.TB, arr *Array[T]) {
	tb.Helper()

	h := arr.head
	require.GreaterOrEqual(tb, h.offset, 0)
	require.GreaterOrEqual(tb, h.length, 0)
	require.LessOrEqual(tb, h.offset+h.length, h.capacity)
	require.Equal(tb, h.headSize+h.capacity*h.itemSize, len(arr.data))
}

var errInjected = errors.New("injected allocation failure")

// failingAllocator passes through to the heap until fail is set.
type failingAllocator struct {
	alloc.Heap
	fail bool
}

func (f *failingAllocator) Alloc(size int) ([]byte, error) {
	if f.fail {
		return nil, errInjected
	}

	return f.Heap.Alloc(size)
}

func (f *failingAllocator) Realloc(block []byte, size int) ([]byte, error) {
	if f.fail {
		return nil, errInjected
	}

	return f.Heap.Realloc(block, size)
}

func ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// offsetArray returns an array laid out as capacity 8, offset 3, [3 4 5 6].
func offsetArray(tb testing.TB, opts ...Option) *Array[int64] {
	tb.Helper()

	arr := newTestArray[int64](tb, opts...)
	pushAll(tb, arr, 0, 1, 2, 3, 4, 5, 6, 7)

	for i := 0; i < 3; i++ {
		arr.Dequeue()
	}

	arr.Pop()

	require.Equal(tb, snapshot[int64]{Len: 4, Cap: 8, Offset: 3, Items: []int64{3, 4, 5, 6}}, snap(arr))
	return arr
}
