//go:build !dynarr_unchecked

package dynarr

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireAssertion(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.HasAssertionFailure(err))
	}()

	f()
}

func TestContractViolations(t *testing.T) {
	arr := newTestArray[int64](t)
	pushAll(t, arr, 1, 2, 3)

	requireAssertion(t, func() { arr.Get(3) })
	requireAssertion(t, func() { arr.Get(-1) })
	requireAssertion(t, func() { arr.Set(5, 0) })
	requireAssertion(t, func() { arr.Remove(3) })
	requireAssertion(t, func() { arr.Ditch(-1) })
	requireAssertion(t, func() { _, _ = arr.Shove(3, 0) })

	// Insert does not accept the tail position; Push is the only way to append.
	requireAssertion(t, func() { _, _ = arr.Insert(3, 0) })
	assert.Equal(t, []int64{1, 2, 3}, arr.Items())

	arr.Clear()
	requireAssertion(t, func() { arr.Pop() })
	requireAssertion(t, func() { arr.Dequeue() })
	requireAssertion(t, func() { arr.First() })
	requireAssertion(t, func() { arr.Last() })
	requireAssertion(t, func() { _, _ = arr.Insert(0, 1) })
}

func TestUseAfterFree(t *testing.T) {
	arr, err := New[int64]()
	require.NoError(t, err)
	require.NoError(t, arr.Free())

	requireAssertion(t, func() { arr.Len() })
	requireAssertion(t, func() { _, _ = arr.Push(1) })
	requireAssertion(t, func() { _ = arr.Free() })
}
