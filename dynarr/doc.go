// Package dynarr implements a growable array of fixed-size values that can be
// used as a stack, a queue, a deque, a sorted list, or all of these at once.
//
// # Overview
//
// An Array keeps a small header and all of its element slots in one block
// obtained from an alloc.Allocator. The header records the element size, the
// number of slots (capacity), the slot holding the first element (offset),
// and the number of elements (length). Element i lives in slot offset+i.
//
//	arr, err := dynarr.New[int64]()
//	if err != nil {
//		return err
//	}
//	defer arr.Free()
//
//	arr.Push(5)
//	arr.Push(3)
//	arr.Sort(cmp.Compare[int64])                // [3 5]
//	i := arr.FindBinary(5, cmp.Compare[int64])  // 1
//	first := arr.Dequeue()                      // 3, leaving [5]
//
// # Memory
//
// Appending to a full block doubles its capacity, unless at least half of the
// block is free slots in front of the first element, in which case the
// elements are moved to the front instead. A queue that dequeues as fast as it
// enqueues therefore settles into a fixed block. Resize and AdjustCapacity
// size the block exactly. Nothing shrinks the block implicitly.
//
// Any call that can move elements (Push, Insert, Shove, Resize,
// AdjustCapacity) invalidates pointers from Get, First, Last and Items.
//
// Because the block is untyped memory, T must be pointer-free: numbers,
// booleans, and arrays or structs of those. New refuses other types.
//
// # Errors
//
// Allocation failures are returned as errors marked with ErrAlloc, and the
// array is left exactly as it was before the call. Methods that return an
// index return NotFound alongside the error.
//
// Using an index outside [0, Len()), popping or dequeuing an empty array, and
// using a freed array are programming errors. By default they panic with an
// assertion failure. Building with the dynarr_unchecked tag removes these
// checks; such misuse then reads or writes stale slots, or hits Go's own
// bounds checks on the block. Binary search on an unsorted array is never
// detected.
//
// # Thread Safety
//
// An Array is not safe for concurrent use.
package dynarr
