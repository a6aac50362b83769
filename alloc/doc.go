// Package alloc provides the allocation primitives behind a dynarr.Array.
//
// An Allocator hands out zeroed byte blocks, resizes them, and releases them.
// The array keeps its header and all of its elements in one such block, so an
// allocator fully controls where (and whether) a container's memory comes from.
//
// # Implementations
//
//   - Heap: Go heap slices. The default.
//   - Mmap: anonymous memory mappings outside the Go heap.
//   - Budget: wraps another allocator and refuses to exceed a byte limit.
//   - Counter: wraps another allocator and records call statistics.
//
// Wrappers compose:
//
//	a := alloc.NewCounter(alloc.NewBudget(alloc.Mmap{}, 64<<20))
//	arr, err := dynarr.New[int64](dynarr.WithAllocator(a))
//
// # Contract
//
// Realloc must leave the passed block untouched and valid when it fails, so
// that callers can keep using it. Blocks must be released with the allocator
// that produced them. None of the implementations are safe for concurrent use
// unless noted.
package alloc
