// Package container provides stack, queue, deque and sorted list types backed
// by a single dynarr.Array each.
//
// The element type carries the same restriction as dynarr: it must be
// pointer-free. None of the types are safe for concurrent use, and each must
// be released with Free.
package container
