package alloc

// Allocator is the allocate/reallocate/release triple used by containers.
type Allocator interface {
	// Alloc returns a zeroed block of exactly size bytes.
	Alloc(size int) ([]byte, error)

	// Realloc returns a block of size bytes holding the first
	// min(len(block), size) bytes of block, zeroed beyond that. On error,
	// block is left valid and unchanged.
	Realloc(block []byte, size int) ([]byte, error)

	// Free releases a block obtained from Alloc or Realloc.
	Free(block []byte) error
}

// Default is used by containers that are not given an allocator explicitly.
// Set it once at program start, before any container is created.
var Default Allocator = Heap{}
