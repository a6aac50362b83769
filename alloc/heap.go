package alloc

import "github.com/cockroachdb/errors"

// Heap allocates blocks as ordinary Go byte slices. Free is a no-op; the
// garbage collector reclaims blocks once nothing references them.
type Heap struct{}

var _ Allocator = Heap{}

func (Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrSize, "heap alloc of %d bytes", size)
	}

	return make([]byte, size), nil
}

func (h Heap) Realloc(block []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrSize, "heap realloc to %d bytes", size)
	}

	if size == len(block) {
		return block, nil
	}

	b, err := h.Alloc(size)

	if err != nil {
		return nil, err
	}

	copy(b, block)
	return b, nil
}

func (Heap) Free([]byte) error {
	return nil
}
