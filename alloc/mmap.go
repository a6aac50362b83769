package alloc

import (
	"github.com/cockroachdb/errors"
	"github.com/edsrzf/mmap-go"
)

// Mmap allocates every block as its own anonymous, private memory mapping.
// Blocks live outside the Go heap and are returned to the OS on Free.
// Growing or shrinking a block maps a new region and copies into it.
type Mmap struct{}

var _ Allocator = Mmap{}

func (Mmap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrSize, "mmap alloc of %d bytes", size)
	}

	m, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)

	if err != nil {
		return nil, errors.Wrapf(err, "alloc: map %d bytes", size)
	}

	return m, nil
}

func (a Mmap) Realloc(block []byte, size int) (b []byte, err error) {
	if size == len(block) && size > 0 {
		return block, nil
	}

	if b, err = a.Alloc(size); err != nil {
		return nil, err
	}

	copy(b, block)

	if block == nil {
		return
	}

	if err = a.Free(block); err != nil {
		// The old mapping is still in place, so hand it back as-is.
		_ = a.Free(b)
		return nil, err
	}

	return
}

func (Mmap) Free(block []byte) error {
	if block == nil {
		return nil
	}

	m := mmap.MMap(block)

	if err := m.Unmap(); err != nil {
		return errors.Wrapf(err, "alloc: unmap %d bytes", len(block))
	}

	return nil
}
