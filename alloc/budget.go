package alloc

import "github.com/cockroachdb/errors"

// Budget caps the number of live bytes handed out by the wrapped allocator.
// Requests that would go above the limit fail with ErrBudget and leave the
// wrapped allocator untouched.
type Budget struct {
	next  Allocator
	limit int
	used  int
}

var _ Allocator = (*Budget)(nil)

// NewBudget wraps next with a limit of limit live bytes. A nil next uses Default.
func NewBudget(next Allocator, limit int) *Budget {
	if next == nil {
		next = Default
	}

	return &Budget{
		next:  next,
		limit: limit,
	}
}

func (b *Budget) Alloc(size int) (block []byte, err error) {
	if size > b.limit-b.used {
		return nil, errors.Wrapf(ErrBudget, "alloc of %d bytes with %d of %d in use", size, b.used, b.limit)
	}

	if block, err = b.next.Alloc(size); err != nil {
		return
	}

	b.used += len(block)
	return
}

func (b *Budget) Realloc(block []byte, size int) (newBlock []byte, err error) {
	if delta := size - len(block); delta > b.limit-b.used {
		return nil, errors.Wrapf(ErrBudget, "realloc from %d to %d bytes with %d of %d in use", len(block), size, b.used, b.limit)
	}

	if newBlock, err = b.next.Realloc(block, size); err != nil {
		return
	}

	b.used += len(newBlock) - len(block)
	return
}

func (b *Budget) Free(block []byte) (err error) {
	if err = b.next.Free(block); err != nil {
		return
	}

	b.used -= len(block)
	return
}

// Used returns the number of live bytes.
func (b *Budget) Used() int {
	return b.used
}

// Limit returns the configured limit.
func (b *Budget) Limit() int {
	return b.limit
}

// SetLimit changes the limit. Lowering it below Used does not release
// anything; it only makes further growth fail.
func (b *Budget) SetLimit(limit int) {
	b.limit = limit
}
