package dynarr

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/webbmaffian/go-dynarr/alloc"
	"github.com/webbmaffian/go-dynarr/internal/utils"
)

// New creates an empty array with room for one element. The block comes from
// alloc.Default unless WithAllocator is given.
// The provided type (`T`) MUST NOT contain any pointer nor slice.
func New[T any](opts ...Option) (arr *Array[T], err error) {
	head := newHeader[T]()

	if head.itemSize <= 0 {
		return nil, ErrItemSize
	}

	if !utils.PointerFree[T]() {
		var item T
		return nil, errors.Wrapf(ErrPointerItem, "%T", item)
	}

	cfg := config{
		alloc: alloc.Default,
		log:   discard,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	size, ok := head.blockSize(head.capacity)

	if !ok {
		return nil, errors.Wrapf(ErrAlloc, "block for %d items of %d bytes", head.capacity, head.itemSize)
	}

	data, err := cfg.alloc.Alloc(size)

	if err != nil {
		cfg.log.Warn("dynarr: create failed", slog.Int("bytes", size), slog.Any("error", err))
		return nil, errors.Mark(errors.Wrapf(err, "dynarr: create"), ErrAlloc)
	}

	if copy(data[:head.headSize], utils.PointerToBytes(head, head.headSize)) != head.headSize {
		_ = cfg.alloc.Free(data)
		return nil, errors.New("dynarr: failed to write header")
	}

	arr = &Array[T]{
		data:  data,
		head:  utils.BytesToPointer[header](data),
		alloc: cfg.alloc,
		log:   cfg.log,
	}

	return
}

// Array is a growable sequence of T stored in a single allocator block:
// a header followed by capacity element slots, the first of which in use is
// slot Offset().
//
// An Array is not safe for concurrent use. Pointers and views obtained from
// it are invalidated by any call that may reallocate or compact.
type Array[T any] struct {
	data  []byte
	head  *header
	alloc alloc.Allocator
	log   *slog.Logger
}

// Free releases the block. The array must not be used afterwards.
func (arr *Array[T]) Free() (err error) {
	arr.mustBeLive()

	err = arr.alloc.Free(arr.data)
	arr.data, arr.head = nil, nil

	if err != nil {
		return errors.Wrap(err, "dynarr: free")
	}

	return
}

// Len returns the number of elements.
func (arr *Array[T]) Len() int {
	arr.mustBeLive()
	return arr.head.length
}

// Cap returns the number of element slots in the block.
func (arr *Array[T]) Cap() int {
	arr.mustBeLive()
	return arr.head.capacity
}

// Offset returns the slot holding element 0.
func (arr *Array[T]) Offset() int {
	arr.mustBeLive()
	return arr.head.offset
}

func (arr *Array[T]) ItemSize() int {
	arr.mustBeLive()
	return arr.head.itemSize
}

// Valid reports whether i is the index of an element.
func (arr *Array[T]) Valid(i int) bool {
	arr.mustBeLive()
	return i >= 0 && i < arr.head.length
}

// Resize sets the number of elements to n, truncating or appending zero
// values. The capacity grows to exactly n if needed; it never shrinks.
// A negative n is treated as 0. On failure it returns NotFound and the array
// is unchanged.
func (arr *Array[T]) Resize(n int) (int, error) {
	arr.mustBeLive()

	if n < 0 {
		n = 0
	}

	h := arr.head

	if n < h.length {
		h.length = n

		if n == 0 {
			h.offset = 0
		}

		return n, nil
	}

	if n == h.length {
		return n, nil
	}

	if n > h.capacity-h.offset {
		prevOffset := h.offset
		arr.compact()

		if n > h.capacity {
			if err := arr.realloc(n, "resize"); err != nil {
				arr.uncompact(prevOffset)
				return NotFound, err
			}

			h = arr.head
		}
	}

	clear(arr.data[h.byteIdx(h.offset+h.length):h.byteIdx(h.offset+n)])
	h.length = n

	return n, nil
}

// AdjustCapacity moves the elements to the start of the block and resizes the
// block to hold c elements, or Len() elements if c is smaller. It returns
// the resulting capacity. On failure it returns NotFound and the array is
// unchanged.
func (arr *Array[T]) AdjustCapacity(c int) (int, error) {
	arr.mustBeLive()

	h := arr.head

	if c < h.length {
		c = h.length
	}

	prevOffset := h.offset
	arr.compact()

	if c != h.capacity {
		if err := arr.realloc(c, "adjust capacity"); err != nil {
			arr.uncompact(prevOffset)
			return NotFound, err
		}
	}

	return arr.head.capacity, nil
}

// grow makes room for one more element at the tail. A full block whose
// leading free slots can take all of the elements is compacted in place;
// otherwise its capacity is doubled.
func (arr *Array[T]) grow() error {
	h := arr.head

	if h.offset+h.length < h.capacity {
		return nil
	}

	if h.offset > 0 && h.offset >= h.length {
		arr.compact()
		return nil
	}

	c := h.capacity * 2

	if c < 1 {
		c = 1
	}

	return arr.realloc(c, "grow")
}

// realloc resizes the block to capacity slots. The header is copied along
// with the elements, so it is looked up again afterwards.
func (arr *Array[T]) realloc(capacity int, op string) error {
	h := arr.head
	size, ok := h.blockSize(capacity)

	if !ok {
		err := errors.Wrapf(ErrAlloc, "%s: block for %d items of %d bytes overflows", op, capacity, h.itemSize)
		arr.log.Warn("dynarr: realloc failed", arr.attrs(op, slog.Int("want", capacity), slog.Any("error", err))...)
		return err
	}

	data, err := arr.alloc.Realloc(arr.data, size)

	if err != nil {
		arr.log.Warn("dynarr: realloc failed", arr.attrs(op, slog.Int("want", capacity), slog.Int("bytes", size), slog.Any("error", err))...)
		return errors.Mark(errors.Wrapf(err, "dynarr: %s to %d items", op, capacity), ErrAlloc)
	}

	arr.data = data
	arr.head = utils.BytesToPointer[header](data)
	arr.head.capacity = capacity

	arr.log.Debug("dynarr: realloc", arr.attrs(op, slog.Int("bytes", size))...)
	return nil
}

// compact moves the elements down to slot 0.
func (arr *Array[T]) compact() {
	h := arr.head

	if h.offset == 0 {
		return
	}

	arr.move(0, h.offset, h.length)
	arr.log.Debug("dynarr: compact", arr.attrs("compact", slog.Int("from", h.offset))...)
	h.offset = 0
}

// uncompact reverts a compact done by an operation that then failed.
func (arr *Array[T]) uncompact(offset int) {
	h := arr.head

	if offset == h.offset {
		return
	}

	arr.move(offset, 0, h.length)
	h.offset = offset
}

// move copies n slots starting at src to dst. The ranges may overlap.
func (arr *Array[T]) move(dst, src, n int) {
	if n <= 0 || dst == src {
		return
	}

	h := arr.head
	copy(arr.data[h.byteIdx(dst):h.byteIdx(dst+n)], arr.data[h.byteIdx(src):h.byteIdx(src+n)])
}

func (arr *Array[T]) attrs(op string, extra ...any) []any {
	h := arr.head

	return append([]any{
		slog.String("op", op),
		slog.Int("len", h.length),
		slog.Int("cap", h.capacity),
		slog.Int("offset", h.offset),
	}, extra...)
}
