package dynarr

import (
	"unsafe"

	"github.com/webbmaffian/go-dynarr/internal/utils"
)

func newHeader[T any]() *header {
	var item T

	h := new(header)
	h.headSize = int(unsafe.Sizeof(*h))
	h.itemSize = int(unsafe.Sizeof(item))
	h.capacity = 1

	return h
}

// header sits at the start of the block, immediately before slot 0.
type header struct {
	headSize int
	itemSize int
	capacity int
	offset   int
	length   int
}

func (h header) blockSize(capacity int) (int, bool) {
	return utils.BlockSize(h.headSize, h.itemSize, capacity)
}

// byteIdx returns the position of buffer slot idx within the block.
func (h header) byteIdx(idx int) int {
	return h.headSize + idx*h.itemSize
}
