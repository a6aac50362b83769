package dynarr

// Metrics returns a snapshot of the array's layout.
func (arr *Array[T]) Metrics() Metrics {
	arr.mustBeLive()

	h := arr.head
	m := Metrics{
		Len:        h.length,
		Cap:        h.capacity,
		Offset:     h.offset,
		ItemSize:   h.itemSize,
		BlockBytes: len(arr.data),
	}

	if h.capacity > 0 {
		m.Utilization = float64(h.length) / float64(h.capacity)
	}

	return m
}

// Metrics describes how an array's block is used.
type Metrics struct {
	Len         int     // Elements
	Cap         int     // Element slots
	Offset      int     // Slot of element 0
	ItemSize    int     // Bytes per element
	BlockBytes  int     // Header plus slots, in bytes
	Utilization float64 // Len / Cap (0.0-1.0)
}
