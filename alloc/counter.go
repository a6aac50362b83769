package alloc

// Counter records how often the wrapped allocator is called and how many
// bytes it currently has outstanding.
type Counter struct {
	next  Allocator
	stats Stats
}

// Stats is a snapshot of a Counter.
type Stats struct {
	Allocs    uint64 // Successful Alloc calls
	Reallocs  uint64 // Successful Realloc calls
	Frees     uint64 // Successful Free calls
	Failures  uint64 // Calls of any kind that returned an error
	LiveBytes int    // Bytes allocated and not yet freed
	PeakBytes int    // Highest LiveBytes seen
}

var _ Allocator = (*Counter)(nil)

// NewCounter wraps next. A nil next uses Default.
func NewCounter(next Allocator) *Counter {
	if next == nil {
		next = Default
	}

	return &Counter{next: next}
}

func (c *Counter) Alloc(size int) (block []byte, err error) {
	if block, err = c.next.Alloc(size); err != nil {
		c.stats.Failures++
		return
	}

	c.stats.Allocs++
	c.track(len(block))
	return
}

func (c *Counter) Realloc(block []byte, size int) (newBlock []byte, err error) {
	if newBlock, err = c.next.Realloc(block, size); err != nil {
		c.stats.Failures++
		return
	}

	c.stats.Reallocs++
	c.track(len(newBlock) - len(block))
	return
}

func (c *Counter) Free(block []byte) (err error) {
	if err = c.next.Free(block); err != nil {
		c.stats.Failures++
		return
	}

	c.stats.Frees++
	c.track(-len(block))
	return
}

func (c *Counter) track(delta int) {
	c.stats.LiveBytes += delta

	if c.stats.LiveBytes > c.stats.PeakBytes {
		c.stats.PeakBytes = c.stats.LiveBytes
	}
}

// Stats returns the current counters.
func (c *Counter) Stats() Stats {
	return c.stats
}

// Reset zeroes all counters except LiveBytes.
func (c *Counter) Reset() {
	c.stats = Stats{
		LiveBytes: c.stats.LiveBytes,
		PeakBytes: c.stats.LiveBytes,
	}
}
