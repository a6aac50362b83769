package dynarr

// Push appends val and returns its index. On allocation failure it returns
// NotFound and the array is unchanged.
func (arr *Array[T]) Push(val T) (pos int, err error) {
	arr.mustBeLive()

	if err = arr.grow(); err != nil {
		return NotFound, err
	}

	h := arr.head
	pos = h.length
	*arr.slotPtr(h.offset + pos) = val
	h.length++
	return
}

// Pop removes and returns the last element.
func (arr *Array[T]) Pop() (val T) {
	arr.mustNotBeEmpty("pop")

	h := arr.head
	h.length--
	val = *arr.slotPtr(h.offset + h.length)
	arr.resetIfEmpty()
	return
}

// Dequeue removes and returns the first element in O(1). The freed slot is
// reclaimed by a later append or capacity change.
func (arr *Array[T]) Dequeue() (val T) {
	arr.mustNotBeEmpty("dequeue")

	h := arr.head
	val = *arr.slotPtr(h.offset)
	h.offset++
	h.length--
	arr.resetIfEmpty()
	return
}

// Insert places val at index i, shifting elements i and after one step
// towards the tail. i must be the index of an existing element; use Push to
// add at the tail. On allocation failure it returns NotFound and the array is
// unchanged.
func (arr *Array[T]) Insert(i int, val T) (int, error) {
	arr.mustBeValid(i)

	if err := arr.grow(); err != nil {
		return NotFound, err
	}

	h := arr.head
	arr.move(h.offset+i+1, h.offset+i, h.length-i)
	*arr.slotPtr(h.offset + i) = val
	h.length++

	return i, nil
}

// Shove places val at index i in O(1) by moving the element that was there to
// the tail. The order of the other elements is otherwise kept.
func (arr *Array[T]) Shove(i int, val T) (int, error) {
	arr.mustBeValid(i)

	if _, err := arr.Push(arr.At(i)); err != nil {
		return NotFound, err
	}

	*arr.slotPtr(arr.head.offset + i) = val
	return i, nil
}

// Remove deletes element i, shifting the elements after it one step towards
// the front.
func (arr *Array[T]) Remove(i int) {
	arr.mustBeValid(i)

	h := arr.head
	arr.move(h.offset+i, h.offset+i+1, h.length-i-1)
	h.length--
	arr.resetIfEmpty()
}

// Ditch deletes element i in O(1) by moving the last element into its place.
func (arr *Array[T]) Ditch(i int) {
	arr.mustBeValid(i)

	last := arr.Pop()

	if i < arr.head.length {
		*arr.slotPtr(arr.head.offset + i) = last
	}
}

// Clear removes all elements and keeps the block.
func (arr *Array[T]) Clear() {
	arr.mustBeLive()

	arr.head.offset = 0
	arr.head.length = 0
}

func (arr *Array[T]) resetIfEmpty() {
	if arr.head.length == 0 {
		arr.head.offset = 0
	}
}
