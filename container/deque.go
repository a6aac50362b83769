package container

import "github.com/webbmaffian/go-dynarr/dynarr"

// Deque is a double-ended queue. Removal at either end and PushBack are O(1);
// PushFront shifts every element and is O(n).
type Deque[T any] struct {
	arr *dynarr.Array[T]
}

func NewDeque[T any](opts ...dynarr.Option) (*Deque[T], error) {
	arr, err := dynarr.New[T](opts...)

	if err != nil {
		return nil, err
	}

	return &Deque[T]{arr: arr}, nil
}

func (d *Deque[T]) PushBack(val T) (err error) {
	_, err = d.arr.Push(val)
	return
}

func (d *Deque[T]) PushFront(val T) (err error) {
	if d.arr.Len() == 0 {
		_, err = d.arr.Push(val)
	} else {
		_, err = d.arr.Insert(0, val)
	}

	return
}

func (d *Deque[T]) PopBack() (val T, ok bool) {
	if d.arr.Len() == 0 {
		return
	}

	return d.arr.Pop(), true
}

func (d *Deque[T]) PopFront() (val T, ok bool) {
	if d.arr.Len() == 0 {
		return
	}

	return d.arr.Dequeue(), true
}

func (d *Deque[T]) Front() (val T, ok bool) {
	if d.arr.Len() == 0 {
		return
	}

	return *d.arr.First(), true
}

func (d *Deque[T]) Back() (val T, ok bool) {
	if d.arr.Len() == 0 {
		return
	}

	return *d.arr.Last(), true
}

func (d *Deque[T]) Len() int {
	return d.arr.Len()
}

func (d *Deque[T]) Empty() bool {
	return d.arr.Len() == 0
}

func (d *Deque[T]) Free() error {
	return d.arr.Free()
}
