package container

import "github.com/webbmaffian/go-dynarr/dynarr"

// Queue is a first in, first out collection. Steady enqueue/dequeue traffic
// settles into a fixed block: freed front slots are reclaimed by compaction
// instead of growth.
type Queue[T any] struct {
	arr *dynarr.Array[T]
}

func NewQueue[T any](opts ...dynarr.Option) (*Queue[T], error) {
	arr, err := dynarr.New[T](opts...)

	if err != nil {
		return nil, err
	}

	return &Queue[T]{arr: arr}, nil
}

func (q *Queue[T]) Enqueue(val T) (err error) {
	_, err = q.arr.Push(val)
	return
}

// Dequeue removes and returns the oldest value. The bool is false if the
// queue is empty.
func (q *Queue[T]) Dequeue() (val T, ok bool) {
	if q.arr.Len() == 0 {
		return
	}

	return q.arr.Dequeue(), true
}

// Peek returns the oldest value without removing it.
func (q *Queue[T]) Peek() (val T, ok bool) {
	if q.arr.Len() == 0 {
		return
	}

	return *q.arr.First(), true
}

func (q *Queue[T]) Len() int {
	return q.arr.Len()
}

func (q *Queue[T]) Empty() bool {
	return q.arr.Len() == 0
}

// Metrics exposes the layout of the underlying array.
func (q *Queue[T]) Metrics() dynarr.Metrics {
	return q.arr.Metrics()
}

func (q *Queue[T]) Free() error {
	return q.arr.Free()
}
