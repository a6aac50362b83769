package container

import "github.com/webbmaffian/go-dynarr/dynarr"

// Stack is a last in, first out collection.
type Stack[T any] struct {
	arr *dynarr.Array[T]
}

func NewStack[T any](opts ...dynarr.Option) (*Stack[T], error) {
	arr, err := dynarr.New[T](opts...)

	if err != nil {
		return nil, err
	}

	return &Stack[T]{arr: arr}, nil
}

func (s *Stack[T]) Push(val T) (err error) {
	_, err = s.arr.Push(val)
	return
}

// Pop removes and returns the most recently pushed value. The bool is false
// if the stack is empty.
func (s *Stack[T]) Pop() (val T, ok bool) {
	if s.arr.Len() == 0 {
		return
	}

	return s.arr.Pop(), true
}

// Peek returns the most recently pushed value without removing it.
func (s *Stack[T]) Peek() (val T, ok bool) {
	if s.arr.Len() == 0 {
		return
	}

	return *s.arr.Last(), true
}

func (s *Stack[T]) Len() int {
	return s.arr.Len()
}

func (s *Stack[T]) Empty() bool {
	return s.arr.Len() == 0
}

func (s *Stack[T]) Free() error {
	return s.arr.Free()
}
