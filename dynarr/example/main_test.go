package main

import (
	"cmp"
	"testing"

	"github.com/webbmaffian/go-dynarr/alloc"
	"github.com/webbmaffian/go-dynarr/dynarr"
)

type val [64]byte

func newBench[T any](b *testing.B, opts ...dynarr.Option) *dynarr.Array[T] {
	arr, err := dynarr.New[T](opts...)

	if err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() {
		arr.Free()
	})

	return arr
}

func BenchmarkPush(b *testing.B) {
	arr := newBench[val](b)

	var v val

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		arr.Push(v)
	}
}

func BenchmarkPushMmap(b *testing.B) {
	arr := newBench[val](b, dynarr.WithAllocator(alloc.Mmap{}))

	var v val

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		arr.Push(v)
	}
}

func BenchmarkQueue(b *testing.B) {
	arr := newBench[uint64](b)

	for i := 0; i < 1024; i++ {
		arr.Push(uint64(i))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		arr.Push(arr.Dequeue())
	}
}

func BenchmarkFindBinary(b *testing.B) {
	arr := newBench[uint64](b)

	for i := 0; i < 1<<16; i++ {
		arr.Push(uint64(i))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = arr.FindBinary(uint64(i&0xffff), cmp.Compare[uint64])
	}
}

func BenchmarkFindLinear(b *testing.B) {
	arr := newBench[uint64](b)

	for i := 0; i < 1024; i++ {
		arr.Push(uint64(i))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = arr.FindLinear(uint64(i & 1023))
	}
}

func BenchmarkSort(b *testing.B) {
	arr := newBench[uint64](b)

	if _, err := arr.Resize(4096); err != nil {
		b.Fatal(err)
	}

	items := arr.Items()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		for j := range items {
			items[j] = uint64((j * 7919) % 4096)
		}

		b.StartTimer()
		arr.Sort(cmp.Compare[uint64])
	}
}

func BenchmarkSortInsertion(b *testing.B) {
	arr := newBench[uint64](b)

	if _, err := arr.Resize(256); err != nil {
		b.Fatal(err)
	}

	items := arr.Items()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		for j := range items {
			items[j] = uint64(len(items) - j)
		}

		b.StartTimer()
		arr.SortInsertion(cmp.Compare[uint64])
	}
}
