package utils

import (
	"unsafe"
)

// PointerToBytes returns the length bytes starting at val, without copying.
func PointerToBytes[T any](val *T, length int) []byte {
	header := sliceHeader{
		Data: unsafe.Pointer(val),
		Len:  length,
		Cap:  length,
	}

	return *(*[]byte)(unsafe.Pointer(&header))
}

// BytesToPointer reinterprets the start of b as a *T. The caller guarantees
// that b is at least unsafe.Sizeof(T) bytes long and suitably aligned.
func BytesToPointer[T any](b []byte) *T {
	header := *(*sliceHeader)(unsafe.Pointer(&b))
	return (*T)(header.Data)
}

// BytesToSlice reinterprets b as n consecutive values of T.
func BytesToSlice[T any](b []byte, n int) []T {
	if n <= 0 {
		return nil
	}

	return unsafe.Slice(BytesToPointer[T](b), n)
}
