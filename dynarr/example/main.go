package main

import (
	"cmp"
	"log"

	"github.com/webbmaffian/go-dynarr/dynarr"
)

type point struct {
	X, Y int32
}

func main() {
	arr, err := dynarr.New[point]()

	if err != nil {
		log.Fatal(err)
	}

	defer arr.Free()

	for i := int32(0); i < 10; i++ {
		if _, err = arr.Push(point{X: 10 - i, Y: i * i}); err != nil {
			log.Fatal(err)
		}
	}

	log.Println(arr.Len(), "items, capacity", arr.Cap())

	arr.Sort(func(a, b point) int {
		return cmp.Compare(a.X, b.X)
	})

	for arr.Len() > 0 {
		p := arr.Dequeue()
		log.Println(p.X, "=", p.Y)
	}

	log.Println("tadaaa")
}
