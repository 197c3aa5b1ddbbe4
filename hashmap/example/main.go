package main

import (
	"log"

	"github.com/webbmaffian/go-qmap/hashmap"
)

func main() {
	m := hashmap.New[int]()

	m.Set("a", 5)
	m.Set("k", 6)

	if !m.Set("a", 7) {
		log.Println("a is already set")
	}

	val, ok := m.Get("a")
	log.Println("a =", val, ok)

	val, ok = m.Remove("a")
	log.Println("removed a =", val, ok)

	val, ok = m.Get("a")
	log.Println("a =", val, ok)

	log.Printf("load %.2f (%d of %d buckets used)", m.Load(), m.Occupied(), m.Cap())
}
