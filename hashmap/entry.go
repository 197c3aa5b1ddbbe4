package hashmap

type entry[T comparable] struct {
	key string
	val T
}

// Entries in insertion order.
type bucket[T comparable] []entry[T]
