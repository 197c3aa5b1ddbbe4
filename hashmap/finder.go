package hashmap

// Finder walks the lookup probe sequence of a key and yields every entry
// stored under it. A bucket reached twice by the probe is only scanned once.
// The map must not be modified by Set while a Finder is in use.
type Finder[T comparable] struct {
	m       *HashMap[T]
	entry   *entry[T]
	key     string
	start   int
	attempt int
	bucket  int
	pos     int
	seen    [maxLookupAttempts + 1]int
	scanned int
	done    bool
}

func (iter *Finder[T]) Next() bool {
	for !iter.done {
		b := iter.m.buckets[iter.bucket]

		for iter.pos < len(b) {
			e := &b[iter.pos]
			iter.pos++

			if e.key == iter.key {
				iter.entry = e
				return true
			}
		}

		iter.advance()
	}

	return false
}

func (iter *Finder[T]) advance() {
	iter.seen[iter.scanned] = iter.bucket
	iter.scanned++
	iter.pos = 0

	for iter.attempt < maxLookupAttempts {
		iter.attempt++
		iter.bucket = probe(iter.start, iter.attempt, iter.m.size)

		if !iter.visited(iter.bucket) {
			return
		}
	}

	iter.done = true
}

func (iter *Finder[T]) visited(bucket int) bool {
	for _, b := range iter.seen[:iter.scanned] {
		if b == bucket {
			return true
		}
	}

	return false
}

func (iter *Finder[T]) Key() string {
	return iter.entry.key
}

func (iter *Finder[T]) Val() *T {
	return &iter.entry.val
}

// Index of the bucket holding the current entry.
func (iter *Finder[T]) Bucket() int {
	return iter.bucket
}
