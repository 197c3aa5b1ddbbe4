// Package hashmap implements a fixed-capacity map from string keys to values,
// chaining entries in buckets and spreading inserts over nearby buckets with
// quadratic probing.
//
// A zero value of T marks an entry as absent: Remove resets the value in place
// and a later Set for the same key reuses the entry. The map is not safe for
// concurrent use.
package hashmap

import "go.uber.org/zap"

const DefaultCapacity = 10

// New creates a map with the given capacity, or DefaultCapacity if none (or a
// non-positive one) is given. The capacity never changes.
func New[T comparable](capacity ...int) *HashMap[T] {
	size := DefaultCapacity

	if capacity != nil {
		size = capacity[0]
	}

	return NewWithOptions[T](size)
}

func NewWithOptions[T comparable](capacity int, opts ...Option) *HashMap[T] {
	o := options{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &HashMap[T]{
		buckets: make([]bucket[T], capacity),
		size:    capacity,
		logger:  o.logger,
	}
}

type HashMap[T comparable] struct {
	buckets  []bucket[T]
	logger   *zap.Logger
	size     int
	occupied int // Buckets that were empty when an entry was placed in them.
}

// Set stores val under key. It fails if the key is empty or already holds a
// non-zero value within the probed buckets.
func (m *HashMap[T]) Set(key string, val T) bool {
	if key == "" {
		return false
	}

	var zero T
	start := hash(key, m.size)
	smallest, idx := -1, start

	for attempt := 0; ; attempt++ {
		idx = probe(start, attempt, m.size)
		b := m.buckets[idx]

		for i := range b {
			if b[i].key != key {
				continue
			}

			if b[i].val != zero {
				m.logger.Debug("key already set", zap.String("key", key), zap.Int("bucket", idx))
				return false
			}

			b[i].val = val
			return true
		}

		// Ties go to the bucket scanned last.
		if smallest < 0 || len(b) <= len(m.buckets[smallest]) {
			smallest = idx
		}

		if len(b) == 0 || attempt >= maxSetAttempts {
			break
		}
	}

	if len(m.buckets[idx]) == 0 {
		m.occupied++
	} else {
		m.logger.Debug("no empty bucket in probe range",
			zap.String("key", key),
			zap.Int("primary", start),
			zap.Int("bucket", smallest),
			zap.Int("chain", len(m.buckets[smallest])),
		)

		idx = smallest
	}

	m.buckets[idx] = append(m.buckets[idx], entry[T]{key: key, val: val})
	return true
}

// Get returns the value of the first entry for key along the probe sequence.
// The flag is false when there is no such entry or its value is zero.
func (m *HashMap[T]) Get(key string) (val T, ok bool) {
	f := m.Find(key)

	if !f.Next() {
		return
	}

	var zero T
	val = *f.Val()
	ok = val != zero
	return
}

// Remove resets the value of the first entry for key to zero and returns what
// it held. The entry itself stays in its bucket, and the load is unchanged.
func (m *HashMap[T]) Remove(key string) (val T, ok bool) {
	f := m.Find(key)

	if !f.Next() {
		return
	}

	var zero T
	ptr := f.Val()
	val, *ptr = *ptr, zero
	ok = val != zero
	return
}

// Count returns how many entries for key are reachable by a lookup, including
// removed ones.
func (m *HashMap[T]) Count(key string) (count int) {
	f := m.Find(key)

	for f.Next() {
		count++
	}

	return
}

func (m *HashMap[T]) Find(key string) Finder[T] {
	start := hash(key, m.size)

	return Finder[T]{
		m:      m,
		key:    key,
		start:  start,
		bucket: start,
		done:   key == "",
	}
}

// Load is the share of buckets that have ever received an entry. It never
// decreases.
func (m *HashMap[T]) Load() float64 {
	return float64(m.occupied) / float64(m.size)
}

func (m *HashMap[T]) Cap() int {
	return m.size
}

func (m *HashMap[T]) Occupied() int {
	return m.occupied
}

// BucketLen returns the number of entries chained in bucket i.
func (m *HashMap[T]) BucketLen(i int) int {
	return len(m.buckets[i])
}
