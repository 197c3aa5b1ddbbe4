package hashmap

const (
	// Set gives up looking for an empty bucket after this many probe attempts
	// beyond the primary one.
	maxSetAttempts = 5

	// Lookups scan one bucket further than Set does.
	maxLookupAttempts = 6
)

// Each byte is weighted by the square of its 1-based position.
func hash(key string, size int) int {
	var sum uint64

	for i := 0; i < len(key); i++ {
		weight := uint64(i+1) * uint64(i+1)
		sum += uint64(key[i]) * weight
	}

	return int(sum % uint64(size))
}

func probe(start, attempt, size int) int {
	return (start + attempt*attempt) % size
}
