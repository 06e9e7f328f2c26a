package util

import (
	"math/rand"
	"sync"

	"github.com/fogleman/ease"
)

// RandomValues returns n integers drawn uniformly from [min, max].
func RandomValues(rng *rand.Rand, n, min, max int) []int {
	if n <= 0 {
		return []int{}
	}
	if max < min {
		min, max = max, min
	}

	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(max-min+1) + min
	}
	return values
}

// GenerateLut builds a symmetric rise-and-fall curve of the given length.
func GenerateLut(length int) []float64 {
	if length < 2 {
		return make([]float64, max(length, 0))
	}

	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	if length%2 == 1 {
		lut[length/2] = 1
	}
	return lut
}

// Memoizer caches the result of an expensive function per key.
type Memoizer[K comparable, V any] struct {
	fn    func(K) V
	mu    sync.Mutex
	cache map[K]V
}

// NewMemoizer wraps fn.
func NewMemoizer[K comparable, V any](fn func(K) V) *Memoizer[K, V] {
	m := new(Memoizer[K, V])
	m.fn = fn
	m.cache = make(map[K]V)
	return m
}

// Get returns fn(key), computing it at most once.
func (m *Memoizer[K, V]) Get(key K) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.cache[key]; ok {
		return v
	}
	v := m.fn(key)
	m.cache[key] = v
	return v
}

var lutCache = NewMemoizer(GenerateLut)

// GenerateLutMemoized is GenerateLut with a process-wide cache. The returned
// slice is shared and must not be modified.
func GenerateLutMemoized(length int) []float64 {
	return lutCache.Get(length)
}
