package ordmap

import "iter"

// ReadOnly is the lookup and iteration surface shared by every map in this
// package.
type ReadOnly[K, V any] interface {
	// Len returns the number of entries.
	Len() int
	// Get returns the value stored for key.
	Get(key K) (V, bool)
	// ContainsKey reports whether key has an entry.
	ContainsKey(key K) bool
	// All yields entries in insertion order.
	All() iter.Seq2[K, V]
	// Keys yields keys in insertion order.
	Keys() iter.Seq[K]
	// Values yields values in insertion order.
	Values() iter.Seq[V]
}

// index maps a key to its position in Map.keys.
type index[K any] interface {
	lookup(key K, keys []K) (int, bool)
	insert(key K, pos int)
}

type nativeIndex[K comparable] map[K]int

func (n nativeIndex[K]) lookup(key K, _ []K) (int, bool) {
	pos, ok := n[key]
	return pos, ok
}

func (n nativeIndex[K]) insert(key K, pos int) { n[key] = pos }

type hashIndex[K any] struct {
	eq      Equality[K]
	buckets map[uint64][]int
}

func (h *hashIndex[K]) lookup(key K, keys []K) (int, bool) {
	for _, pos := range h.buckets[h.eq.Hash(key)] {
		if h.eq.Equal(keys[pos], key) {
			return pos, true
		}
	}
	return -1, false
}

func (h *hashIndex[K]) insert(key K, pos int) {
	sum := h.eq.Hash(key)
	h.buckets[sum] = append(h.buckets[sum], pos)
}

// Map is an insertion-ordered map. The zero value is not usable; create one
// with New or NewFunc.
type Map[K, V any] struct {
	keys   []K
	values []V
	idx    index[K]
}

var _ ReadOnly[string, int] = (*Map[string, int])(nil)

// New returns an empty map that matches keys with ==.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{idx: make(nativeIndex[K])}
}

// NewFunc returns an empty map that matches keys with eq.
// The first inserted spelling of a key is the one that is kept.
func NewFunc[K, V any](eq Equality[K]) *Map[K, V] {
	if eq == nil {
		panic("ordmap: nil Equality")
	}
	return &Map[K, V]{idx: &hashIndex[K]{eq: eq, buckets: make(map[uint64][]int)}}
}

// Set stores value for key. An existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if pos, ok := m.idx.lookup(key, m.keys); ok {
		m.values[pos] = value
		return
	}
	m.append(key, value)
}

// Update replaces the value for key with fn(old, found) and returns it.
func (m *Map[K, V]) Update(key K, fn func(old V, found bool) V) V {
	if pos, ok := m.idx.lookup(key, m.keys); ok {
		m.values[pos] = fn(m.values[pos], true)
		return m.values[pos]
	}
	var zero V
	value := fn(zero, false)
	m.append(key, value)
	return value
}

func (m *Map[K, V]) append(key K, value V) {
	m.idx.insert(key, len(m.keys))
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

func (m *Map[K, V]) Len() int { return len(m.keys) }

func (m *Map[K, V]) Get(key K) (V, bool) {
	if pos, ok := m.idx.lookup(key, m.keys); ok {
		return m.values[pos], true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.idx.lookup(key, m.keys)
	return ok
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.values {
			if !yield(v) {
				return
			}
		}
	}
}
