package ordmap

import (
	"fmt"
	"iter"
)

// NullString is how a null key prints.
const NullString = "<null>"

// Nullable is a key that is either present or null.
// It is comparable whenever K is.
type Nullable[K any] struct {
	key   K
	valid bool
}

// Some returns a present key.
func Some[K any](key K) Nullable[K] {
	return Nullable[K]{key: key, valid: true}
}

// Null returns the null key.
func Null[K any]() Nullable[K] {
	return Nullable[K]{}
}

// Get returns the wrapped key and whether it is present.
func (n Nullable[K]) Get() (K, bool) {
	return n.key, n.valid
}

func (n Nullable[K]) IsNull() bool {
	return !n.valid
}

func (n Nullable[K]) String() string {
	if !n.valid {
		return NullString
	}
	return fmt.Sprint(n.key)
}

// NullableKeyMap exposes a map keyed by K as one keyed by Nullable[K], with at
// most one extra entry for the null key. The null entry is reported after all
// present keys.
type NullableKeyMap[K, V any] struct {
	inner     ReadOnly[K, V]
	hasNull   bool
	nullValue V
}

var _ ReadOnly[Nullable[string], int] = (*NullableKeyMap[string, int])(nil)

// WrapNullable lifts inner without adding a null entry.
func WrapNullable[K, V any](inner ReadOnly[K, V]) *NullableKeyMap[K, V] {
	return &NullableKeyMap[K, V]{inner: inner}
}

// WithNull lifts inner and maps the null key to nullValue.
func WithNull[K, V any](inner ReadOnly[K, V], nullValue V) *NullableKeyMap[K, V] {
	return &NullableKeyMap[K, V]{inner: inner, hasNull: true, nullValue: nullValue}
}

func (m *NullableKeyMap[K, V]) Len() int {
	if m.hasNull {
		return m.inner.Len() + 1
	}
	return m.inner.Len()
}

func (m *NullableKeyMap[K, V]) Get(key Nullable[K]) (V, bool) {
	if key.IsNull() {
		if m.hasNull {
			return m.nullValue, true
		}
		var zero V
		return zero, false
	}
	return m.inner.Get(key.key)
}

func (m *NullableKeyMap[K, V]) ContainsKey(key Nullable[K]) bool {
	if key.IsNull() {
		return m.hasNull
	}
	return m.inner.ContainsKey(key.key)
}

func (m *NullableKeyMap[K, V]) All() iter.Seq2[Nullable[K], V] {
	return func(yield func(Nullable[K], V) bool) {
		for k, v := range m.inner.All() {
			if !yield(Some(k), v) {
				return
			}
		}
		if m.hasNull {
			yield(Null[K](), m.nullValue)
		}
	}
}

func (m *NullableKeyMap[K, V]) Keys() iter.Seq[Nullable[K]] {
	return func(yield func(Nullable[K]) bool) {
		for k := range m.inner.Keys() {
			if !yield(Some(k)) {
				return
			}
		}
		if m.hasNull {
			yield(Null[K]())
		}
	}
}

func (m *NullableKeyMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range m.inner.Values() {
			if !yield(v) {
				return
			}
		}
		if m.hasNull {
			yield(m.nullValue)
		}
	}
}
