package seqs

import "lazyseq/ordmap"

// CountBy counts the elements of src per key. Keys are reported in the order
// they were first seen.
func CountBy[T any, K comparable](src Seq[T], keyOf func(T) K) (ordmap.ReadOnly[K, int], error) {
	if src == nil {
		return nil, missing("CountBy", "source")
	}
	if keyOf == nil {
		return nil, missing("CountBy", "keyOf")
	}
	counts := ordmap.New[K, int]()
	if _, err := countInto(src, present(keyOf), counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// CountByFunc is CountBy with keys matched by eq. The first spelling seen of
// each key is the one reported.
func CountByFunc[T, K any](src Seq[T], keyOf func(T) K, eq ordmap.Equality[K]) (ordmap.ReadOnly[K, int], error) {
	if src == nil {
		return nil, missing("CountByFunc", "source")
	}
	if keyOf == nil {
		return nil, missing("CountByFunc", "keyOf")
	}
	if eq == nil {
		return nil, missing("CountByFunc", "equality")
	}
	counts := ordmap.NewFunc[K, int](eq)
	if _, err := countInto(src, present(keyOf), counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// CountByOptional counts the elements of src per key, where keyOf reports
// false for elements that have no key. Those elements are counted under the
// null key, which is reported after every present key and can be looked up
// with ordmap.Null. Without keyless elements there is no null entry.
func CountByOptional[T any, K comparable](src Seq[T], keyOf func(T) (K, bool)) (ordmap.ReadOnly[ordmap.Nullable[K], int], error) {
	if src == nil {
		return nil, missing("CountByOptional", "source")
	}
	if keyOf == nil {
		return nil, missing("CountByOptional", "keyOf")
	}
	counts := ordmap.New[K, int]()
	absent, err := countInto(src, keyOf, counts)
	if err != nil {
		return nil, err
	}
	return withAbsent[K](counts, absent), nil
}

// CountByOptionalFunc is CountByOptional with present keys matched by eq.
func CountByOptionalFunc[T, K any](src Seq[T], keyOf func(T) (K, bool), eq ordmap.Equality[K]) (ordmap.ReadOnly[ordmap.Nullable[K], int], error) {
	if src == nil {
		return nil, missing("CountByOptionalFunc", "source")
	}
	if keyOf == nil {
		return nil, missing("CountByOptionalFunc", "keyOf")
	}
	if eq == nil {
		return nil, missing("CountByOptionalFunc", "equality")
	}
	counts := ordmap.NewFunc[K, int](eq)
	absent, err := countInto(src, keyOf, counts)
	if err != nil {
		return nil, err
	}
	return withAbsent[K](counts, absent), nil
}

func present[T, K any](keyOf func(T) K) func(T) (K, bool) {
	return func(v T) (K, bool) {
		return keyOf(v), true
	}
}

func increment(n int, _ bool) int { return n + 1 }

// countInto adds one per element under its key and returns how many elements
// had no key.
func countInto[T, K any](src Seq[T], keyOf func(T) (K, bool), counts *ordmap.Map[K, int]) (int, error) {
	absent := 0
	for v, err := range src {
		if err != nil {
			return 0, err
		}
		key, ok := keyOf(v)
		if !ok {
			absent++
			continue
		}
		counts.Update(key, increment)
	}
	return absent, nil
}

func withAbsent[K any](counts ordmap.ReadOnly[K, int], absent int) ordmap.ReadOnly[ordmap.Nullable[K], int] {
	if absent > 0 {
		return ordmap.WithNull(counts, absent)
	}
	return ordmap.WrapNullable(counts)
}
