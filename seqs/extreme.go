package seqs

import (
	"cmp"

	"lazyseq/lists"
)

type direction int

const (
	maxFirst direction = iota
	minFirst
)

// MaxBy returns every element of src whose key is the greatest, in source
// order. It fails with ErrEmptySource when src has no elements.
func MaxBy[T any, K cmp.Ordered](src Seq[T], keyOf func(T) K) ([]T, error) {
	if src == nil {
		return nil, missing("MaxBy", "source")
	}
	if keyOf == nil {
		return nil, missing("MaxBy", "keyOf")
	}
	return extremeBy("MaxBy", src, keyOf, cmp.Compare[K], maxFirst)
}

// MaxByFunc is MaxBy with keys ordered by compare, which returns a negative
// number, zero or a positive number like cmp.Compare.
func MaxByFunc[T, K any](src Seq[T], keyOf func(T) K, compare func(a, b K) int) ([]T, error) {
	if src == nil {
		return nil, missing("MaxByFunc", "source")
	}
	if keyOf == nil {
		return nil, missing("MaxByFunc", "keyOf")
	}
	if compare == nil {
		return nil, missing("MaxByFunc", "compare")
	}
	return extremeBy("MaxByFunc", src, keyOf, compare, maxFirst)
}

// MinBy returns every element of src whose key is the smallest, in source
// order. It fails with ErrEmptySource when src has no elements.
func MinBy[T any, K cmp.Ordered](src Seq[T], keyOf func(T) K) ([]T, error) {
	if src == nil {
		return nil, missing("MinBy", "source")
	}
	if keyOf == nil {
		return nil, missing("MinBy", "keyOf")
	}
	return extremeBy("MinBy", src, keyOf, cmp.Compare[K], minFirst)
}

// MinByFunc is MinBy with keys ordered by compare.
func MinByFunc[T, K any](src Seq[T], keyOf func(T) K, compare func(a, b K) int) ([]T, error) {
	if src == nil {
		return nil, missing("MinByFunc", "source")
	}
	if keyOf == nil {
		return nil, missing("MinByFunc", "keyOf")
	}
	if compare == nil {
		return nil, missing("MinByFunc", "compare")
	}
	return extremeBy("MinByFunc", src, keyOf, compare, minFirst)
}

// extremeBy keeps the best key seen so far and every element that ties it.
// A strictly better key resets the result to that single element.
func extremeBy[T, K any](op string, src Seq[T], keyOf func(T) K, compare func(a, b K) int, dir direction) ([]T, error) {
	result := lists.NewArrayList[T](1)
	var best K

	for v, err := range src {
		if err != nil {
			return nil, err
		}
		key := keyOf(v)
		if result.IsEmpty() {
			best = key
			result.Add(v)
			continue
		}

		c := compare(key, best)
		if dir == minFirst {
			// cmp.Compare instead of negation, which overflows for math.MinInt
			c = cmp.Compare(0, c)
		}
		switch {
		case c == 0:
			result.Add(v)
		case c > 0:
			result.Reset(v)
			best = key
		}
	}

	if result.IsEmpty() {
		return nil, emptySource(op)
	}
	return result.ToSlice(), nil
}
