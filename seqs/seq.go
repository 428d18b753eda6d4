package seqs

import (
	"iter"
	"slices"
)

// Seq is a possibly infinite sequence whose steps may fail.
// A step yields (v, nil) for an element or (zero, err) for a failure; a
// failure is always the last step.
type Seq[T any] = iter.Seq2[T, error]

// FromSeq lifts an infallible iterator. A nil seq stays nil.
func FromSeq[T any](seq iter.Seq[T]) Seq[T] {
	if seq == nil {
		return nil
	}
	return func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// FromSlice yields the elements of s in order.
func FromSlice[T any](s []T) Seq[T] {
	return FromSeq(slices.Values(s))
}

// Values drops the error slot for sources that cannot fail, such as those
// built with FromSlice or Range. A failure is not dropped: Values panics with
// the source error unchanged.
func Values[T any](src Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if src == nil {
			return
		}
		for v, err := range src {
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains src into a slice. On failure it returns the elements
// gathered before the failing step together with the error.
func Collect[T any](src Seq[T]) ([]T, error) {
	if src == nil {
		return nil, missing("Collect", "source")
	}
	var out []T
	for v, err := range src {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Take yields at most n steps of src. After the n-th element src is not
// pulled again.
func Take[T any](src Seq[T], n int) Seq[T] {
	return func(yield func(T, error) bool) {
		if n <= 0 || src == nil {
			return
		}
		count := 0
		for v, err := range src {
			if !yield(v, err) || err != nil {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// TryMap applies transform to each element lazily. A transform error is
// yielded in place of the element and ends the sequence.
func TryMap[T, R any](src Seq[T], transform func(T) (R, error)) (Seq[R], error) {
	if src == nil {
		return nil, missing("TryMap", "source")
	}
	if transform == nil {
		return nil, missing("TryMap", "transform")
	}
	return func(yield func(R, error) bool) {
		var zero R
		for v, err := range src {
			if err != nil {
				yield(zero, err)
				return
			}
			res, err := transform(v)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(res, nil) {
				return
			}
		}
	}, nil
}
