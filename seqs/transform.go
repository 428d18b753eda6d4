package seqs

import "iter"

// Pair holds corresponding elements of two zipped sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Indexed holds an element and its zero-based position.
type Indexed[T any] struct {
	Element T
	Index   int
}

// Flatten concatenates the inner sequences of src. The next inner sequence
// is pulled from src only once the current one is exhausted.
// A nil inner sequence fails the pass with ErrMissingArgument when reached.
func Flatten[T any](src Seq[Seq[T]]) (Seq[T], error) {
	if src == nil {
		return nil, missing("Flatten", "source")
	}
	return func(yield func(T, error) bool) {
		var zero T
		for inner, err := range src {
			if err != nil {
				yield(zero, err)
				return
			}
			if inner == nil {
				yield(zero, missing("Flatten", "inner"))
				return
			}
			for v, err := range inner {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
	}, nil
}

// WithIndex pairs each element of src with its position.
func WithIndex[T any](src Seq[T]) (Seq[Indexed[T]], error) {
	if src == nil {
		return nil, missing("WithIndex", "source")
	}
	return func(yield func(Indexed[T], error) bool) {
		index := 0
		for v, err := range src {
			if err != nil {
				yield(Indexed[T]{}, err)
				return
			}
			if !yield(Indexed[T]{Element: v, Index: index}, nil) {
				return
			}
			index++
		}
	}, nil
}

// Zip pairs the elements of first and second by position and stops as soon
// as either runs out. Each step pulls first before second, so second is not
// pulled once first has ended.
func Zip[A, B any](first Seq[A], second Seq[B]) (Seq[Pair[A, B]], error) {
	if first == nil {
		return nil, missing("Zip", "first")
	}
	if second == nil {
		return nil, missing("Zip", "second")
	}
	return func(yield func(Pair[A, B], error) bool) {
		next, stop := iter.Pull2(second)
		defer stop()

		for a, err := range first {
			if err != nil {
				yield(Pair[A, B]{}, err)
				return
			}
			b, err, ok := next()
			if !ok {
				return
			}
			if err != nil {
				yield(Pair[A, B]{}, err)
				return
			}
			if !yield(Pair[A, B]{First: a, Second: b}, nil) {
				return
			}
		}
	}, nil
}

// Scan yields the running accumulation of src starting from seed.
// The seed itself is not yielded: the first value is accumulate(seed, first).
func Scan[T, A any](src Seq[T], seed A, accumulate func(A, T) A) (Seq[A], error) {
	if src == nil {
		return nil, missing("Scan", "source")
	}
	if accumulate == nil {
		return nil, missing("Scan", "accumulate")
	}
	return func(yield func(A, error) bool) {
		acc := seed
		for v, err := range src {
			if err != nil {
				var zero A
				yield(zero, err)
				return
			}
			acc = accumulate(acc, v)
			if !yield(acc, nil) {
				return
			}
		}
	}, nil
}

// ScanFirst is Scan seeded with the first element of src, which is not
// yielded: the first value is accumulate(first, second).
func ScanFirst[T any](src Seq[T], accumulate func(T, T) T) (Seq[T], error) {
	if src == nil {
		return nil, missing("ScanFirst", "source")
	}
	if accumulate == nil {
		return nil, missing("ScanFirst", "accumulate")
	}
	return func(yield func(T, error) bool) {
		var acc T
		seeded := false
		for v, err := range src {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !seeded {
				acc, seeded = v, true
				continue
			}
			acc = accumulate(acc, v)
			if !yield(acc, nil) {
				return
			}
		}
	}, nil
}
