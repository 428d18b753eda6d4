package seqs

import "lazyseq/lists"

// Partition splits src in a single eager pass into the elements that satisfy
// predicate and those that do not, each in source order.
func Partition[T any](src Seq[T], predicate func(T) bool) (matched, unmatched []T, err error) {
	if src == nil {
		return nil, nil, missing("Partition", "source")
	}
	if predicate == nil {
		return nil, nil, missing("Partition", "predicate")
	}

	yes := lists.NewArrayList[T](0)
	no := lists.NewArrayList[T](0)
	for v, err := range src {
		if err != nil {
			return nil, nil, err
		}
		if predicate(v) {
			yes.Add(v)
		} else {
			no.Add(v)
		}
	}
	return yes.ToSlice(), no.ToSlice(), nil
}

// IsEmpty reports whether src has no elements. It pulls at most one step.
func IsEmpty[T any](src Seq[T]) (bool, error) {
	if src == nil {
		return false, missing("IsEmpty", "source")
	}
	for _, err := range src {
		if err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}
