package lists

import "slices"

type ArrayList[T any] struct {
	data []T
}

var _ List[int] = (*ArrayList[int])(nil)

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// Reset drops every element and then appends values, reusing the backing array.
func (al *ArrayList[T]) Reset(values ...T) {
	al.Clear()
	al.data = append(al.data, values...)
}

// ToSlice returns a copy clipped to the current length, so later Adds on the
// list never show through the returned slice.
func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}
