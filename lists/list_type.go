package lists

// List is an ordered, growable collection.
type List[T any] interface {
	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear empties the list and releases references to its elements
	Clear()

	// Reset replaces the whole content with the given elements
	Reset(values ...T)

	// ToSlice returns the elements as a native slice
	ToSlice() []T
}
