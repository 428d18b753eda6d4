package queues

import "iter"

// Queue is a single-consumer FIFO.
type Queue[T any] interface {
	// puts an element at the end of the queue
	Enqueue(value T)
	// removes and returns the element at the front of the queue
	Dequeue() (value T, ok bool)
	// returns the element at the front of the queue without removing it
	Peek() (value T, ok bool)
	// removes all elements from the queue
	Clear()
	// walks the queue from front to back without removing anything
	Values() iter.Seq[T]
}
