package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a FIFO backed by a circular array (ring buffer) whose
// capacity is always a power of two.
// Enqueue and Dequeue are amortized O(1); Values walks front to back.
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1, used for fast modulo: idx & mask
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

// NewArrayQueue creates a new ArrayQueue with room for at least
// initialCapacity elements before it has to grow.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := roundUp(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// roundUp returns the next power of two >= n.
func roundUp(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the buffer and unwraps the elements so head becomes 0.
func (aq *ArrayQueue[T]) grow() {
	newBuf := make([]T, roundUp(aq.size+1))

	if aq.head+aq.size <= len(aq.buf) {
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		// wrapped around: head..end, then start..tail
		n := copy(newBuf, aq.buf[aq.head:])
		copy(newBuf[n:], aq.buf[:(aq.head+aq.size)&aq.mask])
	}

	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = len(newBuf) - 1
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow()
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// Values yields the queued elements from front to back.
// The queue must not be modified while the iteration is in progress.
func (aq *ArrayQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < aq.size; i++ {
			if !yield(aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}
