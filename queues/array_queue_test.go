package queues_test

import (
	"slices"
	"testing"

	"lazyseq/queues"
)

func TestNewArrayQueue(t *testing.T) {
	tests := []struct {
		name            string
		initialCapacity int
	}{
		{"Negative capacity", -1},
		{"Zero capacity", 0},
		{"Capacity 1", 1},
		{"Capacity 3 (round up)", 3},
		{"Capacity 9 (round up)", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queues.NewArrayQueue[int](tt.initialCapacity)
			if n := len(slices.Collect(q.Values())); n != 0 {
				t.Errorf("expected size 0, got %d", n)
			}
			if _, ok := q.Peek(); ok {
				t.Error("expected queue to be empty")
			}
		})
	}
}

func TestArrayQueue_Enqueue_Dequeue(t *testing.T) {
	q := queues.NewArrayQueue[int](4)

	// Fill: [1, 2, 3, 4]
	for i := 1; i <= 4; i++ {
		q.Enqueue(i)
	}

	// Dequeue 2 items: [_, _, 3, 4] (head at index 2)
	if v, ok := q.Dequeue(); !ok || v != 1 {
		t.Errorf("expected 1, got %v", v)
	}
	if v, ok := q.Dequeue(); !ok || v != 2 {
		t.Errorf("expected 2, got %v", v)
	}

	// wrap-around: [5, 6, 3, 4]
	q.Enqueue(5)
	q.Enqueue(6)

	if v, ok := q.Peek(); !ok || v != 3 {
		t.Errorf("Peek expected 3, got %v", v)
	}

	// grow from a wrapped state
	q.Enqueue(7)

	if n := len(slices.Collect(q.Values())); n != 5 {
		t.Errorf("expected size 5, got %d", n)
	}

	for _, exp := range []int{3, 4, 5, 6, 7} {
		if v, ok := q.Dequeue(); !ok || v != exp {
			t.Errorf("expected %d, got %v (ok=%v)", exp, v, ok)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Error("queue should be empty")
	}
}

func TestArrayQueue_EmptyOperations(t *testing.T) {
	q := queues.NewArrayQueue[string](10)

	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on empty queue should return false")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue should return false")
	}
	for range q.Values() {
		t.Error("Values on empty queue should yield nothing")
	}
}

func TestArrayQueue_Values(t *testing.T) {
	q := queues.NewArrayQueue[int](4)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	q.Dequeue()
	q.Enqueue(4)
	q.Enqueue(5) // wraps

	got := slices.Collect(q.Values())
	if !slices.Equal(got, []int{2, 3, 4, 5}) {
		t.Errorf("Values mismatch: got %v", got)
	}
	if v, ok := q.Peek(); !ok || v != 2 {
		t.Errorf("Values must not consume, Peek got %v", v)
	}

	// early stop
	var first []int
	for v := range q.Values() {
		first = append(first, v)
		break
	}
	if !slices.Equal(first, []int{2}) {
		t.Errorf("early stop mismatch: got %v", first)
	}
}

func TestArrayQueue_PointerElementsAreShared(t *testing.T) {
	type box struct{ items []int }
	q := queues.NewArrayQueue[*box](2)
	q.Enqueue(&box{})
	q.Enqueue(&box{})

	for b := range q.Values() {
		b.items = append(b.items, 9)
	}

	for b := range q.Values() {
		if !slices.Equal(b.items, []int{9}) {
			t.Errorf("expected [9], got %v", b.items)
		}
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := queues.NewArrayQueue[int](8)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	q.Clear()

	if n := len(slices.Collect(q.Values())); n != 0 {
		t.Errorf("expected size 0 after clear, got %d", n)
	}
	if _, ok := q.Peek(); ok {
		t.Error("expected Peek to fail after clear")
	}

	q.Enqueue(10)
	if v, ok := q.Dequeue(); !ok || v != 10 {
		t.Errorf("expected 10 after reuse, got %v", v)
	}
}
