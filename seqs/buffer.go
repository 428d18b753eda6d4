package seqs

import "lazyseq/queues"

// maxPrealloc caps up-front allocation so a huge count does not reserve
// memory the source may never fill.
const maxPrealloc = 64

// Buffer cuts src into consecutive, non-overlapping windows of count
// elements. The last window holds whatever is left and may be shorter; it is
// never padded and never dropped.
//
// Buffer fails with ErrMissingArgument for a nil src and ErrOutOfRange when
// count is not positive. src is not touched until the result is ranged over.
func Buffer[T any](src Seq[T], count int) (Seq[[]T], error) {
	if src == nil {
		return nil, missing("Buffer", "source")
	}
	if count <= 0 {
		return nil, outOfRange("Buffer", "count", count)
	}
	return buffered(src, func() windower[T] {
		return &tileWindower[T]{count: count}
	}), nil
}

// BufferStep produces windows of up to count elements, starting a new window
// every step elements:
//
//   - step == count: tiling, same as Buffer.
//   - step < count: windows overlap by count-step elements,
//     e.g. [0..8], count 3, step 2 gives [0 1 2] [2 3 4] [4 5 6] [6 7 8] [8].
//   - step > count: the step-count elements between windows are skipped,
//     e.g. [0..8], count 3, step 4 gives [0 1 2] [4 5 6] [8].
//
// Windows still filling when src ends are yielded in start order, shorter
// than count.
func BufferStep[T any](src Seq[T], count, step int) (Seq[[]T], error) {
	if src == nil {
		return nil, missing("BufferStep", "source")
	}
	if count <= 0 {
		return nil, outOfRange("BufferStep", "count", count)
	}
	if step <= 0 {
		return nil, outOfRange("BufferStep", "step", step)
	}

	var newWindower func() windower[T]
	switch {
	case step == count:
		newWindower = func() windower[T] {
			return &tileWindower[T]{count: count}
		}
	case step < count:
		newWindower = func() windower[T] {
			inflight := (count + step - 1) / step
			return &overlapWindower[T]{
				count:   count,
				step:    step,
				pending: queues.NewArrayQueue[*window[T]](min(inflight, maxPrealloc)),
			}
		}
	default:
		newWindower = func() windower[T] {
			return &skipWindower[T]{count: count, step: step}
		}
	}
	return buffered(src, newWindower), nil
}

// windower is the state of one buffering pass.
// push consumes one source element and returns a window when one completes;
// at most one window can complete per element in every regime. drain hands
// over the windows left at end of source until yield returns false.
type windower[T any] interface {
	push(v T) ([]T, bool)
	drain(yield func([]T) bool)
}

// buffered drives a fresh windower per pass. A window is yielded as soon as
// the element completing it arrives, before the next element is pulled.
func buffered[T any](src Seq[T], newWindower func() windower[T]) Seq[[]T] {
	return func(yield func([]T, error) bool) {
		w := newWindower()
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			if out, ok := w.push(v); ok {
				if !yield(out, nil) {
					return
				}
			}
		}
		w.drain(func(out []T) bool {
			return yield(out, nil)
		})
	}
}

type tileWindower[T any] struct {
	count int
	buf   []T
}

func (w *tileWindower[T]) push(v T) ([]T, bool) {
	if w.buf == nil {
		w.buf = make([]T, 0, min(w.count, maxPrealloc))
	}
	w.buf = append(w.buf, v)
	if len(w.buf) < w.count {
		return nil, false
	}
	out := w.buf
	w.buf = nil
	return out, true
}

func (w *tileWindower[T]) drain(yield func([]T) bool) {
	if len(w.buf) == 0 {
		return
	}
	out := w.buf
	w.buf = nil
	yield(out)
}

type window[T any] struct {
	items []T
}

// overlapWindower keeps every window that has started but not filled, oldest
// first. Only the oldest can be the next to fill.
type overlapWindower[T any] struct {
	count   int
	step    int
	pos     int // position modulo step
	pending *queues.ArrayQueue[*window[T]]
}

func (w *overlapWindower[T]) push(v T) ([]T, bool) {
	if w.pos == 0 {
		w.pending.Enqueue(&window[T]{items: make([]T, 0, min(w.count, maxPrealloc))})
	}
	w.pos++
	if w.pos == w.step {
		w.pos = 0
	}

	for p := range w.pending.Values() {
		p.items = append(p.items, v)
	}

	if head, ok := w.pending.Peek(); ok && len(head.items) == w.count {
		w.pending.Dequeue()
		return head.items, true
	}
	return nil, false
}

func (w *overlapWindower[T]) drain(yield func([]T) bool) {
	for {
		head, ok := w.pending.Dequeue()
		if !ok {
			return
		}
		if !yield(head.items) {
			w.pending.Clear()
			return
		}
	}
}

// skipWindower fills one window from the first count elements of every run of
// step elements and discards the rest of the run.
type skipWindower[T any] struct {
	count int
	step  int
	pos   int // position inside the current run of step elements
	buf   []T
}

func (w *skipWindower[T]) push(v T) (out []T, ready bool) {
	if w.pos == 0 {
		w.buf = make([]T, 0, min(w.count, maxPrealloc))
	}
	if w.pos < w.count {
		w.buf = append(w.buf, v)
	}
	w.pos++

	if w.pos == w.count {
		out, ready = w.buf, true
		w.buf = nil
	}
	if w.pos == w.step {
		w.pos = 0
	}
	return out, ready
}

func (w *skipWindower[T]) drain(yield func([]T) bool) {
	if len(w.buf) == 0 {
		return
	}
	out := w.buf
	w.buf = nil
	yield(out)
}
