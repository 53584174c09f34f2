package seqs

import (
	"cmp"
	"iter"
	"math/bits"
	"slices"
)

// MergeFunc combines two sequences already ordered under cmp into one
// ordered sequence, repeatedly emitting the lesser head. When heads
// compare equal the left source wins; sorts built on top of this are
// stable because of that bias. Derived from Unfold with the pair of
// pending heads as state; the result is productive, so either input
// may be unbounded.
func MergeFunc[T any](a, b iter.Seq[T], cmp func(x, y T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		type heads struct {
			a, b     T
			okA, okB bool
			primed   bool
		}
		var zero T
		Unfold(func(h heads, _ T) (heads, T, bool) {
			if !h.primed {
				h.a, h.okA = nextA()
				h.b, h.okB = nextB()
				h.primed = true
			}
			switch {
			case h.okA && (!h.okB || cmp(h.a, h.b) <= 0):
				out := h.a
				h.a, h.okA = nextA()
				return h, out, true
			case h.okB:
				out := h.b
				h.b, h.okB = nextB()
				return h, out, true
			default:
				return h, zero, false
			}
		}, heads{}, zero).Seq()(yield)
	}
}

// Merge is MergeFunc with the natural order.
func Merge[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(a, b, cmp.Compare)
}

// runQueue is a circular-array queue of pending merge runs (power-of-two
// capacity, idx & mask for fast modulo).
type runQueue[T any] struct {
	buf  [][]T
	head int
	size int
	mask int
}

func newRunQueue[T any](initialCapacity int) *runQueue[T] {
	if initialCapacity <= 1 {
		initialCapacity = 16
	}
	capacity := 1 << uint(bits.Len(uint(initialCapacity-1)))
	return &runQueue[T]{
		buf:  make([][]T, capacity),
		mask: capacity - 1,
	}
}

func (q *runQueue[T]) enqueue(run []T) {
	if q.size == len(q.buf) {
		newBuf := make([][]T, len(q.buf)*2)
		if q.head+q.size <= len(q.buf) {
			copy(newBuf, q.buf[q.head:q.head+q.size])
		} else {
			// wrapped around
			n := copy(newBuf, q.buf[q.head:])
			copy(newBuf[n:], q.buf[:(q.head+q.size)&q.mask])
		}
		q.buf = newBuf
		q.head = 0
		q.mask = len(newBuf) - 1
	}
	q.buf[(q.head+q.size)&q.mask] = run
	q.size++
}

func (q *runQueue[T]) dequeue() ([]T, bool) {
	if q.size == 0 {
		return nil, false
	}
	run := q.buf[q.head]
	q.buf[q.head] = nil // clear reference
	q.head = (q.head + 1) & q.mask
	q.size--
	return run, true
}

// SortFunc yields the elements of seq in the order given by cmp. The
// sort is stable: equal elements keep their input order. Bottom-up
// mergesort in three moves: each element becomes a singleton run, runs
// wait in a queue, and the front two runs are repeatedly replaced by
// their [MergeFunc] until one remains. O(n log n) comparisons.
// Eager in its input; the sequence must be finite.
func SortFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		q := newRunQueue[T](16)
		for v := range seq {
			q.enqueue([]T{v})
		}
		// Merge in level-order passes. Runs sit in the queue in input
		// order; pairing only runs from the same pass keeps the left
		// source of every merge the earlier-input one, which is what
		// the left bias of MergeFunc needs for stability. An odd run
		// out is re-enqueued unmerged so it keeps its position.
		for q.size > 1 {
			k := q.size
			for k > 1 {
				a, _ := q.dequeue()
				b, _ := q.dequeue()
				q.enqueue(slices.Collect(MergeFunc(slices.Values(a), slices.Values(b), cmp)))
				k -= 2
			}
			if k == 1 {
				run, _ := q.dequeue()
				q.enqueue(run)
			}
		}
		run, ok := q.dequeue()
		if !ok {
			return
		}
		for _, v := range run {
			if !yield(v) {
				return
			}
		}
	}
}

// Sort is SortFunc with the natural order.
func Sort[T cmp.Ordered](seq iter.Seq[T]) iter.Seq[T] {
	return SortFunc(seq, cmp.Compare)
}

// InsertFunc yields seq with value inserted after the last element not
// greater than it, so existing equal elements come first. On a
// cmp-ordered sequence the result stays ordered; the insertion point is
// found lazily, element by element.
func InsertFunc[T any](seq iter.Seq[T], value T, cmp func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		inserted := false
		for v := range seq {
			if !inserted && cmp(v, value) > 0 {
				if !yield(value) {
					return
				}
				inserted = true
			}
			if !yield(v) {
				return
			}
		}
		if !inserted {
			yield(value)
		}
	}
}

// Insert is InsertFunc with the natural order.
func Insert[T cmp.Ordered](seq iter.Seq[T], value T) iter.Seq[T] {
	return InsertFunc(seq, value, cmp.Compare)
}

// InsertBeforeFunc yields seq with value inserted before the first
// element not less than it, so the new element comes before existing
// equals. The mirror policy of [InsertFunc]; the two differ only on
// sequences containing elements equal to value.
func InsertBeforeFunc[T any](seq iter.Seq[T], value T, cmp func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		inserted := false
		for v := range seq {
			if !inserted && cmp(v, value) >= 0 {
				if !yield(value) {
					return
				}
				inserted = true
			}
			if !yield(v) {
				return
			}
		}
		if !inserted {
			yield(value)
		}
	}
}

// InsertBefore is InsertBeforeFunc with the natural order.
func InsertBefore[T cmp.Ordered](seq iter.Seq[T], value T) iter.Seq[T] {
	return InsertBeforeFunc(seq, value, cmp.Compare)
}
