// Package lazylist provides a lazily evaluated, memoizing cons list.
//
// A List computes its cells on demand: constructing a list does no work,
// and walking it evaluates each cell at most once, caching the outcome.
// This is the explicit suspension construct the seqs fold engine builds
// its right-accumulator results from; it is also useful on its own
// whenever a possibly unbounded sequence needs structural sharing that
// a plain iter.Seq cannot offer.
//
// Lists are not safe for concurrent use. Evaluation is single-goroutine
// and demand-driven: cells are forced in the order they are first
// requested, never speculatively.
package lazylist

import "iter"

// cell is one evaluated element of a list.
type cell[T any] struct {
	head T
	tail List[T]
}

// List is a lazily evaluated cons list of T.
// The zero value is the empty list.
type List[T any] struct {
	eval func() *cell[T]
}

// force evaluates the first cell, or returns nil for the empty list.
func (l List[T]) force() *cell[T] {
	if l.eval == nil {
		return nil
	}
	return l.eval()
}

// memoCell caches the outcome of f so the underlying work runs at most once.
func memoCell[T any](f func() *cell[T]) func() *cell[T] {
	var cached *cell[T]
	done := false
	return func() *cell[T] {
		if !done {
			cached = f()
			done = true
			f = nil
		}
		return cached
	}
}

// Empty returns the empty list. Equivalent to the zero value.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons prepends head to tail. The new cell is already evaluated;
// laziness, if any, lives in the tail.
func Cons[T any](head T, tail List[T]) List[T] {
	c := &cell[T]{head: head, tail: tail}
	return List[T]{eval: func() *cell[T] { return c }}
}

// Suspend defers the construction of an entire list until it is first
// walked. f runs at most once.
func Suspend[T any](f func() List[T]) List[T] {
	return List[T]{eval: memoCell(func() *cell[T] {
		return f().force()
	})}
}

// FromSeq materializes seq into a list incrementally: each element is
// pulled from the iterator the first time its cell is demanded, and
// never again. The source sequence is consumed at most once regardless
// of how many times the resulting list is walked.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	next, stop := iter.Pull(seq)
	var grow func() List[T]
	grow = func() List[T] {
		return List[T]{eval: memoCell(func() *cell[T] {
			v, ok := next()
			if !ok {
				stop()
				return nil
			}
			return &cell[T]{head: v, tail: grow()}
		})}
	}
	return grow()
}

// FromSlice builds a fully evaluated list holding the elements of s.
func FromSlice[T any](s []T) List[T] {
	l := Empty[T]()
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// IsEmpty reports whether the list has no elements.
// Forces the first cell.
func (l List[T]) IsEmpty() bool {
	return l.force() == nil
}

// Head returns the first element. ok is false for the empty list.
func (l List[T]) Head() (head T, ok bool) {
	c := l.force()
	if c == nil {
		return head, false
	}
	return c.head, true
}

// Tail returns the list without its first element.
// The tail of the empty list is the empty list.
func (l List[T]) Tail() List[T] {
	c := l.force()
	if c == nil {
		return List[T]{}
	}
	return c.tail
}

// Uncons forces the first cell and decomposes the list in one step.
func (l List[T]) Uncons() (head T, tail List[T], ok bool) {
	c := l.force()
	if c == nil {
		return head, tail, false
	}
	return c.head, c.tail, true
}

// Seq returns the elements as an iter.Seq. Iteration is a flat loop:
// walking a list of any length uses constant stack, no matter how the
// list was built. Cells already evaluated are served from cache.
func (l List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.force(); c != nil; c = c.tail.force() {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Take returns the first n elements as a slice, or fewer if the list
// ends early. Safe on unbounded lists.
func (l List[T]) Take(n int) []T {
	out := make([]T, 0, max(n, 0))
	c := l.force()
	for range n {
		if c == nil {
			break
		}
		out = append(out, c.head)
		c = c.tail.force()
	}
	return out
}

// Count walks the whole list and returns its length.
// Diverges on unbounded lists.
func (l List[T]) Count() int {
	n := 0
	for c := l.force(); c != nil; c = c.tail.force() {
		n++
	}
	return n
}
