package seqs

import (
	"iter"

	"refold/lazylist"
)

// Map applies transform to each element of seq, yielding the
// transformed elements. Derived: a fully lazy right fold consing the
// transformed element onto the suspended rest.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return foldSeq(seq, func(x T, rest Lazy[lazylist.List[R]]) lazylist.List[R] {
		return consRest(transform(x), rest)
	})
}

// Filter applies predicate to each element of seq, yielding only those
// that satisfy the predicate. Derived: a right fold that either conses
// the element or passes the suspended rest through.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return foldSeq(seq, func(x T, rest Lazy[lazylist.List[T]]) lazylist.List[T] {
		if predicate(x) {
			return consRest(x, rest)
		}
		return rest()
	})
}

// Reduce aggregates the elements of seq using the reducer function,
// starting from the initial value. Derived: the strict left side of the
// fold engine; the right accumulator is an unused placeholder.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	return Fold(seq, func(x T, acc R, rest Lazy[Unit]) (R, Lazy[Unit]) {
		return reducer(acc, x), rest
	}, initial, Unit{}).Left()
}

// Reduce1 is Reduce seeded with the first element of seq.
// Returns ErrEmpty on an empty sequence.
func Reduce1[T any](seq iter.Seq[T], reducer func(T, T) T) (T, error) {
	var acc T
	first := true
	for v := range seq {
		if first {
			acc = v
			first = false
			continue
		}
		acc = reducer(acc, v)
	}
	if first {
		var zero T
		return zero, ErrEmpty
	}
	return acc, nil
}

// FoldRight folds seq from the right: f receives each element together
// with the suspended fold of everything after it. An f that never
// forces rest keeps the fold fully lazy; an f that always forces it is
// a strict right fold and diverges on unbounded input.
func FoldRight[T, R any](seq iter.Seq[T], initial R, f func(x T, rest Lazy[R]) R) R {
	return Fold(seq, func(x T, l Unit, rest Lazy[R]) (Unit, Lazy[R]) {
		return l, func() R { return f(x, rest) }
	}, Unit{}, initial).Right()
}

// FoldRight1 is FoldRight seeded with the last element of seq.
// Returns ErrEmpty on an empty sequence.
func FoldRight1[T any](seq iter.Seq[T], f func(x T, rest Lazy[T]) T) (T, error) {
	x, tail, ok := lazylist.FromSeq(seq).Uncons()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	var from func(x T, l lazylist.List[T]) T
	from = func(x T, l lazylist.List[T]) T {
		y, rest, ok := l.Uncons()
		if !ok {
			return x
		}
		return f(x, memo(func() T { return from(y, rest) }))
	}
	return from(x, tail), nil
}

// Append yields the elements of a followed by the elements of b.
// Derived: the right fold of a with cons, seeded with b.
func Append[T any](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		FoldRight(a, lazylist.FromSeq(b), func(x T, rest Lazy[lazylist.List[T]]) lazylist.List[T] {
			return consRest(x, rest)
		}).Seq()(yield)
	}
}

// Peek performs the provided action on each element of the sequence
// without modifying it. It is useful for debugging (e.g., logging) or
// side effects.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}

			if keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// TryReduce aggregates the elements of seq using the reducer function, starting from the initial value.
// If reducer returns an error, it is returned immediately.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v := range seq {
		next, err := reducer(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}
