package seqs

import (
	"fmt"
	"iter"
)

// Empty returns the sequence with no elements.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Singleton returns the one-element sequence holding v.
func Singleton[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// Cons prepends head to tail.
func Cons[T any](head T, tail iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(head) {
			return
		}
		tail(yield)
	}
}

// Range yields the integers from start (inclusive) to end (exclusive),
// advancing by step; a negative step counts down. A zero step yields
// nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Generate produces a sequence from a seed. step returns one produced
// element, the next seed, and whether production continues; the first
// false stops the sequence. Derived: the simple seeded specialization
// of [Unfold], with the seed on the left and elements on the right.
func Generate[S, T any](seed S, step func(S) (T, S, bool)) iter.Seq[T] {
	var zero T
	return Unfold(func(s S, _ T) (S, T, bool) {
		v, s2, ok := step(s)
		return s2, v, ok
	}, seed, zero).Seq()
}

// Iterate yields x, f(x), f(f(x)), ... without end. f is applied only
// when the consumer demands the next element, so f runs exactly n-1
// times to produce the first n elements.
func Iterate[T any](f func(T) T, x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := x; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Repeat yields value without end.
func Repeat[T any](value T) iter.Seq[T] {
	return Unfold(func(_ Unit, _ T) (Unit, T, bool) {
		return Unit{}, value, true
	}, Unit{}, value).Seq()
}

// Replicate yields value count times.
// Returns ErrNegativeCount for a negative count.
func Replicate[T any](value T, count int) (iter.Seq[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("replicate %d: %w", count, ErrNegativeCount)
	}
	return Unfold(func(remaining int, _ T) (int, T, bool) {
		if remaining == 0 {
			return 0, value, false
		}
		return remaining - 1, value, true
	}, count, value).Seq(), nil
}

// Cycle yields the elements of seq over and over. The cycle of the
// empty sequence is empty.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			yielded := false
			for v := range seq {
				yielded = true
				if !yield(v) {
					return
				}
			}
			if !yielded {
				return
			}
		}
	}
}
