package seqs

import (
	"fmt"
	"iter"
	"math/big"
)

// First returns the first element of seq.
// Returns ErrEmpty on an empty sequence.
func First[T any](seq iter.Seq[T]) (T, error) {
	for v := range seq {
		return v, nil
	}
	var zero T
	return zero, ErrEmpty
}

// Last returns the final element of seq.
// Returns ErrEmpty on an empty sequence. Diverges on unbounded input.
func Last[T any](seq iter.Seq[T]) (T, error) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	if !found {
		return last, ErrEmpty
	}
	return last, nil
}

// Rest returns seq without its first element.
// Returns ErrEmpty on an empty sequence.
func Rest[T any](seq iter.Seq[T]) (iter.Seq[T], error) {
	if IsEmpty(seq) {
		return nil, ErrEmpty
	}
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if first {
				first = false
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// Init returns seq without its final element, produced lazily with one
// element of lookahead. Returns ErrEmpty on an empty sequence.
func Init[T any](seq iter.Seq[T]) (iter.Seq[T], error) {
	if IsEmpty(seq) {
		return nil, ErrEmpty
	}
	return func(yield func(T) bool) {
		var prev T
		have := false
		for v := range seq {
			if have && !yield(prev) {
				return
			}
			prev, have = v, true
		}
	}, nil
}

// IsEmpty reports whether seq has no elements. Pulls at most one.
func IsEmpty[T any](seq iter.Seq[T]) bool {
	for range seq {
		return false
	}
	return true
}

// Count returns the number of elements in seq as an int.
// The fixed-width companion of [Length].
func Count[T any](seq iter.Seq[T]) int {
	return Reduce(seq, 0, func(n int, _ T) int { return n + 1 })
}

// Length returns the number of elements in seq as an arbitrary-precision
// integer, so sequences longer than any fixed-width counter still
// measure correctly. Correctness is the point; callers that want the
// constant factor back use [Count].
func Length[T any](seq iter.Seq[T]) *big.Int {
	one := big.NewInt(1)
	return Reduce(seq, big.NewInt(0), func(n *big.Int, _ T) *big.Int {
		return new(big.Int).Add(n, one)
	})
}

// At returns the element of seq at position n (0-based).
// Returns ErrNegativeCount for negative n, and ErrEmpty (wrapped) when
// the sequence is shorter than n+1 elements.
func At[T any](seq iter.Seq[T], n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, fmt.Errorf("index %d: %w", n, ErrNegativeCount)
	}
	i := 0
	for v := range seq {
		if i == n {
			return v, nil
		}
		i++
	}
	return zero, fmt.Errorf("index %d out of range: %w", n, ErrEmpty)
}
