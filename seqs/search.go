package seqs

import (
	"iter"
	"math/big"
)

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// And reports whether every element of seq is true.
// Short-circuits on the first false, so it terminates on unbounded
// input that contains one.
func And(seq iter.Seq[bool]) bool {
	return All(seq, func(v bool) bool { return v })
}

// Or reports whether any element of seq is true.
// Short-circuits on the first true.
func Or(seq iter.Seq[bool]) bool {
	return Any(seq, func(v bool) bool { return v })
}

// Contains checks if the target element exists in the sequence.
// Works for comparable types.
func Contains[T comparable](seq iter.Seq[T], target T) bool {
	return Any(seq, func(v T) bool { return v == target })
}

// ContainsFunc checks if any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	return Any(seq, predicate)
}

// Find searches for the first element that satisfies the predicate.
// Returns the element and true if found, otherwise the zero value and false.
func Find[T any](seq iter.Seq[T], predicate func(T) bool) (T, bool) {
	for v := range seq {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Lookup returns the value paired with the first occurrence of key.
func Lookup[K comparable, V any](seq iter.Seq[Pair[K, V]], key K) (V, bool) {
	for p := range seq {
		if p.V1 == key {
			return p.V2, true
		}
	}
	var zero V
	return zero, false
}

// Partition splits seq into the elements satisfying the predicate and
// those that do not. Both halves are lazy; the source is re-read per half.
func Partition[T any](seq iter.Seq[T], predicate func(T) bool) (yes, no iter.Seq[T]) {
	return Filter(seq, predicate), Filter(seq, func(v T) bool { return !predicate(v) })
}

// Index returns the position of the first occurrence of target as an
// arbitrary-precision integer, following the same policy as [Length].
// ok is false when target does not occur.
func Index[T comparable](seq iter.Seq[T], target T) (*big.Int, bool) {
	i := big.NewInt(0)
	one := big.NewInt(1)
	for v := range seq {
		if v == target {
			return i, true
		}
		i = new(big.Int).Add(i, one)
	}
	return nil, false
}

// IndexOf returns the position of the first occurrence of target,
// or -1 if it does not occur. The fixed-width companion of [Index].
func IndexOf[T comparable](seq iter.Seq[T], target T) int {
	return IndexFunc(seq, func(v T) bool { return v == target })
}

// IndexFunc returns the position of the first element satisfying the
// predicate, or -1 if none does.
func IndexFunc[T any](seq iter.Seq[T], predicate func(T) bool) int {
	i := 0
	for v := range seq {
		if predicate(v) {
			return i
		}
		i++
	}
	return -1
}

// Indices yields the position of every occurrence of target.
func Indices[T comparable](seq iter.Seq[T], target T) iter.Seq[int] {
	return IndicesFunc(seq, func(v T) bool { return v == target })
}

// IndicesFunc yields the position of every element satisfying the
// predicate.
func IndicesFunc[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		i := 0
		for v := range seq {
			if predicate(v) && !yield(i) {
				return
			}
			i++
		}
	}
}
