package seqs

import "iter"

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up the elements of seq. Derived: a strict left fold.
func Sum[T Number](seq iter.Seq[T]) T {
	var zero T
	return Reduce(seq, zero, func(acc, v T) T { return acc + v })
}

// Product multiplies the elements of seq. Derived: a strict left fold.
func Product[T Number](seq iter.Seq[T]) T {
	return Reduce(seq, T(1), func(acc, v T) T { return acc * v })
}

// Minimum returns the least element of seq.
// Returns ErrEmpty on an empty sequence.
func Minimum[T Number](seq iter.Seq[T]) (T, error) {
	return Reduce1(seq, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// Maximum returns the greatest element of seq.
// Returns ErrEmpty on an empty sequence.
func Maximum[T Number](seq iter.Seq[T]) (T, error) {
	return Reduce1(seq, func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}

// MinimumFunc returns the least element of seq under cmp, keeping the
// earliest of equals. Returns ErrEmpty on an empty sequence.
func MinimumFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) (T, error) {
	return Reduce1(seq, func(a, b T) T {
		if cmp(b, a) < 0 {
			return b
		}
		return a
	})
}

// MaximumFunc returns the greatest element of seq under cmp, keeping
// the earliest of equals. Returns ErrEmpty on an empty sequence.
func MaximumFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) (T, error) {
	return Reduce1(seq, func(a, b T) T {
		if cmp(b, a) > 0 {
			return b
		}
		return a
	})
}
