package seqs

import (
	"fmt"
	"iter"
	"slices"
)

// prefix yields the first n elements; n is assumed non-negative.
func prefix[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// suffix yields the elements after the first n; n is assumed non-negative.
func suffix[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Take yields the first n elements of seq, or all of them if the
// sequence is shorter. Returns ErrNegativeCount for negative n.
func Take[T any](seq iter.Seq[T], n int) (iter.Seq[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("take %d: %w", n, ErrNegativeCount)
	}
	return prefix(seq, n), nil
}

// Drop yields the elements of seq after the first n.
// Returns ErrNegativeCount for negative n.
func Drop[T any](seq iter.Seq[T], n int) (iter.Seq[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("drop %d: %w", n, ErrNegativeCount)
	}
	return suffix(seq, n), nil
}

// SplitAt splits seq at position n: the first n elements and the rest.
// Returns ErrNegativeCount for negative n.
func SplitAt[T any](seq iter.Seq[T], n int) (front, back iter.Seq[T], err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("split at %d: %w", n, ErrNegativeCount)
	}
	return prefix(seq, n), suffix(seq, n), nil
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) {
				return // Condition not met, terminate the stream
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Span splits seq into the longest prefix satisfying the predicate and
// the rest. Both halves are lazy; the source is re-read per half.
func Span[T any](seq iter.Seq[T], predicate func(T) bool) (front, back iter.Seq[T]) {
	return TakeWhile(seq, predicate), DropWhile(seq, predicate)
}

// Break splits seq at the first element satisfying the predicate:
// Span with the predicate negated.
func Break[T any](seq iter.Seq[T], predicate func(T) bool) (front, back iter.Seq[T]) {
	return Span(seq, func(v T) bool { return !predicate(v) })
}

// GroupFunc yields maximal runs of adjacent elements that eq considers
// equal to the first element of the run. Runs are emitted as soon as
// they are complete.
func GroupFunc[T any](seq iter.Seq[T], eq func(a, b T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var run []T
		for v := range seq {
			if len(run) > 0 && !eq(run[0], v) {
				if !yield(run) {
					return
				}
				run = nil
			}
			run = append(run, v)
		}
		if len(run) > 0 {
			yield(run)
		}
	}
}

// Group is GroupFunc with ==.
func Group[T comparable](seq iter.Seq[T]) iter.Seq[[]T] {
	return GroupFunc(seq, func(a, b T) bool { return a == b })
}

// Inits yields every prefix of seq, shortest first, starting with the
// empty sequence. On unbounded input it keeps yielding ever longer
// prefixes.
func Inits[T any](seq iter.Seq[T]) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if !yield(Empty[T]()) {
			return
		}
		i := 0
		for range seq {
			i++
			if !yield(prefix(seq, i)) {
				return
			}
		}
	}
}

// Tails yields every suffix of seq, longest first, ending with the
// empty sequence.
func Tails[T any](seq iter.Seq[T]) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		if !yield(seq) {
			return
		}
		i := 0
		for range seq {
			i++
			if !yield(suffix(seq, i)) {
				return
			}
		}
	}
}

// HasPrefixFunc reports whether seq starts with the elements of prefix,
// compared with eq. Pulls no more of seq than the prefix is long.
func HasPrefixFunc[T any](seq, prefix iter.Seq[T], eq func(a, b T) bool) bool {
	next, stop := iter.Pull(seq)
	defer stop()
	for p := range prefix {
		v, ok := next()
		if !ok || !eq(v, p) {
			return false
		}
	}
	return true
}

// HasPrefix is HasPrefixFunc with ==.
func HasPrefix[T comparable](seq, prefix iter.Seq[T]) bool {
	return HasPrefixFunc(seq, prefix, func(a, b T) bool { return a == b })
}

// HasSuffixFunc reports whether seq ends with the elements of suffix,
// compared with eq. Materializes both sequences.
func HasSuffixFunc[T any](seq, suffix iter.Seq[T], eq func(a, b T) bool) bool {
	s := slices.Collect(seq)
	end := slices.Collect(suffix)
	if len(end) > len(s) {
		return false
	}
	s = s[len(s)-len(end):]
	for i := range end {
		if !eq(s[i], end[i]) {
			return false
		}
	}
	return true
}

// HasSuffix is HasSuffixFunc with ==.
func HasSuffix[T comparable](seq, suffix iter.Seq[T]) bool {
	return HasSuffixFunc(seq, suffix, func(a, b T) bool { return a == b })
}

// HasInfixFunc reports whether the elements of infix appear
// consecutively anywhere in seq. The scan is streaming: it terminates
// as soon as a match completes, even on unbounded input, and keeps only
// one window of memory.
func HasInfixFunc[T any](seq, infix iter.Seq[T], eq func(a, b T) bool) bool {
	needle := slices.Collect(infix)
	if len(needle) == 0 {
		return true
	}
	window := make([]T, 0, len(needle))
	for v := range seq {
		if len(window) == len(needle) {
			copy(window, window[1:])
			window = window[:len(window)-1]
		}
		window = append(window, v)
		if len(window) == len(needle) {
			match := true
			for i := range needle {
				if !eq(window[i], needle[i]) {
					match = false
					break
				}
			}
			if match {
				return true
			}
		}
	}
	return false
}

// HasInfix is HasInfixFunc with ==.
func HasInfix[T comparable](seq, infix iter.Seq[T]) bool {
	return HasInfixFunc(seq, infix, func(a, b T) bool { return a == b })
}

// StripPrefix removes prefix from the front of seq. ok is false, and
// the sequence nil, when seq does not start with prefix.
func StripPrefix[T comparable](seq, prefix iter.Seq[T]) (iter.Seq[T], bool) {
	if !HasPrefix(seq, prefix) {
		return nil, false
	}
	return suffix(seq, Count(prefix)), true
}

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}

		batch := make([]T, 0, size)

		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Window creates a sliding window over the input sequence.
// size: window size.
// step: step size for each slide.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Chunk.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
func Window[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 || step <= 0 {
			return
		}

		buffer := make([]T, 0, size)

		// when step > size, we need to skip some elements after yielding
		skipCount := 0

		for v := range seq {
			if skipCount > 0 {
				skipCount--
				continue
			}

			buffer = append(buffer, v)

			if len(buffer) < size {
				continue
			}

			output := make([]T, size)
			copy(output, buffer)

			if !yield(output) {
				return
			}

			if step < size {
				// overlapping mode: keep the latter part
				copy(buffer, buffer[step:])
				buffer = buffer[:size-step]
			} else {
				// gap mode: clear and set skip count
				buffer = buffer[:0]
				skipCount = step - size
			}
		}
	}
}
