package seqs

import (
	"cmp"
	"iter"
	"slices"
)

// Distinct returns a sequence that yields only unique elements.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// DistinctFunc is Distinct under a caller-supplied equality, for
// non-comparable types or custom identity. Keeps the first of each
// equivalence class; quadratic in the number of distinct elements.
func DistinctFunc[T any](seq iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var seen []T
		for v := range seq {
			dup := false
			for _, s := range seen {
				if eq(s, v) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			seen = append(seen, v)
			if !yield(v) {
				return
			}
		}
	}
}

// Remove yields seq without the first occurrence of target.
func Remove[T comparable](seq iter.Seq[T], target T) iter.Seq[T] {
	return RemoveFunc(seq, target, func(a, b T) bool { return a == b })
}

// RemoveFunc is Remove under a caller-supplied equality.
func RemoveFunc[T any](seq iter.Seq[T], target T, eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		removed := false
		for v := range seq {
			if !removed && eq(v, target) {
				removed = true
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Difference yields a with one occurrence removed for each element of
// b: the maximally lazy set difference. Elements keep a's order and
// surplus duplicates survive; b is materialized, a is streamed.
func Difference[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		pending := make(map[T]int)
		for v := range b {
			pending[v]++
		}
		for v := range a {
			if pending[v] > 0 {
				pending[v]--
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DifferenceFunc is Difference under a caller-supplied equality.
func DifferenceFunc[T any](a, b iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		pending := slices.Collect(b)
		for v := range a {
			hit := -1
			for i, p := range pending {
				if eq(v, p) {
					hit = i
					break
				}
			}
			if hit >= 0 {
				pending = slices.Delete(pending, hit, hit+1)
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Union yields all of a (duplicates included), then the distinct
// elements of b that do not occur in a: the maximally lazy union,
// first-appearance order. a may be unbounded as long as the consumer
// stops within it.
func Union[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		inA := make(map[T]struct{})
		for v := range a {
			inA[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
		for v := range Distinct(b) {
			if _, ok := inA[v]; ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// UnionFunc is Union under a caller-supplied equality.
func UnionFunc[T any](a, b iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var inA []T
		for v := range a {
			inA = append(inA, v)
			if !yield(v) {
				return
			}
		}
		for v := range DistinctFunc(b, eq) {
			found := false
			for _, s := range inA {
				if eq(s, v) {
					found = true
					break
				}
			}
			if found {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Intersect yields the elements of a (duplicates included) that occur
// somewhere in b: the maximally lazy intersection, in a's order.
// b is materialized, a is streamed.
func Intersect[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		inB := make(map[T]struct{})
		for v := range b {
			inB[v] = struct{}{}
		}
		for v := range a {
			if _, ok := inB[v]; !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// IntersectFunc is Intersect under a caller-supplied equality.
func IntersectFunc[T any](a, b iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		inB := slices.Collect(b)
		for v := range a {
			found := false
			for _, s := range inB {
				if eq(v, s) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// sortedDistinct canonicalizes a sequence: sorted under cmp, one
// element per equivalence class.
func sortedDistinct[T any](seq iter.Seq[T], cmp func(a, b T) int) []T {
	s := slices.Collect(SortFunc(seq, cmp))
	return slices.CompactFunc(s, func(x, y T) bool { return cmp(x, y) == 0 })
}

// mergeSets walks two canonicalized slices in lockstep, keeping
// elements by which side they occur on.
func mergeSets[T any](a, b []T, cmp func(x, y T) int, keepA, keepB, keepBoth bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		i, j := 0, 0
		for i < len(a) && j < len(b) {
			switch c := cmp(a[i], b[j]); {
			case c < 0:
				if keepA && !yield(a[i]) {
					return
				}
				i++
			case c > 0:
				if keepB && !yield(b[j]) {
					return
				}
				j++
			default:
				if keepBoth && !yield(a[i]) {
					return
				}
				i++
				j++
			}
		}
		for ; i < len(a); i++ {
			if keepA && !yield(a[i]) {
				return
			}
		}
		for ; j < len(b); j++ {
			if keepB && !yield(b[j]) {
				return
			}
		}
	}
}

// SortedUnionFunc yields the canonicalized union of a and b: sorted
// under cmp, de-duplicated, deterministic. The eager, deterministic
// counterpart of [UnionFunc]; both inputs must be finite.
func SortedUnionFunc[T any](a, b iter.Seq[T], cmp func(x, y T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		mergeSets(sortedDistinct(a, cmp), sortedDistinct(b, cmp), cmp, true, true, true)(yield)
	}
}

// SortedUnion is SortedUnionFunc with the natural order.
func SortedUnion[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return SortedUnionFunc(a, b, cmp.Compare)
}

// SortedIntersectFunc yields the canonicalized intersection of a and b.
func SortedIntersectFunc[T any](a, b iter.Seq[T], cmp func(x, y T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		mergeSets(sortedDistinct(a, cmp), sortedDistinct(b, cmp), cmp, false, false, true)(yield)
	}
}

// SortedIntersect is SortedIntersectFunc with the natural order.
func SortedIntersect[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return SortedIntersectFunc(a, b, cmp.Compare)
}

// SortedDifferenceFunc yields the canonicalized difference of a and b:
// the classes of a with no representative in b.
func SortedDifferenceFunc[T any](a, b iter.Seq[T], cmp func(x, y T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		mergeSets(sortedDistinct(a, cmp), sortedDistinct(b, cmp), cmp, true, false, false)(yield)
	}
}

// SortedDifference is SortedDifferenceFunc with the natural order.
func SortedDifference[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return SortedDifferenceFunc(a, b, cmp.Compare)
}
