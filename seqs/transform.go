package seqs

import (
	"iter"
	"slices"

	"refold/lazylist"
)

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func TryFlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for s := range source {
			for t, err := range f(s) {
				if !yield(t, err) {
					return
				}
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Flatten concatenates a sequence of sequences.
func Flatten[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMap(seqs, func(s iter.Seq[T]) iter.Seq[T] { return s })
}

// Reverse yields the elements of seq in the opposite order.
// Derived: a strict left fold consing each element onto the
// accumulated list. Diverges on unbounded input.
func Reverse[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		Fold(seq, func(x T, acc lazylist.List[T], rest Lazy[Unit]) (lazylist.List[T], Lazy[Unit]) {
			return lazylist.Cons(x, acc), rest
		}, lazylist.Empty[T](), Unit{}).Left().Seq()(yield)
	}
}

// Intersperse yields the elements of seq with sep between each
// adjacent pair.
func Intersperse[T any](seq iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first && !yield(sep) {
				return
			}
			if !yield(v) {
				return
			}
			first = false
		}
	}
}

// Intercalate joins the inner sequences with sep between them.
func Intercalate[T any](sep iter.Seq[T], seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return Flatten(Intersperse(seqs, sep))
}

// Transpose swaps rows and columns: the nth output holds the nth
// element of every row that is long enough. Rows that run out are
// skipped, so ragged (and empty) rows shrink later columns rather than
// truncating them. The set of rows must be finite; the rows themselves
// may be unbounded.
func Transpose[T any](rows iter.Seq[iter.Seq[T]]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var nexts []func() (T, bool)
		for row := range rows {
			next, stop := iter.Pull(row)
			defer stop()
			nexts = append(nexts, next)
		}
		for {
			col := make([]T, 0, len(nexts))
			alive := nexts[:0]
			for _, next := range nexts {
				if v, ok := next(); ok {
					col = append(col, v)
					alive = append(alive, next)
				}
			}
			nexts = alive
			if len(col) == 0 {
				return
			}
			if !yield(col) {
				return
			}
		}
	}
}

// Permutations yields every ordering of the elements of seq, each as a
// fresh slice. The order of the orderings is unspecified. The
// permutation of the empty sequence is one empty slice.
func Permutations[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		elems := slices.Collect(seq)
		var rec func(current, remaining []T) bool
		rec = func(current, remaining []T) bool {
			if len(remaining) == 0 {
				return yield(slices.Clone(current))
			}
			for i := range remaining {
				rest := make([]T, 0, len(remaining)-1)
				rest = append(rest, remaining[:i]...)
				rest = append(rest, remaining[i+1:]...)
				if !rec(append(current, remaining[i]), rest) {
					return false
				}
			}
			return true
		}
		rec(nil, elems)
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// ScanRight yields the right fold of every suffix of seq, ending with
// initial itself. Derived: a strict right fold that conses each
// intermediate accumulator onto the accumulators of shorter suffixes.
// Diverges on unbounded input.
func ScanRight[T, R any](seq iter.Seq[T], initial R, f func(T, R) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		FoldRight(seq, lazylist.FromSlice([]R{initial}), func(x T, rest Lazy[lazylist.List[R]]) lazylist.List[R] {
			qs := rest()
			h, _ := qs.Head()
			return lazylist.Cons(f(x, h), qs)
		}).Seq()(yield)
	}
}

// MapAccum threads an accumulator left to right while producing one
// output element per input element: the showcase of the fold engine's
// accumulator pair. Left of the result is the final accumulator, Right
// the produced sequence; the sequence side stays productive on
// unbounded input as long as only it is demanded.
func MapAccum[T, S, R any](seq iter.Seq[T], initial S, f func(acc S, x T) (S, R)) *Result[S, iter.Seq[R]] {
	res := Fold(seq, func(x T, acc S, rest Lazy[lazylist.List[R]]) (S, Lazy[lazylist.List[R]]) {
		acc2, y := f(acc, x)
		return acc2, func() lazylist.List[R] { return lazylist.Cons(y, lazylist.Suspend(rest)) }
	}, initial, lazylist.Empty[R]())
	return newResult(
		func() S { return res.Left() },
		func() iter.Seq[R] { return res.Right().Seq() },
	)
}

// MapAccumRight is MapAccum with the accumulator threaded from the last
// element toward the first; the produced elements keep input order.
// Inherently strict in the whole input. Diverges on unbounded input.
func MapAccumRight[T, S, R any](seq iter.Seq[T], initial S, f func(acc S, x T) (S, R)) *Result[S, iter.Seq[R]] {
	type state struct {
		acc S
		out lazylist.List[R]
	}
	res := memo(func() state {
		return FoldRight(seq, state{initial, lazylist.Empty[R]()}, func(x T, rest Lazy[state]) state {
			p := rest()
			acc2, y := f(p.acc, x)
			return state{acc2, lazylist.Cons(y, p.out)}
		})
	})
	return newResult(
		func() S { return res().acc },
		func() iter.Seq[R] { return res().out.Seq() },
	)
}
