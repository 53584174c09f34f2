package seqs

import (
	"iter"

	"refold/lazylist"
)

// Unit is the empty struct, used to plug the accumulator slot a fold
// does not care about.
type Unit = struct{}

// Lazy is an unevaluated computation of a T. Calling it forces the
// value. The fold engine hands successors' state to a step as a Lazy so
// that a step which never calls it does no work for elements the
// consumer has not demanded.
type Lazy[T any] func() T

// memo caches the result of f so forcing the suspension is idempotent
// and the underlying work runs at most once.
func memo[T any](f func() T) Lazy[T] {
	var cached T
	done := false
	return func() T {
		if !done {
			cached = f()
			done = true
			f = nil
		}
		return cached
	}
}

// Step computes one transition of a bidirectional fold.
//
// x is the current element. left is the accumulator built strictly from
// the elements before x. right is the suspended accumulator of the
// elements after x: forcing it folds the remainder of the sequence.
//
// The first return value becomes the left accumulator for the next
// element. The second is this element's contribution visible to its
// predecessors, returned as a suspension so that fully lazy right folds
// never touch elements nobody asked for.
//
// The right suspension becomes valid only after the step returns: the
// successors' left accumulators do not exist until this step has
// produced its first return value. Force it from inside the returned
// suspension (a strict right fold) or not at all (a lazy one); forcing
// it during the call itself panics.
type Step[T, L, R any] func(x T, left L, right Lazy[R]) (L, Lazy[R])

// Result holds the outcome of a [Fold]. Both sides are computed on
// demand and memoized.
type Result[L, R any] struct {
	left  Lazy[L]
	right Lazy[R]
}

// Left forces the left accumulator: an iterative, constant-stack strict
// traversal of the entire sequence. Diverges on unbounded input, as any
// left fold must.
func (res *Result[L, R]) Left() L { return res.left() }

// Right forces the right accumulator. Elements are consumed on demand:
// when R is itself a lazy type (a sequence or a [lazylist.List]),
// consuming its first N elements costs N step applications regardless
// of the length of the input.
func (res *Result[L, R]) Right() R { return res.right() }

// Both forces both accumulators. On a finite sequence each source
// element is pulled exactly once; the step itself may be applied once
// per side, so steps must be pure.
func (res *Result[L, R]) Both() (L, R) { return res.left(), res.right() }

// newResult builds a Result from precomputed suspensions. Used by
// derived operations such as [MapAccum] that expose engine results
// under a specialized shape.
func newResult[L, R any](left Lazy[L], right Lazy[R]) *Result[L, R] {
	return &Result[L, R]{left: memo(left), right: memo(right)}
}

// Fold traverses seq once, threading a pair of accumulators: left flows
// strictly from the first element toward the last, right flows lazily
// from the last element toward the first. The empty sequence returns
// the seeds unchanged.
//
// The strictness contract, which every derived operation relies on:
//
//   - A step that never forces its right suspension is fully lazy on
//     that side; Right() stays productive even on unbounded input.
//   - A step that forces right inside the suspension it returns gives a
//     strict right fold: correct on finite input, divergent on
//     unbounded input, with stack depth bounded by the input length.
//   - A step whose left output depends on forcing right is ill-founded:
//     the rest of the fold needs the left value that the force is still
//     computing. In a lazy language this loops forever; here the engine
//     detects the cycle and panics with a diagnostic.
//
// The source is memoized in cache cells, so demanding both sides of one
// Result pulls each element from the underlying iterator exactly once.
// Element i+1 is never pulled before the consumer has demanded
// element i's contribution.
func Fold[T, L, R any](seq iter.Seq[T], step Step[T, L, R], left L, right R) *Result[L, R] {
	spine := lazylist.FromSeq(seq)

	// rightFrom suspends the right fold of l, whose predecessors
	// accumulated acc.
	var rightFrom func(l lazylist.List[T], acc L) Lazy[R]
	rightFrom = func(l lazylist.List[T], acc L) Lazy[R] {
		return memo(func() R {
			x, tail, ok := l.Uncons()
			if !ok {
				return right
			}
			var nextAcc L
			ready := false
			succ := memo(func() R {
				if !ready {
					panic("seqs: fold step forced the right accumulator while computing the left one")
				}
				return rightFrom(tail, nextAcc)()
			})
			acc2, out := step(x, acc, succ)
			nextAcc, ready = acc2, true
			return out()
		})
	}

	leftAll := memo(func() L {
		acc := left
		l := spine
		for {
			x, tail, ok := l.Uncons()
			if !ok {
				return acc
			}
			var nextAcc L
			ready := false
			succ := memo(func() R {
				if !ready {
					panic("seqs: fold step forced the right accumulator while computing the left one")
				}
				return rightFrom(tail, nextAcc)()
			})
			acc2, _ := step(x, acc, succ)
			nextAcc, ready = acc2, true
			acc = acc2
			l = tail
		}
	})

	return &Result[L, R]{left: leftAll, right: rightFrom(spine, left)}
}

// foldSeq is the right-fold specialization behind most
// sequence-producing derivations: the step maps one input element and
// the suspended rest of the output to the output from this element
// onward. The fold runs lazily inside the returned sequence, so
// constructing the result does no work and re-iterating it re-reads the
// pure source. Derivations that also need left context (such as
// [MapAccum]) call [Fold] directly.
func foldSeq[T, R any](seq iter.Seq[T], step func(x T, rest Lazy[lazylist.List[R]]) lazylist.List[R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		res := Fold(seq, func(x T, _ Unit, rest Lazy[lazylist.List[R]]) (Unit, Lazy[lazylist.List[R]]) {
			return Unit{}, func() lazylist.List[R] { return step(x, rest) }
		}, Unit{}, lazylist.Empty[R]())
		res.Right().Seq()(yield)
	}
}

// consRest prepends head to a suspended rest-of-output. The common
// cell constructor of foldSeq steps.
func consRest[R any](head R, rest Lazy[lazylist.List[R]]) lazylist.List[R] {
	return lazylist.Cons(head, lazylist.Suspend(rest))
}
