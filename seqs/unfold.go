package seqs

import "iter"

// Source is a sequence producer created by [Unfold]. It is the dual of
// [Result]: the right side is the produced sequence, the left side the
// state threaded through production.
type Source[L, R any] struct {
	step  func(left L, right R) (L, R, bool)
	left  L
	right R
}

// Unfold produces a sequence by repeatedly stepping an accumulator
// pair. At each step the function receives the current left state and
// the previously produced element (the right seed on the first call)
// and either reports termination (ok false) or supplies the next left
// state together with one produced element.
//
// The production is productive: consuming the first N elements of
// [Source.Seq] performs exactly N step applications, so unbounded
// producers such as [Iterate] and [Repeat] are safe to consume
// incrementally. Steps must be pure; the Source restarts from its seeds
// every time the sequence is iterated.
func Unfold[L, R any](step func(left L, right R) (L, R, bool), left L, right R) *Source[L, R] {
	return &Source[L, R]{step: step, left: left, right: right}
}

// Seq returns the produced sequence. Each element is computed only when
// the consumer demands it; ceasing to iterate halts production.
func (s *Source[L, R]) Seq() iter.Seq[R] {
	return func(yield func(R) bool) {
		l, r := s.left, s.right
		for {
			l2, r2, ok := s.step(l, r)
			if !ok {
				return
			}
			if !yield(r2) {
				return
			}
			l, r = l2, r2
		}
	}
}

// Final runs the unfold to exhaustion, discarding produced elements,
// and returns the final left state. Diverges on non-terminating
// unfolds, the dual of [Result.Left] on unbounded input.
func (s *Source[L, R]) Final() L {
	l, r := s.left, s.right
	for {
		l2, r2, ok := s.step(l, r)
		if !ok {
			return l
		}
		l, r = l2, r2
	}
}
