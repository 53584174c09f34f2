package seqs

import "iter"

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

type Triple[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

type Quad[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// ZipWith combines two sequences elementwise with f, stopping as soon
// as either input is exhausted. Derived: an unfold whose step consumes
// one element from each input per produced element, so the result is
// productive even when both inputs are unbounded.
func ZipWith[A, B, C any](a iter.Seq[A], b iter.Seq[B], f func(A, B) C) iter.Seq[C] {
	return func(yield func(C) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		var zero C
		Unfold(func(_ Unit, _ C) (Unit, C, bool) {
			x, ok := nextA()
			if !ok {
				return Unit{}, zero, false
			}
			y, ok := nextB()
			if !ok {
				return Unit{}, zero, false
			}
			return Unit{}, f(x, y), true
		}, Unit{}, zero).Seq()(yield)
	}
}

// ZipWith3 is ZipWith over three sequences.
func ZipWith3[A, B, C, D any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], f func(A, B, C) D) iter.Seq[D] {
	return func(yield func(D) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		nextC, stopC := iter.Pull(c)
		defer stopC()
		var zero D
		Unfold(func(_ Unit, _ D) (Unit, D, bool) {
			x, okX := nextA()
			y, okY := nextB()
			z, okZ := nextC()
			if !okX || !okY || !okZ {
				return Unit{}, zero, false
			}
			return Unit{}, f(x, y, z), true
		}, Unit{}, zero).Seq()(yield)
	}
}

// ZipWith4 is ZipWith over four sequences.
func ZipWith4[A, B, C, D, E any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], d iter.Seq[D], f func(A, B, C, D) E) iter.Seq[E] {
	return func(yield func(E) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		nextC, stopC := iter.Pull(c)
		defer stopC()
		nextD, stopD := iter.Pull(d)
		defer stopD()
		var zero E
		Unfold(func(_ Unit, _ E) (Unit, E, bool) {
			w, okW := nextA()
			x, okX := nextB()
			y, okY := nextC()
			z, okZ := nextD()
			if !okW || !okX || !okY || !okZ {
				return Unit{}, zero, false
			}
			return Unit{}, f(w, x, y, z), true
		}, Unit{}, zero).Seq()(yield)
	}
}

func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return ZipWith(seq1, seq2, func(v1 T1, v2 T2) Pair[T1, T2] {
		return Pair[T1, T2]{v1, v2}
	})
}

// Zip3 pairs up three sequences into Triples.
func Zip3[T1, T2, T3 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], seq3 iter.Seq[T3]) iter.Seq[Triple[T1, T2, T3]] {
	return ZipWith3(seq1, seq2, seq3, func(v1 T1, v2 T2, v3 T3) Triple[T1, T2, T3] {
		return Triple[T1, T2, T3]{v1, v2, v3}
	})
}

// Zip4 pairs up four sequences into Quads.
func Zip4[T1, T2, T3, T4 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], seq3 iter.Seq[T3], seq4 iter.Seq[T4]) iter.Seq[Quad[T1, T2, T3, T4]] {
	return ZipWith4(seq1, seq2, seq3, seq4, func(v1 T1, v2 T2, v3 T3, v4 T4) Quad[T1, T2, T3, T4] {
		return Quad[T1, T2, T3, T4]{v1, v2, v3, v4}
	})
}

// ZipLongest zips two sequences together.
// When one sequence is exhausted, it continues with the fill values.
// use fill1 and fill2 to fill in the missing values from seq1 and seq2 respectively.
func ZipLongest[T1, T2 any](
	seq1 iter.Seq[T1],
	seq2 iter.Seq[T2],
	fill1 T1,
	fill2 T2,
) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()

			// all done
			if !ok1 && !ok2 {
				return
			}

			// fill missing values
			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// Unzip splits a sequence of pairs into its two projections. Each
// projection lazily re-reads the source.
func Unzip[T1, T2 any](seq iter.Seq[Pair[T1, T2]]) (iter.Seq[T1], iter.Seq[T2]) {
	return Map(seq, func(p Pair[T1, T2]) T1 { return p.V1 }),
		Map(seq, func(p Pair[T1, T2]) T2 { return p.V2 })
}

// Unzip3 splits a sequence of triples into its three projections.
func Unzip3[T1, T2, T3 any](seq iter.Seq[Triple[T1, T2, T3]]) (iter.Seq[T1], iter.Seq[T2], iter.Seq[T3]) {
	return Map(seq, func(t Triple[T1, T2, T3]) T1 { return t.V1 }),
		Map(seq, func(t Triple[T1, T2, T3]) T2 { return t.V2 }),
		Map(seq, func(t Triple[T1, T2, T3]) T3 { return t.V3 })
}
