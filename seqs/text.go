package seqs

import (
	"iter"
	"strings"
	"unicode"
)

// Runes yields the runes of s in order.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// SplitFunc splits seq at every element matching isSep, yielding the
// stretches between separators. Separators are consumed, not emitted;
// adjacent separators produce empty stretches, so n separators always
// give n+1 pieces. An empty input gives one empty piece.
func SplitFunc[T any](seq iter.Seq[T], isSep func(T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		next, stop := iter.Pull(seq)
		defer stop()
		for {
			piece := []T{}
			sawSep := false
			for {
				v, ok := next()
				if !ok {
					break
				}
				if isSep(v) {
					sawSep = true
					break
				}
				piece = append(piece, v)
			}
			if !yield(piece) {
				return
			}
			if !sawSep {
				return
			}
		}
	}
}

// Split is SplitFunc with a fixed separator element.
func Split[T comparable](seq iter.Seq[T], sep T) iter.Seq[[]T] {
	return SplitFunc(seq, func(v T) bool { return v == sep })
}

// Lines yields the lines of s, split on '\n' with the newlines removed.
// An empty string has no lines, and a trailing newline does not produce
// a trailing empty line: Lines("a\nb\n") yields "a" then "b", the exact
// inverse of [JoinLines].
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == "" {
			return
		}
		pieces := Map(SplitFunc(Runes(s), func(r rune) bool { return r == '\n' }), func(rs []rune) string {
			return string(rs)
		})
		// one piece of lookahead: hold each piece back until the next
		// arrives, so the empty piece after a trailing newline can be
		// dropped
		trailing := strings.HasSuffix(s, "\n")
		var prev string
		have := false
		for p := range pieces {
			if have && !yield(prev) {
				return
			}
			prev, have = p, true
		}
		if have && !trailing {
			yield(prev)
		}
	}
}

// Words yields the whitespace-separated words of s. Runs of whitespace
// count as a single separator and never produce empty words, so
// JoinWords(Words(s)) normalizes spacing rather than round-tripping.
func Words(s string) iter.Seq[string] {
	pieces := Map(SplitFunc(Runes(s), unicode.IsSpace), func(rs []rune) string {
		return string(rs)
	})
	return Filter(pieces, func(w string) bool { return w != "" })
}

// JoinLines concatenates lines, terminating every line with '\n'.
func JoinLines(lines iter.Seq[string]) string {
	var b strings.Builder
	for l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// JoinWords concatenates words separated by single spaces.
func JoinWords(words iter.Seq[string]) string {
	var b strings.Builder
	first := true
	for w := range words {
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		first = false
	}
	return b.String()
}
