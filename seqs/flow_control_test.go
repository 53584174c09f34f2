package seqs_test

import (
	"errors"
	"slices"
	"testing"

	"refold/seqs"
)

func TestTake(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Some", 3, []int{1, 2, 3}},
		{"All", 5, []int{1, 2, 3, 4, 5}},
		{"MoreThanAvailable", 10, []int{1, 2, 3, 4, 5}},
		{"Zero", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := seqs.Take(input, tt.n)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := slices.Collect(seq); !slices.Equal(got, tt.want) {
				t.Errorf("Take(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}

	t.Run("Negative", func(t *testing.T) {
		_, err := seqs.Take(input, -1)
		if !errors.Is(err, seqs.ErrNegativeCount) {
			t.Errorf("Expected ErrNegativeCount, got %v", err)
		}
	})

	t.Run("Infinite", func(t *testing.T) {
		seq, _ := seqs.Take(naturals, 4)
		if got := slices.Collect(seq); !slices.Equal(got, []int{0, 1, 2, 3}) {
			t.Errorf("Take on infinite input = %v", got)
		}
	})
}

func TestDrop(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Some", 2, []int{3, 4, 5}},
		{"All", 5, nil},
		{"MoreThanAvailable", 10, nil},
		{"Zero", 0, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := seqs.Drop(input, tt.n)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := slices.Collect(seq); !slices.Equal(got, tt.want) {
				t.Errorf("Drop(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}

	t.Run("Negative", func(t *testing.T) {
		_, err := seqs.Drop(input, -1)
		if !errors.Is(err, seqs.ErrNegativeCount) {
			t.Errorf("Expected ErrNegativeCount, got %v", err)
		}
	})
}

func TestSplitAt(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	front, back, err := seqs.SplitAt(input, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := slices.Collect(front); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("front = %v", got)
	}
	if got := slices.Collect(back); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("back = %v", got)
	}

	t.Run("Negative", func(t *testing.T) {
		_, _, err := seqs.SplitAt(input, -2)
		if !errors.Is(err, seqs.ErrNegativeCount) {
			t.Errorf("Expected ErrNegativeCount, got %v", err)
		}
	})
}

func TestTakeWhileDropWhile(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 10, 4, 5})
	small := func(x int) bool { return x < 10 }

	if got := slices.Collect(seqs.TakeWhile(input, small)); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("TakeWhile = %v", got)
	}
	// elements after the first failure are kept even if they satisfy the predicate
	if got := slices.Collect(seqs.DropWhile(input, small)); !slices.Equal(got, []int{10, 4, 5}) {
		t.Errorf("DropWhile = %v", got)
	}
}

func TestSpanBreak(t *testing.T) {
	input := slices.Values([]int{2, 4, 6, 7, 8})

	front, back := seqs.Span(input, func(x int) bool { return x%2 == 0 })
	if got := slices.Collect(front); !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("Span front = %v", got)
	}
	if got := slices.Collect(back); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("Span back = %v", got)
	}

	front, back = seqs.Break(input, func(x int) bool { return x > 5 })
	if got := slices.Collect(front); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("Break front = %v", got)
	}
	if got := slices.Collect(back); !slices.Equal(got, []int{6, 7, 8}) {
		t.Errorf("Break back = %v", got)
	}
}

func TestGroup(t *testing.T) {
	input := slices.Values([]int{1, 1, 2, 3, 3, 3, 1})

	var got [][]int
	for run := range seqs.Group(input) {
		got = append(got, run)
	}
	want := [][]int{{1, 1}, {2}, {3, 3, 3}, {1}}
	if len(got) != len(want) {
		t.Fatalf("Group = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("run %d = %v, want %v", i, got[i], want[i])
		}
	}

	t.Run("Infinite", func(t *testing.T) {
		// runs are emitted as soon as they end, so a grouped unbounded
		// sequence can still be consumed
		alternating := seqs.Map(naturals, func(x int) int { return x / 2 })
		runs, _ := seqs.Take(seqs.Group(alternating), 2)
		var got [][]int
		for run := range runs {
			got = append(got, run)
		}
		if len(got) != 2 || !slices.Equal(got[0], []int{0, 0}) || !slices.Equal(got[1], []int{1, 1}) {
			t.Errorf("Group on infinite input = %v", got)
		}
	})
}

func TestInits(t *testing.T) {
	input := slices.Values([]int{1, 2, 3})

	var got [][]int
	for p := range seqs.Inits(input) {
		got = append(got, slices.Collect(p))
	}
	want := [][]int{nil, {1}, {1, 2}, {1, 2, 3}}
	if len(got) != len(want) {
		t.Fatalf("Inits yielded %d prefixes, want %d", len(got), len(want))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("prefix %d = %v, want %v", i, got[i], want[i])
		}
	}

	t.Run("Infinite", func(t *testing.T) {
		prefixes, _ := seqs.Take(seqs.Inits(naturals), 3)
		var got [][]int
		for p := range prefixes {
			got = append(got, slices.Collect(p))
		}
		want := [][]int{nil, {0}, {0, 1}}
		for i := range want {
			if !slices.Equal(got[i], want[i]) {
				t.Errorf("prefix %d = %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestTails(t *testing.T) {
	input := slices.Values([]int{1, 2, 3})

	var got [][]int
	for s := range seqs.Tails(input) {
		got = append(got, slices.Collect(s))
	}
	want := [][]int{{1, 2, 3}, {2, 3}, {3}, nil}
	if len(got) != len(want) {
		t.Fatalf("Tails yielded %d suffixes, want %d", len(got), len(want))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("suffix %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHasPrefix(t *testing.T) {
	seq := slices.Values([]int{1, 2, 3, 4})

	if !seqs.HasPrefix(seq, slices.Values([]int{1, 2})) {
		t.Error("expected prefix match")
	}
	if seqs.HasPrefix(seq, slices.Values([]int{2, 3})) {
		t.Error("unexpected prefix match")
	}
	if !seqs.HasPrefix(seq, seqs.Empty[int]()) {
		t.Error("empty prefix should always match")
	}
	if seqs.HasPrefix(seqs.Empty[int](), slices.Values([]int{1})) {
		t.Error("nonempty prefix should not match the empty sequence")
	}
	// pulls only as many elements as the prefix is long
	if !seqs.HasPrefix(naturals, slices.Values([]int{0, 1, 2})) {
		t.Error("expected prefix match on infinite input")
	}
}

func TestHasSuffix(t *testing.T) {
	seq := slices.Values([]int{1, 2, 3, 4})

	if !seqs.HasSuffix(seq, slices.Values([]int{3, 4})) {
		t.Error("expected suffix match")
	}
	if seqs.HasSuffix(seq, slices.Values([]int{2, 3})) {
		t.Error("unexpected suffix match")
	}
	if !seqs.HasSuffix(seq, seqs.Empty[int]()) {
		t.Error("empty suffix should always match")
	}
	if seqs.HasSuffix(slices.Values([]int{1}), slices.Values([]int{0, 1})) {
		t.Error("suffix longer than the sequence should not match")
	}
}

func TestHasInfix(t *testing.T) {
	seq := slices.Values([]int{1, 2, 3, 4, 5})

	if !seqs.HasInfix(seq, slices.Values([]int{3, 4})) {
		t.Error("expected infix match")
	}
	if seqs.HasInfix(seq, slices.Values([]int{2, 4})) {
		t.Error("unexpected infix match")
	}
	if !seqs.HasInfix(seq, seqs.Empty[int]()) {
		t.Error("empty infix should always match")
	}

	t.Run("InfiniteTerminatesOnMatch", func(t *testing.T) {
		if !seqs.HasInfix(naturals, slices.Values([]int{41, 42, 43})) {
			t.Error("expected infix match on infinite input")
		}
	})
}

func TestStripPrefix(t *testing.T) {
	seq := slices.Values([]string{"a", "b", "c"})

	rest, ok := seqs.StripPrefix(seq, slices.Values([]string{"a", "b"}))
	if !ok {
		t.Fatal("expected prefix to strip")
	}
	if got := slices.Collect(rest); !slices.Equal(got, []string{"c"}) {
		t.Errorf("StripPrefix rest = %v", got)
	}

	if _, ok := seqs.StripPrefix(seq, slices.Values([]string{"b"})); ok {
		t.Error("expected no match")
	}
}

func TestChunk(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	var got [][]int
	for c := range seqs.Chunk(input, 2) {
		got = append(got, c)
	}
	want := [][]int{{1, 2}, {3, 4}, {5}}
	if len(got) != len(want) {
		t.Fatalf("Chunk = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("chunk %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindow(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	tests := []struct {
		name       string
		size, step int
		want       [][]int
	}{
		{"Overlapping", 3, 1, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}},
		{"Chunked", 2, 2, [][]int{{1, 2}, {3, 4}}},
		{"Gapped", 2, 3, [][]int{{1, 2}, {4, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][]int
			for w := range seqs.Window(input, tt.size, tt.step) {
				got = append(got, w)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Window(%d, %d) = %v, want %v", tt.size, tt.step, got, tt.want)
			}
			for i := range tt.want {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("window %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
