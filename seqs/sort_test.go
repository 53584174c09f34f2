package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"refold/seqs"
)

func TestMerge(t *testing.T) {
	a := slices.Values([]int{1, 3, 5})
	b := slices.Values([]int{2, 3, 6})

	got := slices.Collect(seqs.Merge(a, b))
	assert.Equal(t, []int{1, 2, 3, 3, 5, 6}, got)

	t.Run("EmptySides", func(t *testing.T) {
		got := slices.Collect(seqs.Merge(seqs.Empty[int](), b))
		assert.Equal(t, []int{2, 3, 6}, got)
		got = slices.Collect(seqs.Merge(a, seqs.Empty[int]()))
		assert.Equal(t, []int{1, 3, 5}, got)
	})

	t.Run("LeftBias", func(t *testing.T) {
		type tagged struct {
			key  int
			side string
		}
		byKey := func(x, y tagged) int { return x.key - y.key }
		a := slices.Values([]tagged{{1, "a"}, {2, "a"}})
		b := slices.Values([]tagged{{1, "b"}, {3, "b"}})

		got := slices.Collect(seqs.MergeFunc(a, b, byKey))
		want := []tagged{{1, "a"}, {1, "b"}, {2, "a"}, {3, "b"}}
		assert.Equal(t, want, got, "equal keys should keep the left element first")
	})

	t.Run("Infinite", func(t *testing.T) {
		evens := seqs.Map(naturals, func(x int) int { return x * 2 })
		odds := seqs.Map(naturals, func(x int) int { return x*2 + 1 })
		front, _ := seqs.Take(seqs.Merge(evens, odds), 6)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, slices.Collect(front))
	})
}

func TestSort(t *testing.T) {
	input := slices.Values([]int{5, 2, 8, 1, 9, 2, 7})

	got := slices.Collect(seqs.Sort(input))
	assert.Equal(t, []int{1, 2, 2, 5, 7, 8, 9}, got)

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, slices.Collect(seqs.Sort(seqs.Empty[int]())))
	})

	t.Run("Singleton", func(t *testing.T) {
		assert.Equal(t, []int{3}, slices.Collect(seqs.Sort(seqs.Singleton(3))))
	})

	t.Run("AlreadySorted", func(t *testing.T) {
		sorted := slices.Values([]int{1, 2, 3, 4})
		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(seqs.Sort(sorted)))
	})

	t.Run("Reiterable", func(t *testing.T) {
		sorted := seqs.Sort(input)
		assert.Equal(t, slices.Collect(sorted), slices.Collect(sorted))
	})
}

func TestSortFuncStable(t *testing.T) {
	type record struct {
		key int
		seq int
	}
	byKey := func(a, b record) int { return a.key - b.key }

	input := slices.Values([]record{
		{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}, {1, 5},
	})

	got := slices.Collect(seqs.SortFunc(input, byKey))
	want := []record{
		{1, 1}, {1, 3}, {1, 5}, {2, 0}, {2, 2}, {2, 4},
	}
	assert.Equal(t, want, got, "equal keys must keep input order")

	t.Run("AllEqualKeys", func(t *testing.T) {
		// with every key equal the sort must be the identity; odd
		// lengths leave an unpaired run in each merge pass
		for _, n := range []int{5, 6, 7, 9} {
			var in []record
			for i := 0; i < n; i++ {
				in = append(in, record{1, i})
			}
			got := slices.Collect(seqs.SortFunc(slices.Values(in), byKey))
			assert.Equal(t, in, got, "length %d", n)
		}
	})
}

func TestInsert(t *testing.T) {
	sorted := slices.Values([]int{1, 3, 5, 7})

	got := slices.Collect(seqs.Insert(sorted, 4))
	assert.Equal(t, []int{1, 3, 4, 5, 7}, got)

	t.Run("Front", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 3, 5, 7}, slices.Collect(seqs.Insert(sorted, 0)))
	})

	t.Run("Back", func(t *testing.T) {
		assert.Equal(t, []int{1, 3, 5, 7, 9}, slices.Collect(seqs.Insert(sorted, 9)))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, []int{4}, slices.Collect(seqs.Insert(seqs.Empty[int](), 4)))
	})
}

func TestInsertPolicies(t *testing.T) {
	type record struct {
		key int
		tag string
	}
	byKey := func(a, b record) int { return a.key - b.key }
	sorted := slices.Values([]record{
		{1, "old"}, {2, "old"}, {3, "old"},
	})
	newcomer := record{2, "new"}

	after := slices.Collect(seqs.InsertFunc(sorted, newcomer, byKey))
	assert.Equal(t, []record{
		{1, "old"}, {2, "old"}, {2, "new"}, {3, "old"},
	}, after, "InsertFunc places the newcomer after existing equals")

	before := slices.Collect(seqs.InsertBeforeFunc(sorted, newcomer, byKey))
	assert.Equal(t, []record{
		{1, "old"}, {2, "new"}, {2, "old"}, {3, "old"},
	}, before, "InsertBeforeFunc places the newcomer before existing equals")
}

func TestInsertBefore(t *testing.T) {
	sorted := slices.Values([]int{1, 3, 5})

	// on distinct elements both policies agree
	assert.Equal(t,
		slices.Collect(seqs.Insert(sorted, 4)),
		slices.Collect(seqs.InsertBefore(sorted, 4)))
}

func TestInsertLazyPrefix(t *testing.T) {
	// the insertion point is found without reading past it
	inserted := seqs.Insert(naturals, 3)
	front, _ := seqs.Take(inserted, 6)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4}, slices.Collect(front))
}
