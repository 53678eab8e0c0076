package heap

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/navijation/njheap/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedValue struct {
	value  int
	source string
}

func TestMerge(t *testing.T) {
	for _, tc := range []struct {
		name     string
		seqs     []iter.Seq[int]
		expected []int
	}{
		{
			name:     "no sequences",
			expected: nil,
		},
		{
			name:     "empty sequences",
			seqs:     []iter.Seq[int]{util.SeqOf[int](), util.SeqOf[int]()},
			expected: nil,
		},
		{
			name:     "one sequence",
			seqs:     []iter.Seq[int]{util.SeqOf(1, 2, 3)},
			expected: []int{1, 2, 3},
		},
		{
			name: "interleaved",
			seqs: []iter.Seq[int]{
				util.SeqOf(1, 4, 7, 10),
				util.SeqOf[int](),
				util.SeqOf(2, 5, 8),
				util.SeqOf(0, 3, 6, 9, 11, 12),
			},
			expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		{
			name: "duplicates",
			seqs: []iter.Seq[int]{
				util.SeqOf(1, 1, 3),
				util.SeqOf(1, 3, 3),
			},
			expected: []int{1, 1, 1, 3, 3, 3},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slices.Collect(Merge(Ascending[int], tc.seqs...)))
		})
	}
}

func TestMerge_stable(t *testing.T) {
	byValue := ByKey(func(v taggedValue) int { return v.value })

	merged := slices.Collect(Merge(byValue,
		util.SeqOf(taggedValue{1, "a"}, taggedValue{2, "a"}, taggedValue{2, "a"}),
		util.SeqOf(taggedValue{1, "b"}, taggedValue{2, "b"}),
		util.SeqOf(taggedValue{1, "c"}),
	))

	assert.Equal(t, []taggedValue{
		{1, "a"}, {1, "b"}, {1, "c"},
		{2, "a"}, {2, "a"}, {2, "b"},
	}, merged)
}

func TestMerge_large(t *testing.T) {
	var (
		seqs     []iter.Seq[string]
		expected []string
	)
	for range 10 {
		source := make([]string, 100)
		for i := range source {
			source[i] = uuid.NewString()
		}
		slices.Sort(source)
		expected = append(expected, source...)
		seqs = append(seqs, util.SeqOf(source...))
	}
	slices.Sort(expected)

	merged := slices.Collect(Merge(strings.Compare, seqs...))
	assert.Equal(t, expected, merged)

	middle, exists := util.SeqAt(Merge(strings.Compare, seqs...), 500)
	require.True(t, exists)
	assert.Equal(t, expected[500], middle)
}

func TestMerge_stopEarly(t *testing.T) {
	var stopped []int
	source := func(id int, values ...int) iter.Seq[int] {
		return func(yield func(int) bool) {
			defer func() { stopped = append(stopped, id) }()
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		}
	}

	taken := slices.Collect(util.Take(Merge(Ascending[int],
		source(0, 1, 3, 5),
		source(1, 2, 4, 6),
	), 3))

	assert.Equal(t, []int{1, 2, 3}, taken)
	assert.ElementsMatch(t, []int{0, 1}, stopped)
}

func TestMerge_nilComparator(t *testing.T) {
	err := recoverError(func() {
		Merge[int](nil)
	})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
