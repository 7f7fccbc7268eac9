package seqops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostrikov/seqcore/seqops"
)

func TestReverse(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	seqops.Reverse(v)
	require.Equal(t, []int{5, 4, 3, 2, 1}, v)

	// Involution: reversing twice restores the input.
	seqops.Reverse(v)
	require.Equal(t, []int{1, 2, 3, 4, 5}, v)

	// Edge sizes.
	empty := []int{}
	seqops.Reverse(empty)
	require.Empty(t, empty)
	single := []string{"x"}
	seqops.Reverse(single)
	require.Equal(t, []string{"x"}, single)
	even := []int{1, 2}
	seqops.Reverse(even)
	require.Equal(t, []int{2, 1}, even)
}

func TestRotateLeft(t *testing.T) {
	cases := []struct {
		k    int
		want []int
	}{
		{0, []int{1, 2, 3, 4, 5}},
		{1, []int{2, 3, 4, 5, 1}},
		{2, []int{3, 4, 5, 1, 2}},
		{5, []int{1, 2, 3, 4, 5}},  // full turn
		{7, []int{3, 4, 5, 1, 2}},  // k > n normalizes
		{-1, []int{5, 1, 2, 3, 4}}, // negative rotates right
	}
	for _, tc := range cases {
		v := []int{1, 2, 3, 4, 5}
		seqops.RotateLeft(v, tc.k)
		require.Equal(t, tc.want, v, "k=%d", tc.k)
	}

	seqops.RotateLeft([]int{}, 3) // must not fault
}

func TestRotateRight(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	seqops.RotateRight(v, 2)
	require.Equal(t, []int{4, 5, 1, 2, 3}, v)

	seqops.RotateRight([]int{}, 1) // must not fault
}

// TestRotate_Inverse checks RotateLeft(k) then RotateRight(k) is identity.
func TestRotate_Inverse(t *testing.T) {
	for k := 0; k <= 8; k++ {
		v := []int{9, 8, 7, 6, 5}
		seqops.RotateLeft(v, k)
		seqops.RotateRight(v, k)
		require.Equal(t, []int{9, 8, 7, 6, 5}, v, "k=%d", k)
	}
}

func TestMaxMin(t *testing.T) {
	values := []int{17, -3, 42, 0, 42, 9}

	max, err := seqops.Max(values)
	require.NoError(t, err)
	require.Equal(t, 42, max)

	min, err := seqops.Min(values)
	require.NoError(t, err)
	require.Equal(t, -3, min)

	_, err = seqops.Max([]int{})
	require.ErrorIs(t, err, seqops.ErrEmptySequence)
	_, err = seqops.Min([]int{})
	require.ErrorIs(t, err, seqops.ErrEmptySequence)

	sMax, err := seqops.Max([]string{"pear", "apple", "plum"})
	require.NoError(t, err)
	require.Equal(t, "plum", sMax)
}

func TestConcat(t *testing.T) {
	a := []int{1, 2}
	b := []int{3}
	got := seqops.Concat(a, b)
	require.Equal(t, []int{1, 2, 3}, got)

	// The result aliases neither input.
	got[0] = 99
	require.Equal(t, []int{1, 2}, a)

	require.Equal(t, []int{3}, seqops.Concat(nil, b))
	require.Empty(t, seqops.Concat[int](nil, nil))
}
