package partition

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Order(t *testing.T) {
	got, err := All(5)
	require.NoError(t, err)

	want := []Partition{
		{5},
		{4, 1},
		{3, 2},
		{3, 1, 1},
		{2, 2, 1},
		{2, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}
	assert.Equal(t, want, got)
}

func TestGenerate_Zero(t *testing.T) {
	got, err := All(0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
	assert.NotNil(t, got[0], "empty partition is present, not absent")
}

func TestGenerate_One(t *testing.T) {
	got, err := All(1)
	require.NoError(t, err)
	assert.Equal(t, []Partition{{1}}, got)
}

func TestGenerate_Negative(t *testing.T) {
	seq, err := Generate(-1)
	assert.Nil(t, seq)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "Generate", argErr.Op)
}

func TestGenerate_KeepsRepeatedValues(t *testing.T) {
	got, err := All(10)
	require.NoError(t, err)
	assert.Contains(t, got, Partition{5, 5})
}

func TestGenerate_SumsAndPositiveParts(t *testing.T) {
	for n := 0; n <= 20; n++ {
		seq, err := Generate(n)
		require.NoError(t, err)
		for p := range seq {
			assert.Equal(t, n, p.Sum(), "partition %v of %d", p, n)
			for _, v := range p {
				assert.GreaterOrEqual(t, v, 1, "partition %v of %d", p, n)
			}
			assert.True(t, slices.IsSortedFunc(p, func(a, b int) int { return b - a }),
				"partition %v is not non-increasing", p)
		}
	}
}

func TestGenerate_CompleteAndDistinct(t *testing.T) {
	for n := 0; n <= 25; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			all, err := All(n)
			require.NoError(t, err)

			seen := make(map[string]bool, len(all))
			for _, p := range all {
				key := p.String()
				assert.False(t, seen[key], "duplicate partition %s", key)
				seen[key] = true
			}

			want, err := Count(n)
			require.NoError(t, err)
			assert.Len(t, all, want)
		})
	}
}

func TestGenerate_Restartable(t *testing.T) {
	seq, err := Generate(7)
	require.NoError(t, err)

	var first, second []Partition
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
	}
	assert.Equal(t, first, second)
}

func TestGenerate_EarlyStop(t *testing.T) {
	seq, err := Generate(45)
	require.NoError(t, err)

	var got []Partition
	for p := range seq {
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []Partition{{45}, {44, 1}, {43, 2}}, got)
}

func TestGenerate_YieldsIndependentSlices(t *testing.T) {
	seq, err := Generate(4)
	require.NoError(t, err)

	var got []Partition
	for p := range seq {
		if len(p) > 0 {
			p[0] = 99
		}
		got = append(got, p)
	}
	// Mutating a yielded value must not leak into later partitions.
	assert.Equal(t, Partition{99, 1}, got[1])
	assert.Equal(t, Partition{99, 2}, got[2])
	assert.Equal(t, Partition{99, 1, 1, 1}, got[4])
}

func TestCount(t *testing.T) {
	known := map[int]int{0: 1, 1: 1, 2: 2, 3: 3, 4: 5, 5: 7, 10: 42, 20: 627, 45: 89134}
	for n, want := range known {
		got, err := Count(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "p(%d)", n)
	}

	_, err := Count(-3)
	assert.True(t, IsInvalidArgument(err))
}
