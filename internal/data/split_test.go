package data

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexed builds a dataset whose single feature is the row index.
func indexed(n int) Dataset {
	d := Dataset{X: make([][]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		d.X[i] = []float64{float64(i)}
		d.Y[i] = float64(i % 2)
	}
	return d
}

func rows(d Dataset) []int {
	out := make([]int, d.Len())
	for i, x := range d.X {
		out[i] = int(x[0])
	}
	return out
}

func TestTrainTestSplit(t *testing.T) {
	d := indexed(7)
	train, test, err := TrainTestSplit(d, 0.25, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 2, test.Len())
	assert.Equal(t, 5, train.Len())

	all := append(rows(train), rows(test)...)
	sort.Ints(all)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, all)
	for i, x := range train.X {
		assert.Equal(t, float64(int(x[0])%2), train.Y[i])
	}
}

func TestTrainTestSplitSameSourceSameSplit(t *testing.T) {
	d := indexed(20)
	_, a, err := TrainTestSplit(d, 0.2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	_, b, err := TrainTestSplit(d, 0.2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, rows(a), rows(b))
}

func TestTrainTestSplitInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []float64{0, 1, -0.5, 1.5} {
		_, _, err := TrainTestSplit(indexed(10), size, rng)
		assert.ErrorIs(t, err, ErrInvalidSplit, "test size %g", size)
	}
	_, _, err := TrainTestSplit(indexed(1), 0.2, rng)
	assert.ErrorIs(t, err, ErrInvalidSplit)
	_, _, err = TrainTestSplit(Dataset{}, 0.2, rng)
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestKFoldCoversEveryIndexOnce(t *testing.T) {
	cases := []struct {
		n, k  int
		sizes []int
	}{
		{10, 5, []int{2, 2, 2, 2, 2}},
		{11, 3, []int{4, 4, 3}},
		{7, 7, []int{1, 1, 1, 1, 1, 1, 1}},
		{103, 10, []int{11, 11, 11, 10, 10, 10, 10, 10, 10, 10}},
	}
	for _, tc := range cases {
		folds, err := KFold(tc.n, tc.k, 30)
		require.NoError(t, err)
		require.Len(t, folds, tc.k)

		seen := make([]int, tc.n)
		for i, f := range folds {
			assert.Len(t, f.Test, tc.sizes[i])
			assert.Len(t, f.Train, tc.n-len(f.Test))
			assert.True(t, sort.IntsAreSorted(f.Test))
			assert.True(t, sort.IntsAreSorted(f.Train))

			inFold := map[int]bool{}
			for _, j := range f.Test {
				seen[j]++
				inFold[j] = true
			}
			for _, j := range f.Train {
				assert.False(t, inFold[j], "index %d in both train and test", j)
			}
		}
		for j, c := range seen {
			assert.Equal(t, 1, c, "n=%d k=%d index %d", tc.n, tc.k, j)
		}
	}
}

func TestKFoldSeeded(t *testing.T) {
	a, err := KFold(50, 5, 30)
	require.NoError(t, err)
	b, err := KFold(50, 5, 30)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := KFold(50, 5, 31)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestKFoldInvalid(t *testing.T) {
	_, err := KFold(10, 1, 30)
	assert.ErrorIs(t, err, ErrInvalidFolds)
	_, err = KFold(3, 4, 30)
	assert.ErrorIs(t, err, ErrInvalidFolds)
}
