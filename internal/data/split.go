package data

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

var (
	ErrInvalidSplit = errors.New("invalid train/test split")
	ErrInvalidFolds = errors.New("invalid number of folds")
)

// TrainTestSplit shuffles the dataset with rng and holds out ceil(testSize*n)
// rows for testing.
func TrainTestSplit(d Dataset, testSize float64, rng *rand.Rand) (train, test Dataset, err error) {
	n := d.Len()
	if testSize <= 0 || testSize >= 1 {
		return Dataset{}, Dataset{}, fmt.Errorf("%w: test size %g outside (0,1)", ErrInvalidSplit, testSize)
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTest == 0 || nTrain <= 0 {
		return Dataset{}, Dataset{}, fmt.Errorf("%w: %d samples with test size %g leaves an empty side", ErrInvalidSplit, n, testSize)
	}
	perm := rng.Perm(n)
	return d.Subset(perm[nTest:]), d.Subset(perm[:nTest]), nil
}

// Fold holds ascending row indices for one cross-validation round.
type Fold struct {
	Train []int
	Test  []int
}

// KFold shuffles 0..n-1 with seed and cuts it into nFolds contiguous test
// folds. The first n%nFolds folds get one extra sample; every index is tested
// exactly once.
func KFold(n, nFolds int, seed int64) ([]Fold, error) {
	if nFolds < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrInvalidFolds, nFolds)
	}
	if nFolds > n {
		return nil, fmt.Errorf("%w: %d folds for %d samples", ErrInvalidFolds, nFolds, n)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	folds := make([]Fold, 0, nFolds)
	start := 0
	for k := 0; k < nFolds; k++ {
		size := n / nFolds
		if k < n%nFolds {
			size++
		}
		inTest := make([]bool, n)
		test := append([]int(nil), perm[start:start+size]...)
		for _, i := range test {
			inTest[i] = true
		}
		sort.Ints(test)
		train := make([]int, 0, n-size)
		for i := 0; i < n; i++ {
			if !inTest[i] {
				train = append(train, i)
			}
		}
		folds = append(folds, Fold{Train: train, Test: test})
		start += size
	}
	return folds, nil
}
