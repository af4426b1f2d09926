package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestSubset(t *testing.T) {
	d := Dataset{
		X: [][]float64{{0.1}, {0.2}, {0.3}, {0.4}},
		Y: []float64{0, 1, 0, 1},
	}
	s := d.Subset([]int{3, 0})
	assert.Equal(t, [][]float64{{0.4}, {0.1}}, s.X)
	assert.Equal(t, []float64{1, 0}, s.Y)
	assert.Equal(t, 2, s.Len())
}

func TestValidate(t *testing.T) {
	ok := Dataset{X: [][]float64{{0, 1}, {0.5, 0.25}}, Y: []float64{1, 0}}
	assert.NoError(t, ok.Validate())

	bad := Dataset{
		X: [][]float64{{0.5, 1.5}, {0.1}},
		Y: []float64{1, 0, 2},
	}
	err := bad.Validate()
	assert.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	assert.Contains(t, err.Error(), "2 feature rows but 3 labels")
	assert.Contains(t, err.Error(), "row 1 has 1 features, expected 2")
	assert.Contains(t, err.Error(), "outside [0,1]")
	assert.Contains(t, err.Error(), "label 2 = 2 not in {0,1}")
}
