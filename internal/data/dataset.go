package data

import (
	"fmt"

	"go.uber.org/multierr"
)

// Dataset pairs feature rows with their binary labels.
type Dataset struct {
	X [][]float64
	Y []float64
}

func (d Dataset) Len() int { return len(d.Y) }

// Subset copies the rows at idx, in the order given. Row slices are shared.
func (d Dataset) Subset(idx []int) Dataset {
	out := Dataset{X: make([][]float64, len(idx)), Y: make([]float64, len(idx))}
	for i, j := range idx {
		out.X[i] = d.X[j]
		out.Y[i] = d.Y[j]
	}
	return out
}

// Validate reports every shape and range problem found, not just the first.
func (d Dataset) Validate() error {
	var err error
	if len(d.X) != len(d.Y) {
		err = multierr.Append(err, fmt.Errorf("%d feature rows but %d labels", len(d.X), len(d.Y)))
	}
	width := -1
	for i, row := range d.X {
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			err = multierr.Append(err, fmt.Errorf("row %d has %d features, expected %d", i, len(row), width))
		}
		for j, v := range row {
			if v < 0 || v > 1 {
				err = multierr.Append(err, fmt.Errorf("row %d feature %d = %g outside [0,1]", i, j, v))
			}
		}
	}
	for i, y := range d.Y {
		if y != 0 && y != 1 {
			err = multierr.Append(err, fmt.Errorf("label %d = %g not in {0,1}", i, y))
		}
	}
	return err
}
