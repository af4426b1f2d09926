// Package metrics holds the scoring primitives used by the evaluation
// harness: confusion counting, threshold overrides, ROC-AUC and
// population statistics.
package metrics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// ErrSingleClass is returned by RocAUC when the labels hold only one class.
var ErrSingleClass = errors.New("only one class present in labels, ROC AUC is undefined")

// Confusion counts are kept as floats, the way the rates are computed from them.
type Confusion struct {
	Errors float64
	P      float64
	N      float64
	TP     float64
	TN     float64
}

// FP is the false positive count.
func (c Confusion) FP() float64 { return c.N - c.TN }

// Count walks label/prediction pairs once. Labels other than 0 and 1 only
// contribute to Errors.
func Count(labels, preds []float64) Confusion {
	var c Confusion
	n := len(labels)
	if len(preds) < n {
		n = len(preds)
	}
	for i := 0; i < n; i++ {
		y, p := labels[i], preds[i]
		if p != y {
			c.Errors++
		}
		switch y {
		case 1:
			c.P++
			if p == 1 {
				c.TP++
			}
		case 0:
			c.N++
			if p == 0 {
				c.TN++
			}
		}
	}
	return c
}

// ApplyThreshold turns scores into 0/1 decisions, score >= thr meaning 1.
func ApplyThreshold(scores []float64, thr float64) []float64 {
	out := make([]float64, len(scores))
	for i := range scores {
		if scores[i] >= thr {
			out[i] = 1
		}
	}
	return out
}

// Rate is num/den. When den is 0 it falls back to 1 and reports false.
func Rate(num, den float64) (float64, bool) {
	if den == 0 {
		return 1.0, false
	}
	return num / den, true
}

// Binarize maps labels above 0.5 to 1 and everything else to 0.
func Binarize(labels []float64) []float64 {
	out := make([]float64, len(labels))
	for i, y := range labels {
		if y > 0.5 {
			out[i] = 1
		}
	}
	return out
}

// RocAUC is the area under the ROC curve of scores against 0/1 labels.
// Tied scores contribute half credit.
func RocAUC(labels, scores []float64) (float64, error) {
	if len(labels) != len(scores) {
		return 0, fmt.Errorf("roc auc: %d labels but %d scores", len(labels), len(scores))
	}
	y := append([]float64(nil), scores...)
	classes := make([]bool, len(labels))
	var pos int
	for i := range labels {
		classes[i] = labels[i] == 1
		if classes[i] {
			pos++
		}
	}
	if pos == 0 || pos == len(labels) {
		return 0, ErrSingleClass
	}
	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	return integrate.Trapezoidal(fpr, tpr), nil
}

// MeanVariance returns the mean and the population (biased) variance of xs.
func MeanVariance(xs []float64) (mean, variance float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.PopMeanVariance(xs, nil)
}
