// Package evaluation scores binary classifiers on holdout data and repeats
// the reset/split/train/test cycle to average metrics over random splits or
// k-fold cross-validation.
package evaluation

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"evaltools/internal/metrics"
	"evaltools/internal/models"
	"evaltools/pkg/utils"
)

// Options configures the repeated evaluation drivers. Use DefaultOptions and
// override what differs.
type Options struct {
	// TestSize is the held out fraction for EvaluateMultipleTimes.
	TestSize float64
	// CoefficientsThreshold and CoeffPrecision are passed to the model's
	// Representation when the summary is printed.
	CoefficientsThreshold float64
	CoeffPrecision        int
	// NewThreshold overrides the model's binary decision when >= 0.
	NewThreshold float64
	// Seed drives the k-fold shuffle.
	Seed int64
	// Rand drives the random splits; nil means a time-seeded source.
	Rand *rand.Rand
	// Validate checks the dataset before the first run.
	Validate bool
}

func DefaultOptions() Options {
	return Options{
		TestSize:              0.2,
		CoefficientsThreshold: 0.0,
		CoeffPrecision:        -1,
		NewThreshold:          -1,
		Seed:                  30,
	}
}

// Result holds the metrics of a single Test call.
type Result struct {
	Accuracy  float64
	TPRate    float64
	TNRate    float64
	Precision float64
	// Recall is always TPRate.
	Recall float64
	AUC    float64
}

// Evaluator runs evaluations and reports them. The zero value logs through
// utils.Logger, prints to stdout and times with time.Now.
type Evaluator struct {
	Logger *zap.Logger
	Out    io.Writer
	Now    func() time.Time
}

func New(logger *zap.Logger, out io.Writer) *Evaluator {
	return &Evaluator{Logger: logger, Out: out, Now: time.Now}
}

func (e *Evaluator) logger() *zap.Logger {
	if e.Logger == nil {
		return utils.Logger()
	}
	return e.Logger
}

func (e *Evaluator) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e *Evaluator) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Test scores a trained model on (X, Y). A newThreshold >= 0 replaces the
// model's binary decisions with score >= newThreshold. When AUC is undefined
// the error comes with the rates computed so far.
func (e *Evaluator) Test(model models.Classifier, X [][]float64, Y []float64, newThreshold float64) (Result, error) {
	binary, scores, err := model.Predict(X)
	if err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}
	if newThreshold >= 0 {
		binary = metrics.ApplyThreshold(scores, newThreshold)
	}
	c := metrics.Count(Y, binary)

	var r Result
	var ok bool
	if r.TPRate, ok = metrics.Rate(c.TP, c.P); !ok {
		e.logger().Warn("No positive examples were found")
	}
	if r.TNRate, ok = metrics.Rate(c.TN, c.N); !ok {
		e.logger().Warn("No negative examples were found")
	}
	r.Recall = r.TPRate
	// The rates are kept when AUC is undefined.
	r.AUC, err = metrics.RocAUC(metrics.Binarize(Y), scores)
	if err != nil {
		return r, err
	}
	if d := c.TP + c.FP(); d != 0 {
		r.Precision = c.TP / d
	} else {
		// TP is 0 here as well.
		e.logger().Warn("No true positive examples were found")
		r.Precision = 0.0
	}
	r.Accuracy = 1.0 - c.Errors/float64(len(binary))
	return r, nil
}
