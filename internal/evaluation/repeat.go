package evaluation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"evaltools/internal/data"
	"evaltools/internal/metrics"
	"evaltools/internal/models"
)

var ErrNoRuns = errors.New("number of runs must be positive")

// splitFunc yields the train and test sets of round k.
type splitFunc func(k int) (train, test data.Dataset, err error)

// EvaluateMultipleTimes resets, splits at random, trains and tests the model
// noRuns times. Precision and recall in the summary come from the last run.
func (e *Evaluator) EvaluateMultipleTimes(model models.Classifier, ds data.Dataset, noRuns int, opts Options) (Summary, error) {
	if noRuns < 1 {
		return Summary{}, fmt.Errorf("%w: got %d", ErrNoRuns, noRuns)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	split := func(int) (data.Dataset, data.Dataset, error) {
		return data.TrainTestSplit(ds, opts.TestSize, rng)
	}
	return e.repeat(MethodRepeatedHoldout, model, ds, noRuns, split, opts)
}

// EvaluateKFold runs one reset/train/test round per fold of a seeded
// k-fold partition.
func (e *Evaluator) EvaluateKFold(model models.Classifier, ds data.Dataset, nFolds int, opts Options) (Summary, error) {
	folds, err := data.KFold(ds.Len(), nFolds, opts.Seed)
	if err != nil {
		return Summary{}, err
	}
	split := func(k int) (data.Dataset, data.Dataset, error) {
		return ds.Subset(folds[k].Train), ds.Subset(folds[k].Test), nil
	}
	return e.repeat(MethodKFold, model, ds, nFolds, split, opts)
}

func (e *Evaluator) repeat(method Method, model models.Classifier, ds data.Dataset, rounds int, split splitFunc, opts Options) (Summary, error) {
	if opts.Validate {
		if err := ds.Validate(); err != nil {
			return Summary{}, fmt.Errorf("invalid dataset: %w", err)
		}
	}
	log := e.logger().With(zap.String("method", string(method)))
	var rec runRecord
	for k := 0; k < rounds; k++ {
		model.SetToDefault()
		train, test, err := split(k)
		if err != nil {
			return Summary{}, fmt.Errorf("round %d: %w", k+1, err)
		}

		start := e.now()
		if err := model.Train(train.X, train.Y); err != nil {
			return Summary{}, fmt.Errorf("round %d: train: %w", k+1, err)
		}
		trainTime := e.now().Sub(start)

		// Test time covers prediction plus metric computation.
		start = e.now()
		res, err := e.Test(model, test.X, test.Y, opts.NewThreshold)
		if err != nil {
			return Summary{}, fmt.Errorf("round %d: test: %w", k+1, err)
		}
		testTime := e.now().Sub(start)

		rec.add(res, trainTime, testTime)
		log.Debug("Evaluation round",
			zap.Int("round", k+1),
			zap.Int("train_size", train.Len()),
			zap.Int("test_size", test.Len()),
			zap.Float64("accuracy", res.Accuracy),
			zap.Float64("roc_auc", res.AUC),
			zap.Duration("train_time", trainTime),
			zap.Duration("test_time", testTime),
		)
	}

	s := rec.summary(method)
	s.Representation = model.Representation(opts.CoefficientsThreshold, opts.CoeffPrecision)
	log.Info("Evaluation summary", s.Fields()...)
	if err := s.WriteReport(e.out()); err != nil {
		return s, fmt.Errorf("write report: %w", err)
	}
	return s, nil
}

// runRecord collects per-round metrics until they are summarised.
type runRecord struct {
	accuracy  []float64
	tpRate    []float64
	tnRate    []float64
	precision []float64
	recall    []float64
	auc       []float64
	trainTime []float64
	testTime  []float64
	last      Result
}

func (r *runRecord) add(res Result, trainTime, testTime time.Duration) {
	r.accuracy = append(r.accuracy, res.Accuracy)
	r.tpRate = append(r.tpRate, res.TPRate)
	r.tnRate = append(r.tnRate, res.TNRate)
	r.precision = append(r.precision, res.Precision)
	r.recall = append(r.recall, res.Recall)
	r.auc = append(r.auc, res.AUC)
	r.trainTime = append(r.trainTime, trainTime.Seconds())
	r.testTime = append(r.testTime, testTime.Seconds())
	r.last = res
}

func (r *runRecord) summary(method Method) Summary {
	s := Summary{Method: method, Runs: len(r.accuracy)}
	s.AvgAccuracy, s.VarAccuracy = metrics.MeanVariance(r.accuracy)
	s.AvgTPRate, _ = metrics.MeanVariance(r.tpRate)
	s.AvgTNRate, _ = metrics.MeanVariance(r.tnRate)
	s.AvgAUC, s.VarAUC = metrics.MeanVariance(r.auc)
	s.AvgTrainTime, s.VarTrainTime = metrics.MeanVariance(r.trainTime)
	s.AvgTestTime, s.VarTestTime = metrics.MeanVariance(r.testTime)
	s.MeanPrecision, _ = metrics.MeanVariance(r.precision)
	s.MeanRecall, _ = metrics.MeanVariance(r.recall)
	s.LastPrecision = r.last.Precision
	s.LastRecall = r.last.Recall
	return s
}
