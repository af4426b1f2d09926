package evaluation

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

type Method string

const (
	MethodRepeatedHoldout Method = "repeated_holdout"
	MethodKFold           Method = "k_fold"
)

// Summary aggregates the rounds of a repeated evaluation. Variances are
// population variances; times are in seconds.
type Summary struct {
	Method         Method
	Runs           int
	Representation string

	AvgAccuracy float64
	VarAccuracy float64
	AvgTPRate   float64
	AvgTNRate   float64

	// LastPrecision and LastRecall come from the final round only.
	LastPrecision float64
	LastRecall    float64
	MeanPrecision float64
	MeanRecall    float64

	AvgAUC float64
	VarAUC float64

	AvgTrainTime float64
	VarTrainTime float64
	AvgTestTime  float64
	VarTestTime  float64
}

func (s Summary) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("runs", s.Runs),
		zap.Float64("accuracy", s.AvgAccuracy),
		zap.Float64("accuracy_var", s.VarAccuracy),
		zap.Float64("tp_rate", s.AvgTPRate),
		zap.Float64("tn_rate", s.AvgTNRate),
		zap.Float64("precision", s.LastPrecision),
		zap.Float64("recall", s.LastRecall),
		zap.Float64("mean_precision", s.MeanPrecision),
		zap.Float64("mean_recall", s.MeanRecall),
		zap.Float64("roc_auc", s.AvgAUC),
		zap.Float64("roc_auc_var", s.VarAUC),
		zap.Float64("train_time", s.AvgTrainTime),
		zap.Float64("train_time_var", s.VarTrainTime),
		zap.Float64("test_time", s.AvgTestTime),
		zap.Float64("test_time_var", s.VarTestTime),
	}
}

// WriteReport prints the human readable report of the summary.
func (s Summary) WriteReport(w io.Writer) error {
	lines := []string{
		"The model in the last iteration",
		s.Representation,
		fmt.Sprintf("Average accuracy: %v", s.AvgAccuracy),
		fmt.Sprintf("Variance of accuracy: %v", s.VarAccuracy),
		fmt.Sprintf("Average true positive rate: %v", s.AvgTPRate),
		fmt.Sprintf("Average true negative rate: %v", s.AvgTNRate),
		fmt.Sprintf("Precision: %v", s.LastPrecision),
		fmt.Sprintf("Recall: %v", s.LastRecall),
	}
	if s.Method == MethodKFold {
		lines = append(lines,
			fmt.Sprintf("Average Area Under the Receiver Operating Characteristic Score: %v", s.AvgAUC),
			fmt.Sprintf("Variance of Area Under the Receiver Operating Characteristic Score: %v", s.VarAUC),
		)
	} else {
		lines = append(lines, fmt.Sprintf("Area Under the Receiver Operating Characteristic Score: %v", s.AvgAUC))
	}
	lines = append(lines,
		fmt.Sprintf("Average training time: %v", s.AvgTrainTime),
		fmt.Sprintf("Variance of training time: %v", s.VarTrainTime),
		fmt.Sprintf("Average test time: %v", s.AvgTestTime),
		fmt.Sprintf("Variance of test time: %v", s.VarTestTime),
	)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
