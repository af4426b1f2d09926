package models

//go:generate mockgen -source=model.go -destination=mock_model.go -package=models

// Classifier is the capability set the evaluation harness needs from a binary
// classifier. Implementations are reset and retrained in place, so a single
// instance must not be shared between concurrent evaluations.
type Classifier interface {
	// SetToDefault returns the model to its untrained initial state.
	SetToDefault()
	Train(X [][]float64, Y []float64) error
	// Predict returns one binary decision (0 or 1) and one real valued score per row.
	Predict(X [][]float64) (binary []float64, scores []float64, err error)
	// Representation describes the current model, hiding coefficients below
	// threshold and rounding to precision decimals (no rounding when precision < 0).
	Representation(threshold float64, precision int) string
}
