package models

import "time"

// Model identifies one of the supported forecasting models. The set is
// closed: the selector and the accuracy evaluator switch exhaustively
// over exactly these three values.
type Model string

const (
	ModelMovingAverage        Model = "MovingAverage"
	ModelExponentialSmoothing Model = "ExponentialSmoothing"
	ModelARIMA                Model = "ARIMA"
)

// AllModels lists the models in their fixed evaluation priority order.
// The selector breaks MAE ties by this order.
func AllModels() []Model {
	return []Model{ModelMovingAverage, ModelExponentialSmoothing, ModelARIMA}
}

// IsValidModel returns true if m names a supported model.
func IsValidModel(m Model) bool {
	switch m {
	case ModelMovingAverage, ModelExponentialSmoothing, ModelARIMA:
		return true
	default:
		return false
	}
}

// PredictionResult is one dated prediction. Actual is set for every
// backtest entry (date <= last historical date) and nil for every
// forecast-horizon entry; consumers split the sequence at the first nil.
type PredictionResult struct {
	Date      time.Time `json:"date"`
	Actual    *float64  `json:"actual,omitempty"`
	Predicted float64   `json:"predicted"`
	Model     Model     `json:"model"`
}

// ModelMetrics carries accuracy scores for one model, both rounded to
// two decimal places.
type ModelMetrics struct {
	MAE float64 `json:"mae"`
	MPE float64 `json:"mpe"`
}

// Recommendation names the lowest-error model together with the full
// metrics map so callers can display comparative accuracy.
type Recommendation struct {
	BestModel Model                  `json:"best_model"`
	Metrics   map[Model]ModelMetrics `json:"metrics"`
}
