package forecast

import (
	"math"

	"PriceCast/internal/domain/models"
)

// MeanAbsoluteError averages |actual - predicted| over all entries with
// an actual value, rounded to two decimals. Returns 0 when no entry has
// an actual.
func MeanAbsoluteError(results []models.PredictionResult) float64 {
	var sum float64
	var n int
	for _, r := range results {
		if r.Actual == nil {
			continue
		}
		sum += math.Abs(*r.Actual - r.Predicted)
		n++
	}
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

// MeanPercentageError averages the signed percentage error
// (predicted - actual) / actual * 100 over all entries with an actual
// value, rounded to two decimals. Actuals of exactly zero are the
// caller's responsibility to exclude; price data is never legitimately
// zero.
func MeanPercentageError(results []models.PredictionResult) float64 {
	var sum float64
	var n int
	for _, r := range results {
		if r.Actual == nil {
			continue
		}
		sum += (r.Predicted - *r.Actual) / *r.Actual * 100
		n++
	}
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

// Evaluate computes both accuracy metrics for one model's results.
func Evaluate(results []models.PredictionResult) models.ModelMetrics {
	return models.ModelMetrics{
		MAE: MeanAbsoluteError(results),
		MPE: MeanPercentageError(results),
	}
}
