package forecast

import (
	"PriceCast/internal/domain/models"
	domsvc "PriceCast/internal/domain/service"
)

// ExponentialSmoothing predicts via single exponential smoothing with
// factor Alpha. Each backtest prediction is a one-step-ahead estimate:
// the smoothed state is updated with the previous actual before the
// current one is seen.
type ExponentialSmoothing struct {
	Alpha float64
}

// NewExponentialSmoothing creates a smoothing forecaster; alpha <= 0
// selects the default.
func NewExponentialSmoothing(alpha float64) ExponentialSmoothing {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return ExponentialSmoothing{Alpha: alpha}
}

func (ExponentialSmoothing) Model() models.Model { return models.ModelExponentialSmoothing }

func (e ExponentialSmoothing) Forecast(series []models.PricePoint, days int) ([]models.PredictionResult, error) {
	if len(series) < 2 {
		return nil, insufficientData(e.Model(), 2, len(series))
	}

	results := make([]models.PredictionResult, 0, len(series)-1+days)

	smoothed := series[0].Close
	for i := 1; i < len(series); i++ {
		smoothed = e.Alpha*series[i-1].Close + (1-e.Alpha)*smoothed
		actual := series[i].Close
		results = append(results, models.PredictionResult{
			Date:      series[i].Date,
			Actual:    &actual,
			Predicted: round2(smoothed),
			Model:     e.Model(),
		})
	}

	// Future: no further ground truth, so each step chains off the
	// previous emitted prediction.
	lastActual := series[len(series)-1].Close
	last := series[len(series)-1].Date
	for step := 0; step < days; step++ {
		smoothed = e.Alpha*lastActual + (1-e.Alpha)*smoothed
		pred := round2(smoothed)
		results = append(results, models.PredictionResult{
			Date:      NextBusinessDay(last, step+1),
			Predicted: pred,
			Model:     e.Model(),
		})
		lastActual = pred
	}

	return results, nil
}

var _ domsvc.Forecaster = ExponentialSmoothing{}
