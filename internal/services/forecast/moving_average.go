package forecast

import (
	"PriceCast/internal/domain/models"
	domsvc "PriceCast/internal/domain/service"
)

// MovingAverage predicts each value as the arithmetic mean of the
// preceding Window closes.
type MovingAverage struct {
	Window int
}

// NewMovingAverage creates a moving-average forecaster; window <= 0
// selects the default.
func NewMovingAverage(window int) MovingAverage {
	if window <= 0 {
		window = DefaultMAWindow
	}
	return MovingAverage{Window: window}
}

func (MovingAverage) Model() models.Model { return models.ModelMovingAverage }

func (m MovingAverage) Forecast(series []models.PricePoint, days int) ([]models.PredictionResult, error) {
	if len(series) < m.Window {
		return nil, insufficientData(m.Model(), m.Window, len(series))
	}

	results := make([]models.PredictionResult, 0, len(series)-m.Window+days)

	// Backtest: mean of the Window closes immediately preceding each index.
	for i := m.Window; i < len(series); i++ {
		var sum float64
		for _, p := range series[i-m.Window : i] {
			sum += p.Close
		}
		actual := series[i].Close
		results = append(results, models.PredictionResult{
			Date:      series[i].Date,
			Actual:    &actual,
			Predicted: round2(sum / float64(m.Window)),
			Model:     m.Model(),
		})
	}

	// Future: each step predicts the mean of the current window, then the
	// prediction itself slides in so later steps compound on prior forecasts.
	tail := make([]float64, 0, m.Window)
	for _, p := range series[len(series)-m.Window:] {
		tail = append(tail, p.Close)
	}
	win := newWindow(m.Window, tail)
	last := series[len(series)-1].Date
	for step := 0; step < days; step++ {
		pred := round2(win.mean())
		results = append(results, models.PredictionResult{
			Date:      NextBusinessDay(last, step+1),
			Predicted: pred,
			Model:     m.Model(),
		})
		win.push(pred)
	}

	return results, nil
}

var _ domsvc.Forecaster = MovingAverage{}
