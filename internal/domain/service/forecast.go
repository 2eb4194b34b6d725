package service

import (
	"PriceCast/internal/domain/models"
)

// Forecaster produces backtest plus horizon predictions for a daily close
// series. The input series must be ascending by date; implementations do
// not re-sort. days is the forecast horizon length in business days.
type Forecaster interface {
	Model() models.Model
	Forecast(series []models.PricePoint, days int) ([]models.PredictionResult, error)
}
