package forecast

import (
	"time"

	"PriceCast/internal/domain/models"
)

// dailySeries builds an ascending series of trading days starting at a
// fixed Monday, skipping weekends.
func dailySeries(closes ...float64) []models.PricePoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	pts := make([]models.PricePoint, 0, len(closes))
	d := start
	for _, c := range closes {
		pts = append(pts, models.PricePoint{Date: d, Close: c})
		d = NextBusinessDay(d, 1)
	}
	return pts
}

func constantSeries(n int, close float64) []models.PricePoint {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = close
	}
	return dailySeries(closes...)
}

// splitAtHorizon partitions results into backtest (Actual present) and
// forecast (Actual nil) portions.
func splitAtHorizon(results []models.PredictionResult) (backtest, horizon []models.PredictionResult) {
	for _, r := range results {
		if r.Actual != nil {
			backtest = append(backtest, r)
		} else {
			horizon = append(horizon, r)
		}
	}
	return backtest, horizon
}
