// Package forecast implements the daily price forecasting engine: three
// statistical models (rolling-mean, exponential smoothing, simplified
// ARIMA), accuracy scoring, and model selection. All computation is pure
// and deterministic; given the same series and parameters every call
// yields identical output.
package forecast

import "math"

// Canonical model parameters used by the selector.
const (
	DefaultForecastDays = 7
	DefaultMAWindow     = 5
	SelectorMAWindow    = 7
	DefaultAlpha        = 0.3
	DefaultARIMAp       = 3
	DefaultARIMAd       = 1
	DefaultARIMAq       = 1
)

// round2 rounds to two decimal places. Every predicted value is rounded
// before it is emitted and before it is fed back into rolling state.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
