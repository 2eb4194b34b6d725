package forecast

import (
	"PriceCast/internal/domain/models"
	domsvc "PriceCast/internal/domain/service"
)

// ARIMA is a simplified ARIMA(p,d,q) forecaster. The AR and MA
// coefficients are fixed, not estimated: each of the p AR coefficients is
// 1/p and each of the q MA coefficients is 1/q, an equal-weight average
// of lagged differenced values and lagged residuals.
type ARIMA struct {
	P int
	D int
	Q int
}

// NewARIMA creates an ARIMA forecaster; non-positive orders select the
// defaults (3,1,1).
func NewARIMA(p, d, q int) ARIMA {
	if p <= 0 {
		p = DefaultARIMAp
	}
	if d <= 0 {
		d = DefaultARIMAd
	}
	if q <= 0 {
		q = DefaultARIMAq
	}
	return ARIMA{P: p, D: d, Q: q}
}

func (ARIMA) Model() models.Model { return models.ModelARIMA }

func (a ARIMA) minLen() int {
	return max(a.P, a.Q) + a.D + 1
}

func (a ARIMA) Forecast(series []models.PricePoint, days int) ([]models.PredictionResult, error) {
	if len(series) < a.minLen() {
		return nil, insufficientData(a.Model(), a.minLen(), len(series))
	}

	closes := make([]float64, len(series))
	for i, p := range series {
		closes[i] = p.Close
	}

	// First-order differencing applied D times. diff[i] lines up with the
	// original index i+D.
	diff := closes
	for round := 0; round < a.D; round++ {
		next := make([]float64, len(diff)-1)
		for i := 1; i < len(diff); i++ {
			next[i-1] = diff[i] - diff[i-1]
		}
		diff = next
	}

	start := max(a.P, a.Q)
	results := make([]models.PredictionResult, 0, len(diff)-start+days)
	residuals := make([]float64, 0, len(diff)-start)

	for i := start; i < len(diff); i++ {
		pred := a.arTerm(diff, i) + a.maTerm(residuals)
		residuals = append(residuals, diff[i]-pred)

		orig := i + a.D
		actual := closes[orig]
		results = append(results, models.PredictionResult{
			Date:      series[orig].Date,
			Actual:    &actual,
			Predicted: round2(pred + a.undiffBase(closes[:orig])),
			Model:     a.Model(),
		})
	}

	// Future extrapolation keeps three trailing windows: the last P
	// differenced values, the last Q residuals (future residuals are zero
	// since no new ground truth exists), and the last D reconstructed
	// original-scale values.
	diffWin := newWindow(a.P, diff)
	residWin := newWindow(a.Q, residuals)
	baseWin := newWindow(a.D, closes)
	last := series[len(series)-1].Date

	for step := 0; step < days; step++ {
		predDiff := diffWin.mean() + a.maTerm(residWin.vals)
		pred := round2(predDiff + baseWin.sum())
		results = append(results, models.PredictionResult{
			Date:      NextBusinessDay(last, step+1),
			Predicted: pred,
			Model:     a.Model(),
		})
		diffWin.push(predDiff)
		residWin.push(0)
		baseWin.push(pred)
	}

	return results, nil
}

// arTerm averages the p differenced values preceding index i.
func (a ARIMA) arTerm(diff []float64, i int) float64 {
	var s float64
	for lag := 1; lag <= a.P; lag++ {
		s += diff[i-lag] / float64(a.P)
	}
	return s
}

// maTerm averages the last q residuals, treating missing ones as zero.
func (a ARIMA) maTerm(residuals []float64) float64 {
	var s float64
	for lag := 1; lag <= a.Q; lag++ {
		if idx := len(residuals) - lag; idx >= 0 {
			s += residuals[idx] / float64(a.Q)
		}
	}
	return s
}

// undiffBase reconstructs the original scale by adding back the D most
// recent original-scale values preceding the point, one per differencing
// level. Exact for d=1; best-effort for d>1 (pinned by regression tests).
func (a ARIMA) undiffBase(preceding []float64) float64 {
	var s float64
	for i := len(preceding) - a.D; i < len(preceding); i++ {
		s += preceding[i]
	}
	return s
}

var _ domsvc.Forecaster = ARIMA{}
