package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceCast/internal/domain/models"
)

func TestExponentialSmoothingTwoPoints(t *testing.T) {
	series := dailySeries(10, 20)

	results, err := NewExponentialSmoothing(0.3).Forecast(series, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// forecast = 0.3*10 + 0.7*10 = 10.00 at the second date.
	assert.Equal(t, 10.00, results[0].Predicted)
	require.NotNil(t, results[0].Actual)
	assert.Equal(t, 20.00, *results[0].Actual)
	assert.Equal(t, series[1].Date, results[0].Date)
	assert.Equal(t, models.ModelExponentialSmoothing, results[0].Model)
}

func TestExponentialSmoothingForecastChains(t *testing.T) {
	series := dailySeries(10, 20)

	results, err := NewExponentialSmoothing(0.3).Forecast(series, 3)
	require.NoError(t, err)

	_, horizon := splitAtHorizon(results)
	require.Len(t, horizon, 3)

	// Step 1 blends the last actual with the smoothed state:
	// 0.3*20 + 0.7*10 = 13. Later steps chain off their own output.
	assert.Equal(t, 13.00, horizon[0].Predicted)
	assert.Equal(t, 13.00, horizon[1].Predicted)
	assert.Equal(t, 13.00, horizon[2].Predicted)
}

func TestExponentialSmoothingBacktestUsesPreviousActual(t *testing.T) {
	series := dailySeries(100, 110, 90)

	results, err := NewExponentialSmoothing(0.5).Forecast(series, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// i=1: 0.5*100 + 0.5*100 = 100; i=2: 0.5*110 + 0.5*100 = 105.
	assert.Equal(t, 100.00, results[0].Predicted)
	assert.Equal(t, 105.00, results[1].Predicted)
}

func TestExponentialSmoothingInsufficientData(t *testing.T) {
	series := dailySeries(42)

	_, err := NewExponentialSmoothing(0.3).Forecast(series, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestExponentialSmoothingLengthContract(t *testing.T) {
	series := dailySeries(10, 11, 12, 13, 14, 15)

	results, err := NewExponentialSmoothing(0.3).Forecast(series, 7)
	require.NoError(t, err)

	backtest, horizon := splitAtHorizon(results)
	assert.Len(t, backtest, len(series)-1)
	assert.Len(t, horizon, 7)

	// The actual/predicted split boundary is exactly at the last input date.
	last := series[len(series)-1].Date
	for _, r := range results {
		if r.Actual != nil {
			assert.False(t, r.Date.After(last))
		} else {
			assert.True(t, r.Date.After(last))
		}
	}
}
