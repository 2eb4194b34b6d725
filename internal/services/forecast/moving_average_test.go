package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceCast/internal/domain/models"
)

func TestMovingAverageConstantSeries(t *testing.T) {
	series := constantSeries(10, 100.00)

	results, err := NewMovingAverage(5).Forecast(series, 7)
	require.NoError(t, err)

	backtest, horizon := splitAtHorizon(results)
	require.Len(t, backtest, 5) // 10 - window
	require.Len(t, horizon, 7)

	for _, r := range results {
		assert.Equal(t, 100.00, r.Predicted)
		assert.Equal(t, models.ModelMovingAverage, r.Model)
	}
	assert.Equal(t, 0.00, MeanAbsoluteError(backtest))
}

func TestMovingAverageBacktestValues(t *testing.T) {
	series := dailySeries(10, 20, 30, 40, 50, 60)

	results, err := NewMovingAverage(5).Forecast(series, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Mean of the five closes preceding the last point.
	assert.Equal(t, 30.00, results[0].Predicted)
	require.NotNil(t, results[0].Actual)
	assert.Equal(t, 60.00, *results[0].Actual)
	assert.Equal(t, series[5].Date, results[0].Date)
}

func TestMovingAverageForecastCompounds(t *testing.T) {
	series := dailySeries(10, 20, 30, 40, 50)

	results, err := NewMovingAverage(5).Forecast(series, 3)
	require.NoError(t, err)

	_, horizon := splitAtHorizon(results)
	require.Len(t, horizon, 3)

	// Step 1 is the mean of the last five closes; later steps slide the
	// emitted prediction into the window.
	assert.Equal(t, 30.00, horizon[0].Predicted)
	assert.Equal(t, round2((20+30+40+50+30)/5.0), horizon[1].Predicted)
	assert.Equal(t, round2((30+40+50+30+34)/5.0), horizon[2].Predicted)
}

func TestMovingAverageInsufficientData(t *testing.T) {
	series := dailySeries(10, 20, 30, 40)

	_, err := NewMovingAverage(5).Forecast(series, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestMovingAverageHorizonDates(t *testing.T) {
	series := constantSeries(12, 55.5)
	results, err := NewMovingAverage(5).Forecast(series, 7)
	require.NoError(t, err)

	_, horizon := splitAtHorizon(results)
	require.Len(t, horizon, 7)

	last := series[len(series)-1].Date
	prev := last
	for _, r := range horizon {
		assert.True(t, r.Date.After(prev), "dates must strictly increase")
		assert.NotEqual(t, time.Saturday, r.Date.Weekday())
		assert.NotEqual(t, time.Sunday, r.Date.Weekday())
		prev = r.Date
	}
}

func TestMovingAverageDeterministic(t *testing.T) {
	series := dailySeries(101.23, 99.87, 103.4, 102.11, 98.5, 100.02, 104.77, 103.2)

	first, err := NewMovingAverage(5).Forecast(series, 7)
	require.NoError(t, err)
	second, err := NewMovingAverage(5).Forecast(series, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMovingAverageRoundingIdempotent(t *testing.T) {
	series := dailySeries(101.237, 99.871, 103.409, 102.113, 98.501, 100.021, 104.77)

	results, err := NewMovingAverage(5).Forecast(series, 7)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, r.Predicted, round2(r.Predicted))
	}
}
