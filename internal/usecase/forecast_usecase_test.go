package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceCast/internal/domain/models"
	"PriceCast/internal/services/forecast"
)

type fakeHistory struct {
	bars []models.DailyBar
	err  error
}

func (f *fakeHistory) GetDailyBars(_ context.Context, _ string, from, to time.Time) ([]models.DailyBar, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.DailyBar, 0, len(f.bars))
	for _, b := range f.bars {
		if !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeHistory) GetLatestNBars(_ context.Context, _ string, n int) ([]models.DailyBar, error) {
	if f.err != nil {
		return nil, f.err
	}
	if n >= len(f.bars) {
		return f.bars, nil
	}
	return f.bars[len(f.bars)-n:], nil
}

func barsFrom(closes ...float64) []models.DailyBar {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // Monday
	bars := make([]models.DailyBar, 0, len(closes))
	for _, c := range closes {
		bars = append(bars, models.DailyBar{Date: d, Symbol: "AAPL", Close: c})
		d = forecast.NextBusinessDay(d, 1)
	}
	return bars
}

func constantBars(n int, v float64) []models.DailyBar {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = v
	}
	return barsFrom(closes...)
}

func TestForecastUseCaseMovingAverage(t *testing.T) {
	hist := &fakeHistory{bars: constantBars(20, 100)}
	uc := NewForecastUseCase(hist, forecast.NewSelector())

	res, err := uc.Forecast(context.Background(), ForecastParams{
		Symbol: "AAPL",
		Model:  models.ModelMovingAverage,
		Days:   3,
		Window: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ModelMovingAverage, res.Model)
	assert.Equal(t, 3, res.Days)
	// constant history backtests with zero error
	assert.Equal(t, 0.0, res.Metrics.MAE)
	assert.Len(t, res.Results, 15+3)
	for _, r := range res.Results {
		assert.Equal(t, 100.0, r.Predicted)
	}
}

func TestForecastUseCaseDefaultsApplied(t *testing.T) {
	hist := &fakeHistory{bars: constantBars(30, 50)}
	uc := NewForecastUseCase(hist, forecast.NewSelector())

	res, err := uc.Forecast(context.Background(), ForecastParams{
		Symbol: "AAPL",
		Model:  models.ModelExponentialSmoothing,
	})
	require.NoError(t, err)
	assert.Equal(t, forecast.DefaultForecastDays, res.Days)
}

func TestForecastUseCaseConfiguredDefaults(t *testing.T) {
	hist := &fakeHistory{bars: constantBars(20, 100)}
	uc := NewForecastUseCase(hist, forecast.NewSelector())
	uc.SetDefaults(ForecastDefaults{Days: 4, Window: 10})

	res, err := uc.Forecast(context.Background(), ForecastParams{
		Symbol: "AAPL",
		Model:  models.ModelMovingAverage,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Days)
	// window 10 over 20 bars: 10 backtest entries plus the horizon
	assert.Len(t, res.Results, 10+4)
}

func TestSetDefaultsKeepsEngineFallbacksForZeroFields(t *testing.T) {
	hist := &fakeHistory{bars: constantBars(30, 100)}
	uc := NewForecastUseCase(hist, forecast.NewSelector())
	uc.SetDefaults(ForecastDefaults{Window: 10}) // Days left zero

	res, err := uc.Forecast(context.Background(), ForecastParams{
		Symbol: "AAPL",
		Model:  models.ModelMovingAverage,
	})
	require.NoError(t, err)
	assert.Equal(t, forecast.DefaultForecastDays, res.Days)
}

func TestForecastUseCaseUnknownModel(t *testing.T) {
	hist := &fakeHistory{bars: constantBars(20, 100)}
	uc := NewForecastUseCase(hist, forecast.NewSelector())

	_, err := uc.Forecast(context.Background(), ForecastParams{Symbol: "AAPL", Model: "Prophet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model")
}

func TestForecastUseCaseInsufficientHistory(t *testing.T) {
	hist := &fakeHistory{bars: constantBars(3, 100)}
	uc := NewForecastUseCase(hist, forecast.NewSelector())

	_, err := uc.Forecast(context.Background(), ForecastParams{
		Symbol: "AAPL",
		Model:  models.ModelMovingAverage,
		Days:   3,
		Window: 5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, forecast.ErrInsufficientData)
}

func TestForecastUseCaseStorageError(t *testing.T) {
	hist := &fakeHistory{err: errors.New("clickhouse down")}
	uc := NewForecastUseCase(hist, forecast.NewSelector())

	_, err := uc.Forecast(context.Background(), ForecastParams{
		Symbol: "AAPL",
		Model:  models.ModelMovingAverage,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clickhouse down")
}

func TestRecommendUseCase(t *testing.T) {
	hist := &fakeHistory{bars: constantBars(30, 100)}
	uc := NewForecastUseCase(hist, forecast.NewSelector())

	res, err := uc.Recommend(context.Background(), RecommendParams{Symbol: "AAPL", Days: 5})
	require.NoError(t, err)

	assert.Equal(t, "AAPL", res.Symbol)
	assert.Len(t, res.Recommendation.Metrics, 3)
	// all models are exact on a constant series; priority breaks the tie
	assert.Equal(t, models.ModelMovingAverage, res.Recommendation.BestModel)
}

func TestRecommendUseCaseRequiresSymbol(t *testing.T) {
	uc := NewForecastUseCase(&fakeHistory{}, forecast.NewSelector())

	_, err := uc.Recommend(context.Background(), RecommendParams{})
	require.Error(t, err)
}

func TestHistoryUseCase(t *testing.T) {
	bars := constantBars(10, 42)
	hist := &fakeHistory{bars: bars}
	uc := NewForecastUseCase(hist, forecast.NewSelector())

	res, err := uc.History(context.Background(), HistoryParams{
		Symbol: "AAPL",
		From:   bars[0].Date,
		To:     bars[len(bars)-1].Date,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, res.Count)
	assert.Len(t, res.Closes, 10)
	assert.Equal(t, 42.0, res.Closes[0].Close)
}

func TestHistoryUseCaseRejectsInvertedRange(t *testing.T) {
	uc := NewForecastUseCase(&fakeHistory{}, forecast.NewSelector())

	_, err := uc.History(context.Background(), HistoryParams{
		Symbol: "AAPL",
		From:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
}
