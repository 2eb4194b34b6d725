package usecase

import (
	"context"
	"fmt"
	"time"

	"PriceCast/internal/domain/models"
	domrepo "PriceCast/internal/domain/repository"
	domsvc "PriceCast/internal/domain/service"
	"PriceCast/internal/services/forecast"
)

// ForecastUseCase provides business logic for the forecast endpoints: it
// loads history, runs the requested model (or all of them for a
// recommendation) and packages results for the handler.
type ForecastUseCase struct {
	history  domrepo.HistoryProvider
	selector *forecast.Selector
	defaults ForecastDefaults
}

// ForecastDefaults are the fallbacks for request parameters left unset,
// normally sourced from the forecast section of the config file.
type ForecastDefaults struct {
	Days   int
	Window int
	Alpha  float64
	P      int
	D      int
	Q      int
}

func NewForecastUseCase(history domrepo.HistoryProvider, selector *forecast.Selector) *ForecastUseCase {
	return &ForecastUseCase{
		history:  history,
		selector: selector,
		defaults: ForecastDefaults{
			Days:   forecast.DefaultForecastDays,
			Window: forecast.DefaultMAWindow,
			Alpha:  forecast.DefaultAlpha,
			P:      forecast.DefaultARIMAp,
			D:      forecast.DefaultARIMAd,
			Q:      forecast.DefaultARIMAq,
		},
	}
}

// SetDefaults overrides the engine fallbacks with configured values.
// Zero fields keep the engine defaults.
func (uc *ForecastUseCase) SetDefaults(d ForecastDefaults) {
	if d.Days > 0 {
		uc.defaults.Days = d.Days
	}
	if d.Window > 0 {
		uc.defaults.Window = d.Window
	}
	if d.Alpha > 0 {
		uc.defaults.Alpha = d.Alpha
	}
	if d.P > 0 {
		uc.defaults.P = d.P
	}
	if d.D > 0 {
		uc.defaults.D = d.D
	}
	if d.Q > 0 {
		uc.defaults.Q = d.Q
	}
}

type ForecastParams struct {
	Symbol string
	Model  models.Model
	Days   int
	N      int
	Window int
	Alpha  float64
	P      int
	D      int
	Q      int
}

type ForecastResult struct {
	Symbol  string                    `json:"symbol"`
	Model   models.Model              `json:"model"`
	Days    int                       `json:"days"`
	Metrics models.ModelMetrics       `json:"metrics"`
	Results []models.PredictionResult `json:"results"`
}

func (uc *ForecastUseCase) Forecast(ctx context.Context, p ForecastParams) (*ForecastResult, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if !models.IsValidModel(p.Model) {
		return nil, fmt.Errorf("unknown model: %s", p.Model)
	}
	if p.Days <= 0 {
		p.Days = uc.defaults.Days
	}

	f, err := uc.forecasterFor(p)
	if err != nil {
		return nil, err
	}

	series, err := uc.loadSeries(ctx, p.Symbol, p.N)
	if err != nil {
		return nil, err
	}

	results, err := f.Forecast(series, p.Days)
	if err != nil {
		return nil, err
	}

	return &ForecastResult{
		Symbol:  p.Symbol,
		Model:   p.Model,
		Days:    p.Days,
		Metrics: forecast.Evaluate(results),
		Results: results,
	}, nil
}

type RecommendParams struct {
	Symbol string
	Days   int
	N      int
}

type RecommendResult struct {
	Symbol         string                `json:"symbol"`
	Days           int                   `json:"days"`
	Recommendation models.Recommendation `json:"recommendation"`
}

func (uc *ForecastUseCase) Recommend(ctx context.Context, p RecommendParams) (*RecommendResult, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if p.Days <= 0 {
		p.Days = uc.defaults.Days
	}

	series, err := uc.loadSeries(ctx, p.Symbol, p.N)
	if err != nil {
		return nil, err
	}

	rec, err := uc.selector.Recommend(series, p.Days)
	if err != nil {
		return nil, err
	}

	return &RecommendResult{Symbol: p.Symbol, Days: p.Days, Recommendation: rec}, nil
}

type HistoryParams struct {
	Symbol string
	From   time.Time
	To     time.Time
}

type HistoryResult struct {
	Symbol string              `json:"symbol"`
	Count  int                 `json:"count"`
	Bars   []models.DailyBar   `json:"bars"`
	Closes []models.PricePoint `json:"closes"`
}

func (uc *ForecastUseCase) History(ctx context.Context, p HistoryParams) (*HistoryResult, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if p.From.After(p.To) {
		return nil, fmt.Errorf("from must be <= to")
	}

	bars, err := uc.history.GetDailyBars(ctx, p.Symbol, p.From, p.To)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return &HistoryResult{
		Symbol: p.Symbol,
		Count:  len(bars),
		Bars:   bars,
		Closes: models.ClosesOf(bars),
	}, nil
}

func (uc *ForecastUseCase) loadSeries(ctx context.Context, symbol string, n int) ([]models.PricePoint, error) {
	if n <= 0 {
		n = 180
	}
	bars, err := uc.history.GetLatestNBars(ctx, symbol, n)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return models.ClosesOf(bars), nil
}

func (uc *ForecastUseCase) forecasterFor(p ForecastParams) (domsvc.Forecaster, error) {
	switch p.Model {
	case models.ModelMovingAverage:
		w := p.Window
		if w <= 0 {
			w = uc.defaults.Window
		}
		return forecast.NewMovingAverage(w), nil
	case models.ModelExponentialSmoothing:
		a := p.Alpha
		if a <= 0 || a > 1 {
			a = uc.defaults.Alpha
		}
		return forecast.NewExponentialSmoothing(a), nil
	case models.ModelARIMA:
		ar, d, ma := p.P, p.D, p.Q
		if ar <= 0 {
			ar = uc.defaults.P
		}
		if d <= 0 {
			d = uc.defaults.D
		}
		if ma <= 0 {
			ma = uc.defaults.Q
		}
		return forecast.NewARIMA(ar, d, ma), nil
	default:
		return nil, fmt.Errorf("unknown model: %s", p.Model)
	}
}
