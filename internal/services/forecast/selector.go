package forecast

import (
	"sync"

	"PriceCast/internal/domain/models"
	domsvc "PriceCast/internal/domain/service"
)

// Selector runs every model with its canonical parameters, scores each
// against the backtest portion, and recommends the one with the strictly
// lowest MAE. Ties resolve to whichever model comes first in the fixed
// priority order (MovingAverage, ExponentialSmoothing, ARIMA).
type Selector struct {
	forecasters []domsvc.Forecaster
}

// NewSelector builds a selector over the three canonical forecasters.
func NewSelector() *Selector {
	return &Selector{
		forecasters: []domsvc.Forecaster{
			NewMovingAverage(SelectorMAWindow),
			NewExponentialSmoothing(DefaultAlpha),
			NewARIMA(DefaultARIMAp, DefaultARIMAd, DefaultARIMAq),
		},
	}
}

// Run executes all forecasters over the same series and horizon. The
// models are mutually independent, so they run concurrently; output
// ordering follows the fixed priority order regardless.
func (s *Selector) Run(series []models.PricePoint, days int) (map[models.Model][]models.PredictionResult, error) {
	type item struct {
		model   models.Model
		results []models.PredictionResult
		err     error
	}
	ch := make(chan item, len(s.forecasters))
	var wg sync.WaitGroup

	for _, f := range s.forecasters {
		wg.Add(1)
		go func(f domsvc.Forecaster) {
			defer wg.Done()
			res, err := f.Forecast(series, days)
			ch <- item{f.Model(), res, err}
		}(f)
	}
	go func() { wg.Wait(); close(ch) }()

	out := make(map[models.Model][]models.PredictionResult, len(s.forecasters))
	for it := range ch {
		if it.err != nil {
			return nil, it.err
		}
		out[it.model] = it.results
	}
	return out, nil
}

// Recommend runs all models and picks the lowest-MAE one, returning the
// full metrics map alongside the winner.
func (s *Selector) Recommend(series []models.PricePoint, days int) (models.Recommendation, error) {
	byModel, err := s.Run(series, days)
	if err != nil {
		return models.Recommendation{}, err
	}
	return DetermineBestModel(byModel, s.order()), nil
}

// DetermineBestModel scores each model's results and selects the lowest
// MAE, breaking ties by the given priority order.
func DetermineBestModel(byModel map[models.Model][]models.PredictionResult, priority []models.Model) models.Recommendation {
	rec := models.Recommendation{Metrics: make(map[models.Model]models.ModelMetrics, len(byModel))}
	first := true
	for _, m := range priority {
		results, ok := byModel[m]
		if !ok {
			continue
		}
		metrics := Evaluate(results)
		rec.Metrics[m] = metrics
		if first || metrics.MAE < rec.Metrics[rec.BestModel].MAE {
			rec.BestModel = m
			first = false
		}
	}
	return rec
}

func (s *Selector) order() []models.Model {
	order := make([]models.Model, 0, len(s.forecasters))
	for _, f := range s.forecasters {
		order = append(order, f.Model())
	}
	return order
}
