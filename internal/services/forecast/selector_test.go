package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceCast/internal/domain/models"
)

func TestSelectorRunsAllModels(t *testing.T) {
	series := dailySeries(100, 101, 103, 102, 105, 104, 107, 108, 106, 109, 111, 110)

	s := NewSelector()
	byModel, err := s.Run(series, 7)
	require.NoError(t, err)
	require.Len(t, byModel, 3)

	for _, m := range models.AllModels() {
		results, ok := byModel[m]
		require.True(t, ok, "missing results for %s", m)
		_, horizon := splitAtHorizon(results)
		assert.Len(t, horizon, 7)
	}
}

func TestSelectorPicksLowestMAE(t *testing.T) {
	series := dailySeries(100, 101, 103, 102, 105, 104, 107, 108, 106, 109, 111, 110)

	s := NewSelector()
	rec, err := s.Recommend(series, 7)
	require.NoError(t, err)
	require.Len(t, rec.Metrics, 3)

	best := rec.Metrics[rec.BestModel]
	for m, metrics := range rec.Metrics {
		assert.LessOrEqual(t, best.MAE, metrics.MAE, "%s beat the recommended model", m)
	}
}

func TestSelectorTieBreaksByPriority(t *testing.T) {
	// On a constant series every model backtests perfectly; the tie
	// resolves to the first model in priority order.
	series := constantSeries(20, 100.00)

	rec, err := NewSelector().Recommend(series, 7)
	require.NoError(t, err)

	assert.Equal(t, models.ModelMovingAverage, rec.BestModel)
	for _, metrics := range rec.Metrics {
		assert.Equal(t, 0.00, metrics.MAE)
	}
}

func TestSelectorPropagatesInsufficientData(t *testing.T) {
	series := dailySeries(100, 101, 102)

	_, err := NewSelector().Recommend(series, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDetermineBestModelStrictOrder(t *testing.T) {
	mk := func(m models.Model, mae float64) []models.PredictionResult {
		return []models.PredictionResult{{Actual: fpt(100), Predicted: 100 + mae, Model: m}}
	}
	byModel := map[models.Model][]models.PredictionResult{
		models.ModelMovingAverage:        mk(models.ModelMovingAverage, 3),
		models.ModelExponentialSmoothing: mk(models.ModelExponentialSmoothing, 1),
		models.ModelARIMA:                mk(models.ModelARIMA, 2),
	}

	rec := DetermineBestModel(byModel, models.AllModels())
	assert.Equal(t, models.ModelExponentialSmoothing, rec.BestModel)
	assert.Equal(t, 1.00, rec.Metrics[models.ModelExponentialSmoothing].MAE)
}

func TestSelectorDeterministic(t *testing.T) {
	series := dailySeries(99.5, 101.2, 100.8, 102.4, 101.9, 103.3, 104.1, 103.8, 105.2, 104.6, 106.0, 105.5)

	first, err := NewSelector().Recommend(series, 7)
	require.NoError(t, err)
	second, err := NewSelector().Recommend(series, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
