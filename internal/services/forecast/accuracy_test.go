package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PriceCast/internal/domain/models"
)

func fpt(v float64) *float64 { return &v }

func TestMeanAbsoluteError(t *testing.T) {
	results := []models.PredictionResult{
		{Actual: fpt(100), Predicted: 98},
		{Actual: fpt(100), Predicted: 103},
		{Predicted: 101}, // horizon entry, excluded
	}
	assert.Equal(t, 2.50, MeanAbsoluteError(results))
}

func TestMeanAbsoluteErrorEmpty(t *testing.T) {
	assert.Equal(t, 0.00, MeanAbsoluteError(nil))
	assert.Equal(t, 0.00, MeanAbsoluteError([]models.PredictionResult{{Predicted: 5}}))
}

func TestMeanAbsoluteErrorNonNegative(t *testing.T) {
	results := []models.PredictionResult{
		{Actual: fpt(50), Predicted: 75},
		{Actual: fpt(80), Predicted: 20},
	}
	assert.GreaterOrEqual(t, MeanAbsoluteError(results), 0.00)
}

func TestMeanPercentageErrorSigned(t *testing.T) {
	results := []models.PredictionResult{
		{Actual: fpt(100), Predicted: 90},  // -10%
		{Actual: fpt(200), Predicted: 210}, // +5%
	}
	assert.Equal(t, -2.50, MeanPercentageError(results))
}

func TestMeanPercentageErrorEmpty(t *testing.T) {
	assert.Equal(t, 0.00, MeanPercentageError(nil))
}

func TestEvaluateRounds(t *testing.T) {
	results := []models.PredictionResult{
		{Actual: fpt(3), Predicted: 4},
		{Actual: fpt(3), Predicted: 3},
		{Actual: fpt(3), Predicted: 3},
	}
	m := Evaluate(results)
	assert.Equal(t, 0.33, m.MAE)
	assert.Equal(t, 11.11, m.MPE)
}
