package forecast

import (
	"errors"
	"fmt"

	"PriceCast/internal/domain/models"
)

// ErrInsufficientData is returned when the input series is shorter than a
// model's minimum required length. It is a caller-input problem, not
// retried; callers should request a longer history window.
var ErrInsufficientData = errors.New("insufficient data")

func insufficientData(m models.Model, need, got int) error {
	return fmt.Errorf("%w: %s needs at least %d points, got %d", ErrInsufficientData, m, need, got)
}
