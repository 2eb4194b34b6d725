package models

// Requests for forecast HTTP endpoints. Defined in domain for consistency and reuse.
// Model parameters left unset fall back to the configured forecast defaults.

type ForecastRequest struct {
	Symbol string  `query:"symbol" json:"symbol" validate:"required"`
	Model  string  `query:"model" json:"model" default:"MovingAverage" validate:"oneof=MovingAverage ExponentialSmoothing ARIMA"`
	Days   int     `query:"days" json:"days" validate:"omitempty,gte=1,lte=90"`
	N      int     `query:"n" json:"n" default:"180" validate:"gte=10,lte=2000"`
	Window int     `query:"window" json:"window" validate:"omitempty,gte=2,lte=120"`
	Alpha  float64 `query:"alpha" json:"alpha" validate:"omitempty,gt=0,lte=1"`
	P      int     `query:"p" json:"p" validate:"omitempty,gte=1,lte=10"`
	D      int     `query:"d" json:"d" validate:"omitempty,gte=1,lte=2"`
	Q      int     `query:"q" json:"q" validate:"omitempty,gte=1,lte=10"`
}

type RecommendationRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Days   int    `query:"days" json:"days" validate:"omitempty,gte=1,lte=90"`
	N      int    `query:"n" json:"n" default:"180" validate:"gte=10,lte=2000"`
}

type HistoryRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	From   string `query:"from" json:"from"`
	To     string `query:"to" json:"to"`
}
