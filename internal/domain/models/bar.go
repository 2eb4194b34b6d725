package models

import "time"

// DailyBar represents one trading day of OHLCV data for a symbol.
type DailyBar struct {
	Date   time.Time
	Symbol string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// BarEvent is the wire form of a daily bar as published to the message
// backend and received by consumers. Dates travel as ISO strings.
type BarEvent struct {
	Date   string  `json:"date"`
	Symbol string  `json:"symbol"`
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// ToEvent converts a bar to its wire form.
func (b *DailyBar) ToEvent() BarEvent {
	return BarEvent{
		Date:   b.Date.Format("2006-01-02"),
		Symbol: b.Symbol,
		Open:   b.Open,
		High:   b.High,
		Low:    b.Low,
		Close:  b.Close,
		Volume: b.Volume,
	}
}

// ToBar converts a wire event back to a daily bar.
func (e *BarEvent) ToBar() (*DailyBar, error) {
	d, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return nil, err
	}
	return &DailyBar{
		Date:   d,
		Symbol: e.Symbol,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}, nil
}

// PricePoint is the minimal input a forecaster needs: one close per
// trading day, ascending by date.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// ClosesOf projects bars onto the forecaster input series, preserving order.
func ClosesOf(bars []DailyBar) []PricePoint {
	pts := make([]PricePoint, 0, len(bars))
	for _, b := range bars {
		pts = append(pts, PricePoint{Date: b.Date, Close: b.Close})
	}
	return pts
}
