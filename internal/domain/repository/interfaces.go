package repository

import (
	"context"
	"time"

	"PriceCast/internal/domain/models"
)

// MarketStream delivers end-of-day bar events from an external feed.
type MarketStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.DailyBar, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Publisher forwards bars to the message backend.
type Publisher interface {
	Publish(ctx context.Context, b *models.DailyBar) error
	PublishBatch(ctx context.Context, bars []*models.DailyBar) error
	Close() error
}

// BarStorage persists daily bars.
type BarStorage interface {
	Init(ctx context.Context) error // ensure tables, health checks
	Store(ctx context.Context, b *models.DailyBar) error
	StoreBatch(ctx context.Context, bars []*models.DailyBar) error
	Health(ctx context.Context) error // ping
	Close() error
}

// HistoryProvider provides read-only access to stored daily bars for the
// forecasting engine. Bars come back ascending by date, one per trading day.
type HistoryProvider interface {
	GetDailyBars(ctx context.Context, symbol string, from, to time.Time) ([]models.DailyBar, error)
	GetLatestNBars(ctx context.Context, symbol string, n int) ([]models.DailyBar, error)
}

// Metrics records operational counters for the ingest path.
type Metrics interface {
	RecordBarStored(backend, symbol string)
	RecordError(kind string)
	RecordLastClose(symbol string, close float64)
	RecordLatency(op string, seconds float64)
}
