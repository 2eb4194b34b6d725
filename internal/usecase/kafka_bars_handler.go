package usecase

import (
	"context"
	"encoding/json"
	"time"

	"PriceCast/internal/domain/models"
	domrepo "PriceCast/internal/domain/repository"
	pkgkafka "PriceCast/pkg/kafka"
)

// KafkaBarsHandler consumes bar events from Kafka and writes them to
// storage. It closes the loop when the ingest backend is "kafka".
type KafkaBarsHandler struct {
	topic   string
	storage domrepo.BarStorage
	metrics domrepo.Metrics
}

func NewKafkaBarsHandler(topic string, storage domrepo.BarStorage, metrics domrepo.Metrics) *KafkaBarsHandler {
	return &KafkaBarsHandler{topic: topic, storage: storage, metrics: metrics}
}

func (h *KafkaBarsHandler) Topic() string { return h.topic }

func (h *KafkaBarsHandler) Handle(ctx context.Context, b []byte) error {
	var ev models.BarEvent
	if err := json.Unmarshal(b, &ev); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}
	bar, err := ev.ToBar()
	if err != nil {
		h.metrics.RecordError("consumer_bad_date")
		return err
	}

	start := time.Now()
	if err := h.storage.Store(ctx, bar); err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordLatency("ch_insert_seconds", time.Since(start).Seconds())
	h.metrics.RecordBarStored("clickhouse", bar.Symbol)
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaBarsHandler)(nil)
