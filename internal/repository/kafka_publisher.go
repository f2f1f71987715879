package repository

import (
	"context"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
	pkgkafka "PriceCast/pkg/kafka"
)

// KafkaPredictionPublisher implements ResultSink for Kafka.
type KafkaPredictionPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPredictionPublisher creates a Kafka prediction publisher.
func NewKafkaPredictionPublisher(producer *pkgkafka.Producer, topic string) drepo.ResultSink {
	return &KafkaPredictionPublisher{producer: producer, topic: topic}
}

func (p *KafkaPredictionPublisher) StoreBatch(ctx context.Context, records []models.PredictionRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(records))
	for i, r := range records {
		msgs[i] = pkgkafka.Message{
			Key: []byte(r.Datetime.Format("2006-01-02")),
			Value: map[string]interface{}{
				"run_at":          r.RunAt.Unix(),
				"dt":              r.Datetime.Format("2006-01-02"),
				"model_name":      r.ModelName,
				"model_version":   r.ModelVersion,
				"predicted_price": r.PredictedPrice,
			},
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaPredictionPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
