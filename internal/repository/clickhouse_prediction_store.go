package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
	applogger "PriceCast/pkg/logger"
)

// ClickHousePredictionStore implements ResultSink backed by ClickHouse.
type ClickHousePredictionStore struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

// NewClickHousePredictionStore creates ClickHouse prediction storage.
func NewClickHousePredictionStore(db *sql.DB, table string) drepo.ResultSink {
	return &ClickHousePredictionStore{db: db, table: table}
}

// SetLogger injects a structured logger.
func (s *ClickHousePredictionStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *ClickHousePredictionStore) StoreBatch(ctx context.Context, records []models.PredictionRecord) error {
	if len(records) == 0 {
		return nil
	}
	start := time.Now()

	// Multi-row VALUES insert to reduce round-trips. Chunked at 2000 rows.
	const chunkSize = 2000
	for lo := 0; lo < len(records); lo += chunkSize {
		hi := lo + chunkSize
		if hi > len(records) {
			hi = len(records)
		}

		values := make([]string, 0, hi-lo)
		args := make([]interface{}, 0, (hi-lo)*5)
		for _, r := range records[lo:hi] {
			values = append(values, "(?, ?, ?, ?, ?)")
			args = append(args,
				r.RunAt,
				r.Datetime,
				r.ModelName,
				r.ModelVersion,
				r.PredictedPrice,
			)
		}
		q := fmt.Sprintf(
			"INSERT INTO %s (run_at, dt, model_name, model_version, predicted_price) VALUES %s",
			s.table, strings.Join(values, ","),
		)
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse prediction insert error",
					applogger.String("table", s.table),
					applogger.Int("rows", hi-lo),
					applogger.Error(err),
				)
			}
			return fmt.Errorf("store predictions: %w", err)
		}
	}

	if s.l != nil {
		s.l.Info("clickhouse predictions stored",
			applogger.String("table", s.table),
			applogger.Int("rows", len(records)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return nil
}

func (s *ClickHousePredictionStore) Close() error {
	return nil // connection pool managed by pkg
}
