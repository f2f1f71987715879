package hopsworks

import (
	"context"
	"fmt"
	"time"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
	xhttp "PriceCast/pkg/http"
	applogger "PriceCast/pkg/logger"
)

// featureStore is the project-scoped feature-store namespace. Pure pass-through:
// it carries no state beyond the session and raises only what the platform raises.
type featureStore struct {
	session *session
}

type featureViewDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Version int    `json:"version"`
}

func (f *featureStore) GetFeatureView(ctx context.Context, name string, version int) (drepo.FeatureView, error) {
	var dto featureViewDTO
	url := f.session.projectURL("/featurestores/featureview/%s/version/%d", name, version)
	if err := f.session.client.http.SendAndParse(ctx, &xhttp.RequestOptions{Method: xhttp.MethodGet, URL: url}, &dto); err != nil {
		return nil, fmt.Errorf("get feature view %s v%d: %w", name, version, err)
	}
	return &featureView{session: f.session, id: dto.ID, name: dto.Name, version: dto.Version}, nil
}

// featureView is a resolved named/versioned view handle.
type featureView struct {
	session *session
	id      int
	name    string
	version int
}

type batchQueryDTO struct {
	StartTime int64 `json:"start_time"` // ms since epoch
	EndTime   int64 `json:"end_time"`
}

type featureRowDTO struct {
	Datetime        int64   `json:"datetime"` // ms since epoch
	OpenPrice       float64 `json:"open_price"`
	HighPrice       float64 `json:"high_price"`
	LowPrice        float64 `json:"low_price"`
	ClosePrice      float64 `json:"close_price"`
	Volume          float64 `json:"volume"`
	VWAvgPrice      float64 `json:"vw_avr_price"`
	NumTransactions float64 `json:"num_transactions"`
}

type batchDataDTO struct {
	Items []featureRowDTO `json:"items"`
}

// GetBatchData fetches feature rows between start and end. Rows come back in
// materialization order; callers sort by datetime before use.
func (v *featureView) GetBatchData(ctx context.Context, start, end time.Time) (*models.FeatureBatch, error) {
	t0 := time.Now()
	var dto batchDataDTO
	url := v.session.projectURL("/featureview/%d/batch", v.id)
	err := v.session.client.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    url,
		Body: batchQueryDTO{
			StartTime: start.UnixMilli(),
			EndTime:   end.UnixMilli(),
		},
	}, &dto)
	if err != nil {
		return nil, fmt.Errorf("get batch data %s v%d: %w", v.name, v.version, err)
	}

	batch := &models.FeatureBatch{Rows: make([]models.FeatureRow, 0, len(dto.Items))}
	for _, r := range dto.Items {
		batch.Rows = append(batch.Rows, models.FeatureRow{
			Datetime:        time.UnixMilli(r.Datetime).UTC(),
			OpenPrice:       r.OpenPrice,
			HighPrice:       r.HighPrice,
			LowPrice:        r.LowPrice,
			ClosePrice:      r.ClosePrice,
			Volume:          r.Volume,
			VWAvgPrice:      r.VWAvgPrice,
			NumTransactions: r.NumTransactions,
		})
	}

	if l := v.session.client.l; l != nil {
		l.Info("feature view batch data ok",
			applogger.String("view", v.name),
			applogger.Int("version", v.version),
			applogger.Int("rows", len(batch.Rows)),
			applogger.Duration("duration_ms", time.Since(t0)),
		)
	}
	return batch, nil
}
