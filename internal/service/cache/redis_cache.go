package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"PriceCast/internal/domain/models"
)

// latestKey is shared by every replica serving predictions; the newest run
// wins.
const latestKey = "pricecast:predictions:latest"

// RedisCache stores the latest predictions response in Redis, JSON-encoded.
type RedisCache struct {
	cli *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisCache(cfg RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return &RedisCache{cli: rdb}
}

func (r *RedisCache) GetLatest() (*models.PredictionsResponse, bool, error) {
	b, err := r.cli.Get(context.Background(), latestKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var resp models.PredictionsResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

func (r *RedisCache) SetLatest(resp *models.PredictionsResponse, ttl time.Duration) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return r.cli.Set(context.Background(), latestKey, b, ttl).Err()
}
