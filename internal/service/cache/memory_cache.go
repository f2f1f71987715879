package cache

import (
	"sync"
	"time"

	"PriceCast/internal/domain/models"
)

// MemoryCache keeps the latest predictions response in process memory.
type MemoryCache struct {
	mu   sync.RWMutex
	resp *models.PredictionsResponse
	exp  time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) GetLatest() (*models.PredictionsResponse, bool, error) {
	c.mu.RLock()
	resp, exp := c.resp, c.exp
	c.mu.RUnlock()

	if resp == nil {
		return nil, false, nil
	}
	if !exp.IsZero() && time.Now().After(exp) {
		c.mu.Lock()
		c.resp = nil
		c.mu.Unlock()
		return nil, false, nil
	}
	return resp, true, nil
}

func (c *MemoryCache) SetLatest(resp *models.PredictionsResponse, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.resp = resp
	c.exp = exp
	c.mu.Unlock()
	return nil
}
