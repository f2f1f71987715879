package cache

import (
	"testing"
	"time"

	"PriceCast/internal/domain/models"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()

	if _, ok, err := c.GetLatest(); err != nil || ok {
		t.Fatalf("empty cache should miss, ok=%v err=%v", ok, err)
	}

	resp := &models.PredictionsResponse{Date: "2024-08-05", Rows: 3, Predictions: []int64{100, 201, 300}}
	if err := c.SetLatest(resp, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := c.GetLatest()
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got.Rows != 3 || got.Predictions[1] != 201 {
		t.Fatalf("unexpected cached response %+v", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	resp := &models.PredictionsResponse{Date: "2024-08-05"}
	if err := c.SetLatest(resp, time.Nanosecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, ok, _ := c.GetLatest(); ok {
		t.Fatalf("expired entry should miss")
	}
}
