package util

import (
	"testing"
	"time"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 8, 5, 13, 37, 42, 999, time.UTC)
	got := DateOnly(in)
	want := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestDateOnlyIdempotent(t *testing.T) {
	d := time.Date(2022, 8, 4, 0, 0, 0, 0, time.UTC)
	if got := DateOnly(d); !got.Equal(d) {
		t.Fatalf("expected no-op, got %v", got)
	}
}

func TestLookbackWindow(t *testing.T) {
	// 730 days back from 2024-08-05 crosses the 2024 leap day, landing on
	// 2022-08-06 before the one-day shift.
	now := time.Date(2024, 8, 5, 9, 30, 0, 0, time.UTC)
	start, end := LookbackWindow(now, 730, 24*time.Hour)
	if want := time.Date(2022, 8, 5, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, 8, 4, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("end = %v, want %v", end, want)
	}
}

func TestLookbackWindowNoShift(t *testing.T) {
	now := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	start, end := LookbackWindow(now, 730, 0)
	if want := time.Date(2022, 8, 6, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("start = %v, want %v", start, want)
	}
	if !end.Equal(now) {
		t.Fatalf("end = %v, want %v", end, now)
	}
}
