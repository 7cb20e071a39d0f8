package collector

import (
	"testing"
	"time"

	"StockWatch/internal/model"
)

func barAt(day int, close float64) model.Bar {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return model.Bar{Time: base.AddDate(0, 0, day), Open: close, High: close, Low: close, Close: close, Volume: 1}
}

func TestBuildSeries_SortsAndDedupes(t *testing.T) {
	bars := []model.Bar{
		barAt(2, 102),
		barAt(0, 100),
		barAt(1, 101),
		barAt(1, 111), // duplicate day, later observation wins
	}
	series, err := buildSeries("TEST", bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("expected 3 bars after dedupe, got %d", series.Len())
	}
	for i := 1; i < series.Len(); i++ {
		if !series.Bars[i-1].Time.Before(series.Bars[i].Time) {
			t.Fatalf("timestamps not strictly increasing at %d", i)
		}
	}
	if series.Bars[1].Close != 111 {
		t.Errorf("expected the later duplicate to win, got close=%v", series.Bars[1].Close)
	}
}

func TestBuildSeries_Empty(t *testing.T) {
	if _, err := buildSeries("TEST", nil); err == nil {
		t.Fatal("expected error for empty bar set")
	}
}

func TestCollectDaily_Mock(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 100})
	series, err := col.CollectDaily("TEST", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Ticker != "TEST" {
		t.Errorf("expected ticker TEST, got %q", series.Ticker)
	}
	if series.Len() == 0 {
		t.Fatal("expected bars from mock fetcher")
	}
}

func TestCollectDaily_InvalidDays(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 100})
	if _, err := col.CollectDaily("TEST", 0); err == nil {
		t.Fatal("expected error for non-positive days")
	}
}

func TestCollectRange_Validation(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 100})
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := col.CollectRange("TEST", start, end); err == nil {
		t.Fatal("expected error when start is after end")
	}
}

func TestCachedFetcher_RoundTrip(t *testing.T) {
	mock := &MockFetcher{Price: 100}
	cache, err := NewCachedFetcher(mock, t.TempDir()+"/bars.db")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	first, err := cache.FetchDailyBars("TEST", 10)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	// second fetch today must serve the same bars from the cache
	mock.Data = []model.Bar{barAt(0, 999)}
	second, err := cache.FetchDailyBars("TEST", 10)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected %d cached bars, got %d", len(first), len(second))
	}
	for i := range first {
		if second[i].Close != first[i].Close || !second[i].Time.Equal(first[i].Time) {
			t.Fatalf("bar %d differs from cached copy", i)
		}
	}
}
