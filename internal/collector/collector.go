package collector

import (
	"fmt"
	"sort"
	"time"

	"StockWatch/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Data  []model.Bar
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.Bar, error) {
	if m.Data != nil {
		return m.Data, nil
	}
	return generateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchRange(_ string, start, end time.Time) ([]model.Bar, error) {
	if m.Data != nil {
		return m.Data, nil
	}
	days := int(end.Sub(start).Hours()/24) + 1
	return generateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	return m.Price, nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches market data and assembles validated price series.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// CollectDaily fetches the most recent daily bars for the ticker.
func (c *Collector) CollectDaily(ticker string, days int) (*model.PriceSeries, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	bars, err := c.Fetcher.FetchDailyBars(ticker, days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	return buildSeries(ticker, bars)
}

// CollectRange fetches daily bars between two dates, inclusive.
func (c *Collector) CollectRange(ticker string, start, end time.Time) (*model.PriceSeries, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("start date must be before end date")
	}
	bars, err := c.Fetcher.FetchRange(ticker, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch range: %w", err)
	}
	return buildSeries(ticker, bars)
}

// buildSeries sorts the bars, drops duplicate timestamps (keeping the most
// recent observation) and enforces the series invariants the engine relies
// on: non-empty, strictly increasing timestamps.
func buildSeries(ticker string, bars []model.Bar) (*model.PriceSeries, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", ticker)
	}

	sorted := make([]model.Bar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	deduped := sorted[:0]
	for _, b := range sorted {
		if len(deduped) > 0 && !deduped[len(deduped)-1].Time.Before(b.Time) {
			deduped[len(deduped)-1] = b
			continue
		}
		deduped = append(deduped, b)
	}

	return &model.PriceSeries{
		Ticker:    ticker,
		Bars:      deduped,
		FetchedAt: time.Now().UTC(),
	}, nil
}
