package collector

import (
	"time"

	"StockWatch/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.Bar, error)
	FetchRange(symbol string, start, end time.Time) ([]model.Bar, error)
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}
