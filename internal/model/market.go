package model

import "time"

// Bar represents a single daily price bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the ordered daily bars for one ticker.
// Invariant: bars are sorted by time, strictly increasing, no duplicate
// timestamps, and the series is non-empty. The engine never mutates it.
type PriceSeries struct {
	Ticker    string
	Bars      []Bar
	FetchedAt time.Time
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Closes returns the close prices in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
