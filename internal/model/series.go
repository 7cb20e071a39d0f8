package model

import "time"

// Point is one timestamped value of a derived series. Valid is false for
// warm-up positions that lack enough history to compute a value, so a
// missing reading can never be mistaken for a legitimate zero.
type Point struct {
	Time  time.Time
	Value float64
	Valid bool
}

// DerivedSeries is a series computed from a PriceSeries, aligned 1:1 with
// the input bars by timestamp.
type DerivedSeries []Point

// LastDefined returns the most recent defined point, if any.
func (d DerivedSeries) LastDefined() (Point, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Valid {
			return d[i], true
		}
	}
	return Point{}, false
}

// DefinedCount returns how many points carry a defined value.
func (d DerivedSeries) DefinedCount() int {
	n := 0
	for _, p := range d {
		if p.Valid {
			n++
		}
	}
	return n
}

// Names of the derived series produced by a full analysis run.
const (
	SeriesMovingAverage = "moving_average"
	SeriesRSI           = "rsi"
	SeriesMACD          = "macd"
	SeriesMACDSignal    = "macd_signal"
	SeriesMACDHistogram = "macd_histogram"
)

// IndicatorBundle holds the derived series of one analysis run, keyed by
// name. Every series shares the timestamp index of the input PriceSeries.
type IndicatorBundle map[string]DerivedSeries
