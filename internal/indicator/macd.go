package indicator

import (
	"fmt"

	"StockWatch/internal/model"
)

// Conventional MACD spans.
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// ema returns the exponential moving average of values with the given span.
// The recurrence seeds at the first value with alpha = 2/(span+1), so every
// position is defined; there is no warm-up gap.
func ema(values []float64, span int) []float64 {
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(values))
	for i, v := range values {
		if i == 0 {
			out[0] = v
			continue
		}
		out[i] = alpha*v + (1.0-alpha)*out[i-1]
	}
	return out
}

// MACD computes the MACD line (fast EMA minus slow EMA of close), the signal
// line (EMA of the MACD line) and the histogram (MACD minus signal). Unlike
// the windowed indicators, all three series are fully defined from the first
// bar because the EMAs seed at the first close.
func MACD(series *model.PriceSeries, fast, slow, signal int) (macdLine, signalLine, histogram model.DerivedSeries, err error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: MACD periods must be positive, got fast=%d slow=%d signal=%d",
			ErrInvalidParameter, fast, slow, signal)
	}

	closes := series.Closes()
	fastEMA := ema(closes, fast)
	slowEMA := ema(closes, slow)

	macdValues := make([]float64, len(closes))
	for i := range closes {
		macdValues[i] = fastEMA[i] - slowEMA[i]
	}
	signalValues := ema(macdValues, signal)

	macdLine = make(model.DerivedSeries, len(closes))
	signalLine = make(model.DerivedSeries, len(closes))
	histogram = make(model.DerivedSeries, len(closes))
	for i := range closes {
		t := series.Bars[i].Time
		macdLine[i] = model.Point{Time: t, Value: macdValues[i], Valid: true}
		signalLine[i] = model.Point{Time: t, Value: signalValues[i], Valid: true}
		histogram[i] = model.Point{Time: t, Value: macdValues[i] - signalValues[i], Valid: true}
	}
	return macdLine, signalLine, histogram, nil
}
