package indicator

import (
	"fmt"

	"StockWatch/internal/model"
)

// MovingAverage computes the trailing simple moving average of close prices
// over the given window. Each defined point is the arithmetic mean of the
// window closes ending at that bar, inclusive; the first window-1 points are
// undefined. A series shorter than the window yields an all-undefined
// series, which is a normal outcome.
func MovingAverage(series *model.PriceSeries, window int) (model.DerivedSeries, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidParameter, window)
	}

	closes := series.Closes()
	out := make(model.DerivedSeries, len(closes))
	for i := range closes {
		out[i].Time = series.Bars[i].Time
		if i < window-1 {
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		out[i].Value = sum / float64(window)
		out[i].Valid = true
	}
	return out, nil
}
