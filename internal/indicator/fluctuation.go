package indicator

import (
	"fmt"
	"math"

	"StockWatch/internal/model"
)

// DefaultFluctuationThreshold is the percent threshold used when none is
// configured.
const DefaultFluctuationThreshold = 5.0

// CheckFluctuation measures the close-price range of the series as a percent
// of the minimum close and returns an alert when it exceeds the threshold.
// A nil alert with a nil error means the market stayed inside the threshold.
// The reported percent is rounded to two decimal places.
func CheckFluctuation(series *model.PriceSeries, ticker string, threshold float64) (*model.FluctuationAlert, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}

	closes := series.Closes()
	minV, maxV := closes[0], closes[0]
	for _, c := range closes[1:] {
		if c < minV {
			minV = c
		}
		if c > maxV {
			maxV = c
		}
	}
	if minV == 0 {
		return nil, fmt.Errorf("%w: minimum close is zero", ErrDegenerateInput)
	}

	rangePercent := (maxV - minV) / minV * 100.0
	if rangePercent <= threshold {
		return nil, nil
	}
	return &model.FluctuationAlert{
		Ticker:             ticker,
		MinPrice:           minV,
		MaxPrice:           maxV,
		FluctuationPercent: math.Round(rangePercent*100.0) / 100.0,
	}, nil
}
