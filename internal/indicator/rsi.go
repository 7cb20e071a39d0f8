package indicator

import (
	"fmt"

	"StockWatch/internal/model"
)

// DefaultRSIPeriods is the conventional RSI lookback.
const DefaultRSIPeriods = 14

// RSI computes the Relative Strength Index over the given number of
// periods, using trailing simple means of gains and losses (Cutler's
// variant, not Wilder smoothing). The first `periods` points are undefined
// because the delta at the first bar does not exist.
//
// When the average loss is zero and the average gain is positive, RSI is
// exactly 100. When both averages are zero the window is flat and carries no
// momentum signal, so the point stays undefined rather than reporting a
// synthetic neutral value.
func RSI(series *model.PriceSeries, periods int) (model.DerivedSeries, error) {
	if periods <= 0 {
		return nil, fmt.Errorf("%w: periods must be positive, got %d", ErrInvalidParameter, periods)
	}

	closes := series.Closes()
	out := make(model.DerivedSeries, len(closes))
	for i := range closes {
		out[i].Time = series.Bars[i].Time
	}

	for i := periods; i < len(closes); i++ {
		var gainSum, lossSum float64
		for j := i - periods + 1; j <= i; j++ {
			delta := closes[j] - closes[j-1]
			if delta > 0 {
				gainSum += delta
			} else {
				lossSum -= delta
			}
		}
		avgGain := gainSum / float64(periods)
		avgLoss := lossSum / float64(periods)

		switch {
		case avgGain == 0 && avgLoss == 0:
			// flat window, no signal
		case avgLoss == 0:
			out[i].Value = 100.0
			out[i].Valid = true
		default:
			rs := avgGain / avgLoss
			out[i].Value = 100.0 - 100.0/(1.0+rs)
			out[i].Valid = true
		}
	}
	return out, nil
}
