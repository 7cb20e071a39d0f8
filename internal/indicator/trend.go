package indicator

import (
	"fmt"
	"math"

	"StockWatch/internal/model"
)

// TradingDaysPerYear is the annualization scalar applied to daily
// volatility.
const TradingDaysPerYear = 252

// Trend computes daily percentage returns and summarizes volatility and
// overall price movement. A single-bar series has no returns: the trend
// fields still report start == end with zero total return, while the
// return and volatility fields stay undefined. The sample standard
// deviation of returns needs at least two returns (three bars).
func Trend(series *model.PriceSeries) (*model.TrendSummary, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}

	closes := series.Closes()
	start, end := closes[0], closes[len(closes)-1]
	if start == 0 {
		return nil, fmt.Errorf("%w: start price is zero", ErrDegenerateInput)
	}

	summary := &model.TrendSummary{
		StartPrice:         start,
		EndPrice:           end,
		TotalReturnPercent: (end - start) / start * 100.0,
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			return nil, fmt.Errorf("%w: zero close at bar %d", ErrDegenerateInput, i-1)
		}
		returns = append(returns, (closes[i]-prev)/prev)
	}
	if len(returns) == 0 {
		return summary, nil
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	summary.MeanDailyReturn = mean
	summary.MeanReturnDefined = true

	if len(returns) < 2 {
		return summary, nil
	}
	sumSq := 0.0
	for _, r := range returns {
		d := r - mean
		sumSq += d * d
	}
	daily := math.Sqrt(sumSq / float64(len(returns)-1))
	summary.DailyVolatility = daily
	summary.AnnualizedVolatility = daily * math.Sqrt(TradingDaysPerYear)
	summary.VolatilityDefined = true
	return summary, nil
}
