package indicator

import (
	"fmt"

	"StockWatch/internal/model"
)

// DefaultMAWindow is the moving-average window used when none is configured.
const DefaultMAWindow = 5

// Params holds the tunable windows for a full analysis run.
type Params struct {
	MAWindow             int
	RSIPeriods           int
	MACDFast             int
	MACDSlow             int
	MACDSignal           int
	FluctuationThreshold float64
}

// DefaultParams returns the conventional parameter set.
func DefaultParams() Params {
	return Params{
		MAWindow:             DefaultMAWindow,
		RSIPeriods:           DefaultRSIPeriods,
		MACDFast:             DefaultMACDFast,
		MACDSlow:             DefaultMACDSlow,
		MACDSignal:           DefaultMACDSignal,
		FluctuationThreshold: DefaultFluctuationThreshold,
	}
}

// Analysis is the merged result set of one engine run. Transforms that
// failed are absent from the result and recorded in Problems under their
// series name; the siblings still compute.
type Analysis struct {
	Bundle              model.IndicatorBundle
	Stats               *model.StatsSummary
	Trend               *model.TrendSummary
	AveragePrice        float64
	AveragePriceDefined bool
	Alert               *model.FluctuationAlert
	Problems            map[string]error
}

// Analyze runs every transform over the series independently. It fails as a
// whole only when the series itself is unusable; individual transform
// failures are isolated in the returned Problems map.
func Analyze(series *model.PriceSeries, params Params) (*Analysis, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}

	a := &Analysis{
		Bundle:   model.IndicatorBundle{},
		Problems: map[string]error{},
	}

	if ma, err := MovingAverage(series, params.MAWindow); err != nil {
		a.Problems[model.SeriesMovingAverage] = err
	} else {
		a.Bundle[model.SeriesMovingAverage] = ma
	}

	if rsi, err := RSI(series, params.RSIPeriods); err != nil {
		a.Problems[model.SeriesRSI] = err
	} else {
		a.Bundle[model.SeriesRSI] = rsi
	}

	if macdLine, signalLine, histogram, err := MACD(series, params.MACDFast, params.MACDSlow, params.MACDSignal); err != nil {
		a.Problems[model.SeriesMACD] = err
	} else {
		a.Bundle[model.SeriesMACD] = macdLine
		a.Bundle[model.SeriesMACDSignal] = signalLine
		a.Bundle[model.SeriesMACDHistogram] = histogram
	}

	if stats, err := Dispersion(series, FieldClose); err != nil {
		a.Problems["dispersion"] = err
	} else {
		a.Stats = stats
	}

	if trend, err := Trend(series); err != nil {
		a.Problems["trend"] = err
	} else {
		a.Trend = trend
	}

	if avg, err := AveragePrice(series); err != nil {
		a.Problems["average_price"] = err
	} else {
		a.AveragePrice = avg
		a.AveragePriceDefined = true
	}

	if alert, err := CheckFluctuation(series, series.Ticker, params.FluctuationThreshold); err != nil {
		a.Problems["fluctuation"] = err
	} else {
		a.Alert = alert
	}

	return a, nil
}
