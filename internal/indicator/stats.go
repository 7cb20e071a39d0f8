package indicator

import (
	"fmt"
	"math"

	"StockWatch/internal/model"
)

// Price columns accepted by Dispersion.
const (
	FieldOpen   = "open"
	FieldHigh   = "high"
	FieldLow    = "low"
	FieldClose  = "close"
	FieldVolume = "volume"
)

// column extracts the requested price column from the series.
func column(series *model.PriceSeries, field string) ([]float64, error) {
	values := make([]float64, len(series.Bars))
	for i, b := range series.Bars {
		switch field {
		case FieldOpen:
			values[i] = b.Open
		case FieldHigh:
			values[i] = b.High
		case FieldLow:
			values[i] = b.Low
		case FieldClose:
			values[i] = b.Close
		case FieldVolume:
			values[i] = b.Volume
		default:
			return nil, fmt.Errorf("%w: unknown column %q", ErrMissingField, field)
		}
	}
	return values, nil
}

// AveragePrice returns the arithmetic mean close price over the series.
func AveragePrice(series *model.PriceSeries) (float64, error) {
	if series.Len() == 0 {
		return 0, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}
	sum := 0.0
	for _, b := range series.Bars {
		sum += b.Close
	}
	return sum / float64(series.Len()), nil
}

// Dispersion computes sample dispersion statistics for one price column:
// standard deviation and variance with Bessel's correction (n-1 denominator),
// min, max, range and the coefficient of variation in percent. A series with
// fewer than two points has no sample variance, and a zero mean makes the
// coefficient of variation a division by zero; both are rejected explicitly.
func Dispersion(series *model.PriceSeries, field string) (*model.StatsSummary, error) {
	values, err := column(series, field)
	if err != nil {
		return nil, err
	}
	return dispersion(values)
}

// DispersionOfDerived computes the same statistics over the defined points
// of a derived series, skipping its warm-up gap.
func DispersionOfDerived(derived model.DerivedSeries) (*model.StatsSummary, error) {
	values := make([]float64, 0, len(derived))
	for _, p := range derived {
		if p.Valid {
			values = append(values, p.Value)
		}
	}
	return dispersion(values)
}

func dispersion(values []float64) (*model.StatsSummary, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: need at least two points, got %d", ErrInsufficientData, len(values))
	}

	mean, minV, maxV := values[0], values[0], values[0]
	for _, v := range values[1:] {
		mean += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	mean /= float64(len(values))
	if mean == 0 {
		return nil, fmt.Errorf("%w: zero mean", ErrDegenerateInput)
	}

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	variance := sumSq / float64(len(values)-1)
	std := math.Sqrt(variance)

	return &model.StatsSummary{
		StdDeviation:         std,
		Variance:             variance,
		MinPrice:             minV,
		MaxPrice:             maxV,
		PriceRange:           maxV - minV,
		CoefficientVariation: std / mean * 100.0,
	}, nil
}
