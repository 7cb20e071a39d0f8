package model

// StatsSummary holds sample dispersion statistics for one price column.
type StatsSummary struct {
	StdDeviation         float64
	Variance             float64
	MinPrice             float64
	MaxPrice             float64
	PriceRange           float64
	CoefficientVariation float64 // percent
}

// TrendSummary holds daily-return volatility and overall trend figures.
// The volatility fields are only meaningful when their Defined flag is set;
// a one-bar series has no returns and a two-bar series has a single return,
// which is not enough for a sample standard deviation.
type TrendSummary struct {
	MeanDailyReturn      float64
	MeanReturnDefined    bool
	DailyVolatility      float64
	AnnualizedVolatility float64
	VolatilityDefined    bool
	StartPrice           float64
	EndPrice             float64
	TotalReturnPercent   float64
}

// FluctuationAlert reports that the close-price range exceeded the caller's
// threshold. Absence of an alert is a normal outcome, not a failure.
type FluctuationAlert struct {
	Ticker             string
	MinPrice           float64
	MaxPrice           float64
	FluctuationPercent float64 // rounded to 2 decimal places
}
