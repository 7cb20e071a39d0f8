package report

import (
	"fmt"
	"sort"
	"strings"

	"StockWatch/internal/indicator"
	"StockWatch/internal/model"
)

// FormatStats formats the dispersion statistics block.
func FormatStats(stats *model.StatsSummary) string {
	var b strings.Builder
	b.WriteString("🔍 Extended price statistics:\n")
	b.WriteString(fmt.Sprintf("  Standard deviation: %.4f\n", stats.StdDeviation))
	b.WriteString(fmt.Sprintf("  Variance: %.4f\n", stats.Variance))
	b.WriteString(fmt.Sprintf("  Minimum price: $%.2f\n", stats.MinPrice))
	b.WriteString(fmt.Sprintf("  Maximum price: $%.2f\n", stats.MaxPrice))
	b.WriteString(fmt.Sprintf("  Price range: $%.2f\n", stats.PriceRange))
	b.WriteString(fmt.Sprintf("  Coefficient of variation: %.2f%%\n", stats.CoefficientVariation))
	return b.String()
}

// FormatTrend formats the volatility and trend block. Undefined volatility
// fields render as n/a instead of a fabricated number.
func FormatTrend(trend *model.TrendSummary) string {
	var b strings.Builder
	b.WriteString("📊 Advanced price analysis:\n")
	b.WriteString("  Volatility:\n")
	if trend.MeanReturnDefined {
		b.WriteString(fmt.Sprintf("    Mean daily return: %.4f\n", trend.MeanDailyReturn))
	} else {
		b.WriteString("    Mean daily return: n/a\n")
	}
	if trend.VolatilityDefined {
		b.WriteString(fmt.Sprintf("    Daily volatility: %.4f\n", trend.DailyVolatility))
		b.WriteString(fmt.Sprintf("    Annualized volatility: %.4f\n", trend.AnnualizedVolatility))
	} else {
		b.WriteString("    Daily volatility: n/a\n")
		b.WriteString("    Annualized volatility: n/a\n")
	}
	b.WriteString("  Trend:\n")
	b.WriteString(fmt.Sprintf("    Start price: $%.2f\n", trend.StartPrice))
	b.WriteString(fmt.Sprintf("    End price: $%.2f\n", trend.EndPrice))
	b.WriteString(fmt.Sprintf("    Total return: %.2f%%\n", trend.TotalReturnPercent))
	return b.String()
}

// FormatAlert formats a fluctuation alert warning line.
func FormatAlert(alert *model.FluctuationAlert) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("⚠️ WARNING: strong fluctuations for %s!\n", alert.Ticker))
	b.WriteString(fmt.Sprintf("  Price range: $%.2f - $%.2f\n", alert.MinPrice, alert.MaxPrice))
	b.WriteString(fmt.Sprintf("  Fluctuation: %.2f%%\n", alert.FluctuationPercent))
	return b.String()
}

// FormatIndicators formats the latest defined value of each derived series.
func FormatIndicators(bundle model.IndicatorBundle) string {
	names := make([]string, 0, len(bundle))
	for name := range bundle {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("📈 Latest indicator values:\n")
	for _, name := range names {
		if p, ok := bundle[name].LastDefined(); ok {
			b.WriteString(fmt.Sprintf("  %s: %.4f (%s)\n", name, p.Value, p.Time.Format("2006-01-02")))
		} else {
			b.WriteString(fmt.Sprintf("  %s: n/a (insufficient history)\n", name))
		}
	}
	return b.String()
}

// FormatAnalysis renders the full analysis report for one series.
func FormatAnalysis(series *model.PriceSeries, analysis *indicator.Analysis) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("===== %s | %d bars (%s - %s) =====\n",
		series.Ticker, series.Len(),
		series.Bars[0].Time.Format("2006-01-02"),
		series.Bars[series.Len()-1].Time.Format("2006-01-02")))

	if analysis.AveragePriceDefined {
		b.WriteString(fmt.Sprintf("Average close price: $%.2f\n", analysis.AveragePrice))
	}
	if analysis.Stats != nil {
		b.WriteString("\n")
		b.WriteString(FormatStats(analysis.Stats))
	}
	if analysis.Trend != nil {
		b.WriteString("\n")
		b.WriteString(FormatTrend(analysis.Trend))
	}
	if len(analysis.Bundle) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatIndicators(analysis.Bundle))
	}
	if analysis.Alert != nil {
		b.WriteString("\n")
		b.WriteString(FormatAlert(analysis.Alert))
	}
	if len(analysis.Problems) > 0 {
		b.WriteString("\nSkipped:\n")
		names := make([]string, 0, len(analysis.Problems))
		for name := range analysis.Problems {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s: %v\n", name, analysis.Problems[name]))
		}
	}
	return b.String()
}
