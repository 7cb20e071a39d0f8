package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"StockWatch/internal/model"
)

// canonical column order for the derived series the engine produces;
// unknown series names are appended alphabetically after these.
var knownOrder = []string{
	model.SeriesMovingAverage,
	model.SeriesRSI,
	model.SeriesMACD,
	model.SeriesMACDSignal,
	model.SeriesMACDHistogram,
}

// WriteCSV merges the price series and its derived series into one CSV
// file. Undefined warm-up points become blank cells so downstream tools
// cannot mistake them for zeros. The .csv suffix is added when missing.
// Returns the path actually written.
func WriteCSV(path string, series *model.PriceSeries, bundle model.IndicatorBundle) (string, error) {
	if series.Len() == 0 {
		return "", fmt.Errorf("no data to export")
	}
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		path += ".csv"
	}

	for name, derived := range bundle {
		if len(derived) != series.Len() {
			return "", fmt.Errorf("series %q has %d points, expected %d", name, len(derived), series.Len())
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	names := columnOrder(bundle)
	header := append([]string{"Date", "Open", "High", "Low", "Close", "Volume"}, names...)
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for i, bar := range series.Bars {
		row := []string{
			bar.Time.Format("2006-01-02"),
			strconv.FormatFloat(bar.Open, 'f', 4, 64),
			strconv.FormatFloat(bar.High, 'f', 4, 64),
			strconv.FormatFloat(bar.Low, 'f', 4, 64),
			strconv.FormatFloat(bar.Close, 'f', 4, 64),
			strconv.FormatFloat(bar.Volume, 'f', 0, 64),
		}
		for _, name := range names {
			p := bundle[name][i]
			if p.Valid {
				row = append(row, strconv.FormatFloat(p.Value, 'f', 4, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

func columnOrder(bundle model.IndicatorBundle) []string {
	var names []string
	seen := map[string]bool{}
	for _, name := range knownOrder {
		if _, ok := bundle[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range bundle {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
