package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"StockWatch/internal/model"
)

func testSeries(closes ...float64) *model.PriceSeries {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{Time: base.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 100}
	}
	return &model.PriceSeries{Ticker: "TEST", Bars: bars}
}

func TestWriteCSV_MergedColumns(t *testing.T) {
	series := testSeries(100, 101, 102)
	ma := model.DerivedSeries{
		{Time: series.Bars[0].Time},
		{Time: series.Bars[1].Time, Value: 100.5, Valid: true},
		{Time: series.Bars[2].Time, Value: 101.5, Valid: true},
	}
	bundle := model.IndicatorBundle{model.SeriesMovingAverage: ma}

	path, err := WriteCSV(filepath.Join(t.TempDir(), "out"), series, bundle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(path) != ".csv" {
		t.Errorf("expected .csv suffix, got %q", path)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}
	header := records[0]
	if header[0] != "Date" || header[len(header)-1] != model.SeriesMovingAverage {
		t.Errorf("unexpected header: %v", header)
	}
	// warm-up point must be an empty cell, not a zero
	if got := records[1][len(header)-1]; got != "" {
		t.Errorf("expected blank cell for undefined point, got %q", got)
	}
	if got := records[2][len(header)-1]; got != "100.5000" {
		t.Errorf("expected 100.5000, got %q", got)
	}
	if records[1][0] != "2024-01-02" {
		t.Errorf("expected date 2024-01-02, got %q", records[1][0])
	}
}

func TestWriteCSV_MisalignedBundle(t *testing.T) {
	series := testSeries(100, 101)
	bundle := model.IndicatorBundle{
		model.SeriesRSI: model.DerivedSeries{{Time: series.Bars[0].Time}},
	}
	if _, err := WriteCSV(filepath.Join(t.TempDir(), "bad.csv"), series, bundle); err == nil {
		t.Fatal("expected error for misaligned series length")
	}
}

func TestWriteCSV_EmptySeries(t *testing.T) {
	if _, err := WriteCSV(filepath.Join(t.TempDir(), "x.csv"), &model.PriceSeries{}, nil); err == nil {
		t.Fatal("expected error for empty series")
	}
}
