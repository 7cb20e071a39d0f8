package indicator

import (
	"errors"
	"testing"
	"time"

	"StockWatch/internal/model"
)

func testSeries(closes ...float64) *model.PriceSeries {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return &model.PriceSeries{Ticker: "TEST", Bars: bars, FetchedAt: base}
}

func TestMovingAverage_WarmupAndValues(t *testing.T) {
	series := testSeries(100, 102, 101, 105, 103, 108, 107)
	ma, err := MovingAverage(series, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma) != series.Len() {
		t.Fatalf("expected %d points, got %d", series.Len(), len(ma))
	}
	for i := 0; i < 2; i++ {
		if ma[i].Valid {
			t.Errorf("point %d should be undefined during warm-up", i)
		}
	}
	if !ma[2].Valid || ma[2].Value != 101.0 {
		t.Errorf("expected MA=101.0 at index 2, got %v (valid=%v)", ma[2].Value, ma[2].Valid)
	}
	want := (105.0 + 103.0 + 108.0) / 3.0
	if !ma[5].Valid || ma[5].Value != want {
		t.Errorf("expected MA=%v at index 5, got %v", want, ma[5].Value)
	}
}

func TestMovingAverage_TimestampAlignment(t *testing.T) {
	series := testSeries(10, 11, 12, 13)
	ma, err := MovingAverage(series, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range ma {
		if !p.Time.Equal(series.Bars[i].Time) {
			t.Errorf("point %d: timestamp %v does not match bar %v", i, p.Time, series.Bars[i].Time)
		}
	}
}

func TestMovingAverage_WindowLargerThanSeries(t *testing.T) {
	series := testSeries(100, 101)
	ma, err := MovingAverage(series, 5)
	if err != nil {
		t.Fatalf("short series should not be an error, got %v", err)
	}
	if n := ma.DefinedCount(); n != 0 {
		t.Errorf("expected all points undefined, got %d defined", n)
	}
}

func TestMovingAverage_InvalidWindow(t *testing.T) {
	series := testSeries(100, 101, 102)
	for _, window := range []int{0, -1} {
		if _, err := MovingAverage(series, window); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("window %d: expected ErrInvalidParameter, got %v", window, err)
		}
	}
}
