package indicator

import (
	"errors"
	"testing"
)

func TestRSI_Bounds(t *testing.T) {
	series := testSeries(100, 102, 99, 104, 103, 101, 106, 108, 105, 110, 109, 112)
	rsi, err := RSI(series, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range rsi {
		if !p.Valid {
			continue
		}
		if p.Value < 0 || p.Value > 100 {
			t.Errorf("point %d: RSI %.4f outside [0,100]", i, p.Value)
		}
	}
	if rsi.DefinedCount() == 0 {
		t.Fatal("expected defined RSI points after warm-up")
	}
}

func TestRSI_WarmupGap(t *testing.T) {
	series := testSeries(100, 101, 102, 103, 104, 105, 106)
	periods := 3
	rsi, err := RSI(series, periods)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < periods; i++ {
		if rsi[i].Valid {
			t.Errorf("point %d should be undefined, first %d entries lack history", i, periods)
		}
	}
	if !rsi[periods].Valid {
		t.Errorf("point %d should be the first defined entry", periods)
	}
}

func TestRSI_AllGainsIsExactly100(t *testing.T) {
	series := testSeries(100, 101, 102, 103, 104, 105)
	rsi, err := RSI(series, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range rsi {
		if p.Valid && p.Value != 100.0 {
			t.Errorf("point %d: strictly rising closes must give RSI=100, got %.4f", i, p.Value)
		}
	}
}

func TestRSI_FlatMarketUndefined(t *testing.T) {
	series := testSeries(50, 50, 50, 50, 50, 50)
	rsi, err := RSI(series, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := rsi.DefinedCount(); n != 0 {
		t.Errorf("flat market should leave RSI undefined, got %d defined points", n)
	}
}

func TestRSI_AllLossesIsZero(t *testing.T) {
	series := testSeries(105, 104, 103, 102, 101, 100)
	rsi, err := RSI(series, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range rsi {
		if p.Valid && p.Value != 0.0 {
			t.Errorf("point %d: strictly falling closes must give RSI=0, got %.4f", i, p.Value)
		}
	}
}

func TestRSI_InvalidPeriods(t *testing.T) {
	series := testSeries(100, 101)
	if _, err := RSI(series, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
