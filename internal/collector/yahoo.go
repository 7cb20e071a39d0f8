package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockWatch/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(symbol string, query url.Values) ([]model.Bar, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?%s",
		url.PathEscape(symbol), query.Encode())

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *YahooFetcher) FetchDailyBars(symbol string, days int) ([]model.Bar, error) {
	// Yahoo range buckets for the daily interval
	rng := "2y"
	if days <= 5 {
		rng = "5d"
	} else if days <= 30 {
		rng = "1mo"
	} else if days <= 90 {
		rng = "3mo"
	} else if days <= 180 {
		rng = "6mo"
	} else if days <= 365 {
		rng = "1y"
	}
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("range", rng)
	bars, err := f.fetchChart(symbol, query)
	if err != nil {
		return nil, err
	}
	// Trim to requested count
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func (f *YahooFetcher) FetchRange(symbol string, start, end time.Time) ([]model.Bar, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("start date %s must be before end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("period1", fmt.Sprintf("%d", start.Unix()))
	query.Set("period2", fmt.Sprintf("%d", end.Unix()))
	return f.fetchChart(symbol, query)
}

func (f *YahooFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("range", "1d")
	bars, err := f.fetchChart(symbol, query)
	if err != nil {
		return 0, err
	}
	if len(bars) == 0 {
		return 0, fmt.Errorf("yahoo: no price data")
	}
	return bars[len(bars)-1].Close, nil
}
