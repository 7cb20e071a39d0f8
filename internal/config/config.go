package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StockWatch/internal/indicator"
)

// Config holds all application configuration.
type Config struct {
	Ticker string `yaml:"ticker"`
	Proxy  string `yaml:"proxy"`

	Indicators struct {
		MAWindow             int     `yaml:"ma_window"`
		RSIPeriods           int     `yaml:"rsi_periods"`
		MACDFast             int     `yaml:"macd_fast"`
		MACDSlow             int     `yaml:"macd_slow"`
		MACDSignal           int     `yaml:"macd_signal"`
		FluctuationThreshold float64 `yaml:"fluctuation_threshold"`
	} `yaml:"indicators"`

	Cache struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"cache"`

	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`

	Watch struct {
		Cron string `yaml:"cron"`
		Days int    `yaml:"days"`
	} `yaml:"watch"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKER"); v != "" {
		cfg.Ticker = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("FLUCTUATION_THRESHOLD"); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Indicators.FluctuationThreshold = threshold
		}
	}

	// Defaults
	if cfg.Ticker == "" {
		cfg.Ticker = "AAPL"
	}
	if cfg.Indicators.MAWindow == 0 {
		cfg.Indicators.MAWindow = indicator.DefaultMAWindow
	}
	if cfg.Indicators.RSIPeriods == 0 {
		cfg.Indicators.RSIPeriods = indicator.DefaultRSIPeriods
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = indicator.DefaultMACDFast
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = indicator.DefaultMACDSlow
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = indicator.DefaultMACDSignal
	}
	if cfg.Indicators.FluctuationThreshold == 0 {
		cfg.Indicators.FluctuationThreshold = indicator.DefaultFluctuationThreshold
	}
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "data/bar_cache.db"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 18 * * 1-5"
	}
	if cfg.Watch.Days == 0 {
		cfg.Watch.Days = 90
	}

	return cfg, nil
}

// Params maps the configured indicator settings onto engine parameters.
func (c *Config) Params() indicator.Params {
	return indicator.Params{
		MAWindow:             c.Indicators.MAWindow,
		RSIPeriods:           c.Indicators.RSIPeriods,
		MACDFast:             c.Indicators.MACDFast,
		MACDSlow:             c.Indicators.MACDSlow,
		MACDSignal:           c.Indicators.MACDSignal,
		FluctuationThreshold: c.Indicators.FluctuationThreshold,
	}
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if c.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	if c.Indicators.MAWindow <= 0 {
		return fmt.Errorf("indicators.ma_window must be positive")
	}
	if c.Indicators.RSIPeriods <= 0 {
		return fmt.Errorf("indicators.rsi_periods must be positive")
	}
	if c.Indicators.MACDFast <= 0 || c.Indicators.MACDSlow <= 0 || c.Indicators.MACDSignal <= 0 {
		return fmt.Errorf("indicators.macd periods must be positive")
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be shorter than macd_slow")
	}
	if c.Indicators.FluctuationThreshold < 0 {
		return fmt.Errorf("indicators.fluctuation_threshold must not be negative")
	}
	if c.Watch.Days <= 0 {
		return fmt.Errorf("watch.days must be positive")
	}
	return nil
}
