package watcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"StockWatch/internal/collector"
	"StockWatch/internal/config"
	"StockWatch/internal/indicator"
	"StockWatch/internal/report"
)

// Watcher reruns the analysis for the configured ticker on a cron schedule
// and logs the report, highlighting fluctuation alerts.
type Watcher struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Cfg       *config.Config
	Ctx       context.Context
}

// NewWatcher creates a new Watcher.
func NewWatcher(ctx context.Context, col *collector.Collector, cfg *config.Config) *Watcher {
	return &Watcher{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Cfg:       cfg,
		Ctx:       ctx,
	}
}

// Register adds the watch task under the configured cron spec.
func (w *Watcher) Register() error {
	if _, err := w.Cron.AddFunc(w.Cfg.Watch.Cron, w.runOnce); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	log.Printf("[INFO] watcher started, schedule %q, ticker %s", w.Cfg.Watch.Cron, w.Cfg.Ticker)
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	log.Println("[INFO] watcher stopped")
}

// RunNow executes the watch task immediately (for manual trigger / RUN_ON_START).
func (w *Watcher) RunNow() {
	w.runOnce()
}

func (w *Watcher) runOnce() {
	select {
	case <-w.Ctx.Done():
		return
	default:
	}

	series, err := w.Collector.CollectDaily(w.Cfg.Ticker, w.Cfg.Watch.Days)
	if err != nil {
		log.Printf("[WARN] watch collect failed: %v", err)
		return
	}

	analysis, err := indicator.Analyze(series, w.Cfg.Params())
	if err != nil {
		log.Printf("[WARN] watch analysis failed: %v", err)
		return
	}

	for _, line := range strings.Split(strings.TrimRight(report.FormatAnalysis(series, analysis), "\n"), "\n") {
		log.Printf("[INFO] %s", line)
	}
	if analysis.Alert != nil {
		log.Printf("[WARN] fluctuation alert: %s moved %.2f%% ($%.2f - $%.2f)",
			analysis.Alert.Ticker, analysis.Alert.FluctuationPercent,
			analysis.Alert.MinPrice, analysis.Alert.MaxPrice)
	}
}
