package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"StockWatch/internal/collector"
	"StockWatch/internal/config"
	"StockWatch/internal/export"
	"StockWatch/internal/indicator"
	"StockWatch/internal/model"
	"StockWatch/internal/report"
	"StockWatch/internal/watcher"
)

// presetDays maps the preset period names to trading-day counts.
var presetDays = map[string]int{
	"1d":  1,
	"5d":  5,
	"1mo": 22,
	"3mo": 66,
	"6mo": 132,
	"1y":  252,
	"2y":  504,
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	watchMode := flag.Bool("watch", false, "run on the configured cron schedule instead of interactively")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher, with the SQLite bar cache when configured
	var fetcher collector.Fetcher = collector.NewYahooFetcher(cfg.Proxy)
	if cfg.Cache.SQLitePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Cache.SQLitePath), 0o755); err != nil {
			log.Printf("[WARN] create cache dir failed, caching disabled: %v", err)
		} else if cached, err := collector.NewCachedFetcher(fetcher, cfg.Cache.SQLitePath); err != nil {
			log.Printf("[WARN] init bar cache failed, caching disabled: %v", err)
		} else {
			fetcher = cached
			defer cached.Close()
		}
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher)

	if *watchMode {
		runWatch(col, cfg)
		return
	}
	runInteractive(col, cfg)
}

func runWatch(col *collector.Collector, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w := watcher.NewWatcher(ctx, col, cfg)
	if err := w.Register(); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	w.Start()
	defer w.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing watch task now")
		go w.RunNow()
	}

	log.Println("[INFO] StockWatch is running. Press Ctrl+C to stop.")
	<-ctx.Done()
	log.Println("[INFO] shutdown signal received, stopping...")
}

func runInteractive(col *collector.Collector, cfg *config.Config) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Welcome to the stock data analysis tool.")
	fmt.Println("Ticker examples: AAPL (Apple Inc), GOOGL (Alphabet Inc), MSFT (Microsoft), AMZN (Amazon), TSLA (Tesla).")

	ticker := prompt(reader, fmt.Sprintf("Enter a ticker (default %s): ", cfg.Ticker))
	if ticker == "" {
		ticker = cfg.Ticker
	}
	ticker = strings.ToUpper(ticker)

	fmt.Println("\nChoose an analysis period:")
	fmt.Println("1. Preset period")
	fmt.Println("2. Manual date range")
	choice := prompt(reader, "Enter option (1/2): ")

	var (
		series    *model.PriceSeries
		err       error
		periodTag string
	)
	switch choice {
	case "2":
		startStr := prompt(reader, "Start date (YYYY-MM-DD): ")
		endStr := prompt(reader, "End date (YYYY-MM-DD): ")
		start, perr := time.Parse("2006-01-02", startStr)
		if perr != nil {
			log.Fatalf("[FATAL] bad start date: %v", perr)
		}
		end, perr := time.Parse("2006-01-02", endStr)
		if perr != nil {
			log.Fatalf("[FATAL] bad end date: %v", perr)
		}
		series, err = col.CollectRange(ticker, start, end)
		periodTag = startStr + "_to_" + endStr
	default:
		if choice != "1" {
			fmt.Println("Unknown option, using a preset period.")
		}
		fmt.Println("\nPreset periods: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y")
		period := prompt(reader, "Enter period (default 1mo): ")
		days, ok := presetDays[period]
		if !ok {
			if period != "" {
				fmt.Printf("Unknown period %q, using 1mo.\n", period)
			}
			period = "1mo"
			days = presetDays[period]
		}
		series, err = col.CollectDaily(ticker, days)
		periodTag = period
	}
	if err != nil {
		log.Fatalf("[FATAL] collect %s: %v", ticker, err)
	}

	analysis, err := indicator.Analyze(series, cfg.Params())
	if err != nil {
		log.Fatalf("[FATAL] analyze %s: %v", ticker, err)
	}

	fmt.Println()
	fmt.Print(report.FormatAnalysis(series, analysis))

	if !confirm(prompt(reader, "\nExport the data to CSV? (yes/no): ")) {
		return
	}
	path := filepath.Join(cfg.Export.Dir, fmt.Sprintf("%s_%s_stock_data.csv", ticker, periodTag))
	if _, err := os.Stat(path); err == nil {
		if !confirm(prompt(reader, fmt.Sprintf("File %s already exists. Overwrite? (yes/no): ", path))) {
			fmt.Println("Export cancelled.")
			return
		}
	}
	written, err := export.WriteCSV(path, series, analysis.Bundle)
	if err != nil {
		log.Fatalf("[FATAL] export csv: %v", err)
	}
	fmt.Printf("Data saved to %s\n", written)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func confirm(answer string) bool {
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true
	}
	return false
}
