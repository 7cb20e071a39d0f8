package collector

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockWatch/internal/model"
)

// CachedFetcher wraps a Fetcher with a SQLite-backed daily bar cache, so
// repeated runs on the same day serve bars locally instead of refetching.
// Only raw bars are cached; computed indicators are never persisted.
type CachedFetcher struct {
	inner Fetcher
	db    *sql.DB
	mu    sync.Mutex
}

// NewCachedFetcher opens (or creates) the SQLite cache and runs migrations.
func NewCachedFetcher(inner Fetcher, dbPath string) (*CachedFetcher, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so a concurrent watch run can read while another writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &CachedFetcher{inner: inner, db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] bar cache opened: %s", dbPath)
	return c, nil
}

func (c *CachedFetcher) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_bars (
			symbol  TEXT    NOT NULL,
			day     INTEGER NOT NULL,
			open    REAL,
			high    REAL,
			low     REAL,
			close   REAL,
			volume  REAL,
			PRIMARY KEY (symbol, day)
		)`,
		`CREATE TABLE IF NOT EXISTS fetch_log (
			symbol     TEXT    NOT NULL PRIMARY KEY,
			fetched_at INTEGER NOT NULL,
			bar_count  INTEGER NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (c *CachedFetcher) Name() string { return c.inner.Name() + "+cache" }

// FetchDailyBars serves from the cache when the symbol was already fetched
// today with at least as many bars; otherwise it fetches upstream and
// refreshes the cache.
func (c *CachedFetcher) FetchDailyBars(symbol string, days int) ([]model.Bar, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.freshToday(symbol, days) {
		bars, err := c.loadBars(symbol, days)
		if err == nil && len(bars) > 0 {
			return bars, nil
		}
		if err != nil {
			log.Printf("[WARN] bar cache read failed, refetching: %v", err)
		}
	}

	bars, err := c.inner.FetchDailyBars(symbol, days)
	if err != nil {
		return nil, err
	}
	c.storeBars(symbol, bars)
	return bars, nil
}

// FetchRange always goes upstream (arbitrary date windows cannot be proven
// complete from cached rows) but still refreshes the cache with the result.
func (c *CachedFetcher) FetchRange(symbol string, start, end time.Time) ([]model.Bar, error) {
	bars, err := c.inner.FetchRange(symbol, start, end)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storeBars(symbol, bars)
	return bars, nil
}

func (c *CachedFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	return c.inner.FetchCurrentPrice(symbol)
}

func (c *CachedFetcher) freshToday(symbol string, days int) bool {
	var fetchedAt int64
	var barCount int
	err := c.db.QueryRow(
		`SELECT fetched_at, bar_count FROM fetch_log WHERE symbol = ?`, symbol,
	).Scan(&fetchedAt, &barCount)
	if err != nil {
		return false
	}
	if barCount < days {
		return false
	}
	y1, m1, d1 := time.Unix(fetchedAt, 0).UTC().Date()
	y2, m2, d2 := time.Now().UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (c *CachedFetcher) loadBars(symbol string, days int) ([]model.Bar, error) {
	rows, err := c.db.Query(
		`SELECT day, open, high, low, close, volume FROM daily_bars
		 WHERE symbol = ? ORDER BY day DESC LIMIT ?`, symbol, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bars []model.Bar
	for rows.Next() {
		var day int64
		var b model.Bar
		if err := rows.Scan(&day, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, err
		}
		b.Time = time.Unix(day, 0).UTC()
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// rows came newest-first
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return bars, nil
}

func (c *CachedFetcher) storeBars(symbol string, bars []model.Bar) {
	tx, err := c.db.Begin()
	if err != nil {
		log.Printf("[WARN] bar cache begin tx: %v", err)
		return
	}
	for _, b := range bars {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO daily_bars (symbol, day, open, high, low, close, volume)
			 VALUES (?,?,?,?,?,?,?)`,
			symbol, b.Time.Unix(), b.Open, b.High, b.Low, b.Close, b.Volume,
		); err != nil {
			log.Printf("[WARN] bar cache insert: %v", err)
			tx.Rollback()
			return
		}
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO fetch_log (symbol, fetched_at, bar_count) VALUES (?,?,?)`,
		symbol, time.Now().Unix(), len(bars),
	); err != nil {
		log.Printf("[WARN] bar cache fetch log: %v", err)
		tx.Rollback()
		return
	}
	if err := tx.Commit(); err != nil {
		log.Printf("[WARN] bar cache commit: %v", err)
	}
}

// Close closes the underlying database.
func (c *CachedFetcher) Close() error {
	log.Println("[INFO] closing bar cache")
	return c.db.Close()
}
