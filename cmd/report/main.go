package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/format37/upbit-book-order/internal/config"
	"github.com/format37/upbit-book-order/internal/database"
	"github.com/format37/upbit-book-order/internal/source"
)

// report prints per-symbol row counts and timestamp coverage straight from
// the source store, for sizing an export or cross-checking a finished one.
func main() {
	configPath := flag.String("config", "configs/export.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Database.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	counts, err := source.NewStore(pool).Counts(ctx)
	if err != nil {
		logger.Error("failed to read counts", "error", err)
		os.Exit(1)
	}

	rule := strings.Repeat("=", 86)
	fmt.Println(rule)
	fmt.Println("SYMBOL ROW COUNTS")
	fmt.Println(rule)
	fmt.Printf("%-15s %15s %18s %12s %20s\n", "Symbol", "Snapshots", "Orderbook Rows", "Avg Levels", "Coverage")
	fmt.Println(strings.Repeat("-", 86))

	var totalSnapshots, totalLevels int64
	for _, c := range counts {
		avgLevels := 0.0
		if c.Snapshots > 0 {
			avgLevels = float64(c.LevelRows) / float64(c.Snapshots)
		}
		fmt.Printf("%-15s %15d %18d %12.1f %20s\n",
			c.SymbolCode, c.Snapshots, c.LevelRows, avgLevels, coverage(c))
		totalSnapshots += c.Snapshots
		totalLevels += c.LevelRows
	}

	fmt.Println(strings.Repeat("-", 86))
	fmt.Printf("%-15s %15d %18d\n", "TOTAL", totalSnapshots, totalLevels)
}

func coverage(c source.SymbolCounts) string {
	if c.Snapshots == 0 {
		return "-"
	}
	days := time.Duration(c.LastTS-c.FirstTS) * time.Millisecond
	return fmt.Sprintf("%s .. %s (%s)",
		time.UnixMilli(c.FirstTS).UTC().Format("2006-01-02"),
		time.UnixMilli(c.LastTS).UTC().Format("2006-01-02"),
		days.Round(time.Hour))
}
