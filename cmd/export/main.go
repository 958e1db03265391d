package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/format37/upbit-book-order/internal/config"
	"github.com/format37/upbit-book-order/internal/database"
	"github.com/format37/upbit-book-order/internal/export"
	"github.com/format37/upbit-book-order/internal/source"
	"github.com/format37/upbit-book-order/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/export.yaml", "path to config file")
	outputDir := flag.String("output-dir", "", "destination directory for parquet files")
	chunkSize := flag.Int("chunk-size", 0, "rows per extraction batch")
	symbols := flag.String("symbols", "", "comma-separated symbol codes to export (default: all)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting export",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override config
	if *outputDir != "" {
		cfg.Export.OutputDir = *outputDir
	}
	if *chunkSize > 0 {
		cfg.Export.ChunkSize = *chunkSize
	}
	if *symbols != "" {
		cfg.Export.Symbols = strings.Split(*symbols, ",")
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"output_dir", cfg.Export.OutputDir,
		"chunk_size", cfg.Export.ChunkSize,
		"symbols", symbolsLabel(cfg.Export.Symbols),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	runner := export.NewRunner(export.Config{
		OutputDir:    cfg.Export.OutputDir,
		ChunkSize:    cfg.Export.ChunkSize,
		Symbols:      cfg.Export.Symbols,
		ProgressRows: cfg.Export.ProgressRows,
	}, source.NewStore(pool), logger)

	summary, err := runner.Run(ctx)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if failed := summary.Failed(); len(failed) > 0 {
		for _, p := range failed {
			logger.Error("partition not exported",
				"symbol", p.Symbol,
				"error", p.Err,
			)
		}
		os.Exit(1)
	}
}

func symbolsLabel(symbols []string) string {
	if len(symbols) == 0 {
		return "all"
	}
	return strings.Join(symbols, ",")
}
