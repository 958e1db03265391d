package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/format37/upbit-book-order/internal/model"
	"github.com/format37/upbit-book-order/internal/source"
)

// Source provides the partition set and per-partition row cursors. It is
// implemented by source.Store.
type Source interface {
	Symbols(ctx context.Context, codes []string) ([]model.Symbol, error)
	Snapshots(ctx context.Context, sym model.Symbol) (source.Cursor[model.Snapshot], error)
	BookLevels(ctx context.Context, sym model.Symbol) (source.Cursor[model.BookLevel], error)
}

// Status is a partition's position in its export lifecycle.
type Status int

const (
	StatusNotStarted Status = iota
	StatusSkipped
	StatusExtracting
	StatusWriting
	StatusFinalized
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusSkipped:
		return "skipped"
	case StatusExtracting:
		return "extracting"
	case StatusWriting:
		return "writing"
	case StatusFinalized:
		return "finalized"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Config holds export run settings.
type Config struct {
	OutputDir    string   // Destination directory, created if absent
	ChunkSize    int      // Rows per extraction batch
	Symbols      []string // Optional partition allow-list
	ProgressRows int64    // Rows between progress log lines
}

// PartitionResult is the outcome of one partition.
type PartitionResult struct {
	Symbol       string
	Status       Status
	SnapshotRows int64
	LevelRows    int64
	Err          error
}

// Summary is the outcome of one run.
type Summary struct {
	SymbolCount int // rows in the dimension file
	Partitions  []PartitionResult
	Elapsed     time.Duration
}

// SnapshotRows totals snapshot rows exported this run (skipped partitions
// contribute nothing).
func (s *Summary) SnapshotRows() int64 {
	var n int64
	for _, p := range s.Partitions {
		n += p.SnapshotRows
	}
	return n
}

// LevelRows totals order-book level rows exported this run.
func (s *Summary) LevelRows() int64 {
	var n int64
	for _, p := range s.Partitions {
		n += p.LevelRows
	}
	return n
}

// Failed returns the partitions that reached StatusFailed.
func (s *Summary) Failed() []PartitionResult {
	var out []PartitionResult
	for _, p := range s.Partitions {
		if p.Status == StatusFailed {
			out = append(out, p)
		}
	}
	return out
}

// Runner drives a full export: dimension table first, then every partition
// strictly sequentially, one table and one cursor at a time.
type Runner struct {
	cfg    Config
	src    Source
	gov    *Governor
	logger *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(cfg Config, src Source, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:    cfg,
		src:    src,
		gov:    NewGovernor(cfg.ChunkSize, cfg.ProgressRows, logger),
		logger: logger,
	}
}

// Run executes the export. It returns an error only for run-level failures
// (unknown partition, unreachable output directory, dimension export);
// per-partition failures are recorded in the Summary and the run continues
// with the next partition.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	// Resolve the partition set first: an unknown --symbols key fails the
	// run before anything is extracted.
	partitions, err := r.src.Symbols(ctx, r.cfg.Symbols)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	r.sweepTempFiles()

	// The dimension file always carries every symbol, regardless of
	// filtering, because partition file names key off it downstream.
	all := partitions
	if len(r.cfg.Symbols) > 0 {
		all, err = r.src.Symbols(ctx, nil)
		if err != nil {
			return nil, err
		}
	}
	if err := r.exportSymbols(all); err != nil {
		return nil, err
	}

	summary := &Summary{SymbolCount: len(all)}
	for i, sym := range partitions {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		r.logger.Info("processing partition",
			"symbol", sym.SymbolCode,
			"position", fmt.Sprintf("%d/%d", i+1, len(partitions)),
		)
		summary.Partitions = append(summary.Partitions, r.exportPartition(ctx, sym))
	}

	summary.Elapsed = time.Since(start)
	r.logSummary(summary)
	return summary, nil
}

// exportSymbols writes the dimension table as a single-batch finalized
// file. It runs unconditionally on every run.
func (r *Runner) exportSymbols(symbols []model.Symbol) error {
	path := SymbolsFile(r.cfg.OutputDir)

	w := NewTableWriter[model.Symbol](path)
	if err := w.Append(symbols); err != nil {
		return err
	}
	if err := w.Finalize(); err != nil {
		return err
	}

	r.logger.Info("symbols exported", "rows", len(symbols), "file", path)
	return nil
}

// exportPartition runs one partition through its lifecycle. Tables whose
// output is already finalized are skipped individually, so a re-run after
// a mid-partition failure rebuilds only the missing file.
func (r *Runner) exportPartition(ctx context.Context, sym model.Symbol) PartitionResult {
	res := PartitionResult{Symbol: sym.SymbolCode, Status: StatusNotStarted}

	snapPath := SnapshotsFile(r.cfg.OutputDir, sym.SymbolCode)
	levelPath := BookLevelsFile(r.cfg.OutputDir, sym.SymbolCode)

	snapDone := r.gov.Finalized(snapPath)
	levelDone := r.gov.Finalized(levelPath)
	if snapDone && levelDone {
		res.Status = StatusSkipped
		r.logger.Info("partition already exported, skipping", "symbol", sym.SymbolCode)
		return res
	}

	if snapDone {
		r.logger.Info("snapshots already exported, skipping", "symbol", sym.SymbolCode, "file", snapPath)
	} else {
		rows, err := exportTable(ctx, r, &res, snapPath, "snapshots", sym, r.src.Snapshots)
		res.SnapshotRows = rows
		if err != nil {
			return failPartition(&res, r.logger, err, rows)
		}
	}

	if levelDone {
		r.logger.Info("orderbook already exported, skipping", "symbol", sym.SymbolCode, "file", levelPath)
	} else {
		rows, err := exportTable(ctx, r, &res, levelPath, "orderbook", sym, r.src.BookLevels)
		res.LevelRows = rows
		if err != nil {
			return failPartition(&res, r.logger, err, rows)
		}
	}

	res.Status = StatusFinalized
	return res
}

// exportTable streams one table of one partition: open cursor, interleave
// batch pulls with writer appends, then finalize. Cancellation is honored
// between batches, never inside one.
func exportTable[T any](
	ctx context.Context,
	r *Runner,
	res *PartitionResult,
	path string,
	table string,
	sym model.Symbol,
	open func(context.Context, model.Symbol) (source.Cursor[T], error),
) (int64, error) {
	res.Status = StatusExtracting

	cur, err := open(ctx, sym)
	if err != nil {
		return 0, err
	}
	defer cur.Close()

	w := NewTableWriter[T](path)
	prog := r.gov.Track(sym.SymbolCode, table)

	for {
		if err := ctx.Err(); err != nil {
			w.Abort()
			return prog.Rows(), err
		}

		batch, err := cur.Next(r.gov.ChunkSize())
		if err != nil {
			w.Abort()
			return prog.Rows(), err
		}
		if len(batch) == 0 {
			break
		}

		if err := w.Append(batch); err != nil {
			return prog.Rows(), err
		}
		prog.Observe(len(batch))
	}

	res.Status = StatusWriting
	if err := w.Finalize(); err != nil {
		return prog.Rows(), err
	}

	prog.Done(path)
	return prog.Rows(), nil
}

func failPartition(res *PartitionResult, logger *slog.Logger, err error, rows int64) PartitionResult {
	res.Status = StatusFailed
	res.Err = err
	logger.Error("partition failed",
		"symbol", res.Symbol,
		"rows_reached", rows,
		"error", err,
	)
	return *res
}

// sweepTempFiles removes temp files left behind by crashed runs. Finalized
// output is never named *.tmp, so this can only delete invalid partials.
func (r *Runner) sweepTempFiles() {
	stale, err := filepath.Glob(filepath.Join(r.cfg.OutputDir, "*.tmp"))
	if err != nil {
		return
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			r.logger.Warn("failed to remove stale temp file", "file", path, "error", err)
			continue
		}
		r.logger.Info("removed stale temp file", "file", path)
	}
}

func (r *Runner) logSummary(s *Summary) {
	var finalized, skipped, failed int
	for _, p := range s.Partitions {
		switch p.Status {
		case StatusFinalized:
			finalized++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}

	r.logger.Info("export complete",
		"symbols", s.SymbolCount,
		"partitions", len(s.Partitions),
		"finalized", finalized,
		"skipped", skipped,
		"failed", failed,
		"snapshot_rows", s.SnapshotRows(),
		"orderbook_rows", s.LevelRows(),
		"elapsed", s.Elapsed.Round(time.Millisecond),
	)
}
