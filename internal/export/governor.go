package export

import (
	"log/slog"
	"os"
	"time"
)

// Governor owns the effective chunk size and the progress accounting for a
// run. Chunk size is operator configuration: on memory pressure the fix is
// a smaller --chunk-size on the next run, never adaptive resizing here.
type Governor struct {
	chunkSize    int
	progressRows int64
	logger       *slog.Logger
}

// NewGovernor creates a Governor. progressRows is the row interval between
// progress log lines.
func NewGovernor(chunkSize int, progressRows int64, logger *slog.Logger) *Governor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Governor{
		chunkSize:    chunkSize,
		progressRows: progressRows,
		logger:       logger,
	}
}

// ChunkSize returns the rows-per-batch bound for cursors.
func (g *Governor) ChunkSize() int { return g.chunkSize }

// Finalized reports whether path already holds a finalized output file.
// Files only ever reach their final name via rename-after-footer, so
// existence is the finalization marker.
func (g *Governor) Finalized(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Track starts progress accounting for one (partition, table) export.
func (g *Governor) Track(symbol, table string) *Progress {
	return &Progress{
		symbol:  symbol,
		table:   table,
		every:   g.progressRows,
		started: time.Now(),
		logger:  g.logger,
	}
}

// Progress counts rows and batches for one table export. It is owned by a
// single goroutine; there is no shared mutable state.
type Progress struct {
	symbol     string
	table      string
	every      int64
	started    time.Time
	rows       int64
	batches    int64
	lastReport int64
	logger     *slog.Logger
}

// Observe records one delivered batch and emits a progress line whenever
// the configured row interval has passed.
func (p *Progress) Observe(rows int) {
	p.batches++
	p.rows += int64(rows)

	if p.rows-p.lastReport >= p.every {
		p.lastReport = p.rows
		p.logger.Info("export progress",
			"symbol", p.symbol,
			"table", p.table,
			"rows", p.rows,
			"batches", p.batches,
			"elapsed", time.Since(p.started).Round(time.Millisecond),
		)
	}
}

// Done emits the completion line for the table.
func (p *Progress) Done(path string) {
	p.logger.Info("table exported",
		"symbol", p.symbol,
		"table", p.table,
		"rows", p.rows,
		"batches", p.batches,
		"file", path,
		"elapsed", time.Since(p.started).Round(time.Millisecond),
	)
}

// Rows returns rows observed so far.
func (p *Progress) Rows() int64 { return p.rows }

// Batches returns batches observed so far (one progress increment per
// delivered chunk).
func (p *Progress) Batches() int64 { return p.batches }
