package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/format37/upbit-book-order/internal/export"
	"github.com/format37/upbit-book-order/internal/model"
)

// verify walks an export directory and reports per-symbol row counts, file
// sizes, timestamp coverage and mean capture frequency. It reads the data
// files in bounded batches so verification stays within the same memory
// ceiling as the export itself.
func main() {
	dir := flag.String("dir", "./parquet_export", "export directory to verify")
	flag.Parse()

	if !verify(*dir) {
		os.Exit(1)
	}
}

func verify(dir string) bool {
	symbols, err := parquet.ReadFile[model.Symbol](export.SymbolsFile(dir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", export.SymbolsFile(dir), err)
		return false
	}

	rule := strings.Repeat("=", 72)
	fmt.Println(rule)
	fmt.Println("PARQUET EXPORT VERIFICATION")
	fmt.Println(rule)
	fmt.Printf("\nSymbols table: %d symbols\n", len(symbols))
	for _, sym := range symbols {
		fmt.Printf("  - %s (ID: %d)\n", sym.SymbolCode, sym.SymbolID)
	}

	ok := true
	var totalSnapshots, totalLevels int64
	var missing []string

	for _, sym := range symbols {
		fmt.Printf("\n%s:\n%s\n", sym.SymbolCode, strings.Repeat("-", 40))

		snapPath := export.SnapshotsFile(dir, sym.SymbolCode)
		snap, err := snapshotStats(snapPath)
		if err != nil {
			fmt.Printf("  MISSING: %s (%v)\n", snapPath, err)
			missing = append(missing, snapPath)
			ok = false
		} else {
			totalSnapshots += snap.rows
			fmt.Printf("  Snapshots: %d rows (%.2f MB)\n", snap.rows, megabytes(snapPath))
			if snap.rows > 0 {
				fmt.Printf("    Date range: %s to %s\n", formatTS(snap.minTS), formatTS(snap.maxTS))
			}
			if snap.rows > 1 {
				freq := float64(snap.maxTS-snap.minTS) / 1000.0 / float64(snap.rows-1)
				fmt.Printf("    Frequency: %.2fs avg\n", freq)
			}
		}

		levelPath := export.BookLevelsFile(dir, sym.SymbolCode)
		level, err := levelStats(levelPath)
		if err != nil {
			fmt.Printf("  MISSING: %s (%v)\n", levelPath, err)
			missing = append(missing, levelPath)
			ok = false
		} else {
			totalLevels += level.rows
			fmt.Printf("  Orderbook: %d rows (%.2f MB)\n", level.rows, megabytes(levelPath))
			if level.snapshots > 0 {
				fmt.Printf("    Avg levels/snapshot: %.1f\n", float64(level.rows)/float64(level.snapshots))
			}
		}
	}

	fmt.Printf("\n%s\n", rule)
	fmt.Printf("Total snapshots: %d\n", totalSnapshots)
	fmt.Printf("Total orderbook rows: %d\n", totalLevels)
	if len(missing) > 0 {
		fmt.Printf("Missing files: %d\n", len(missing))
	}
	return ok
}

type snapshotSummary struct {
	rows  int64
	minTS int64
	maxTS int64
}

func snapshotStats(path string) (snapshotSummary, error) {
	var s snapshotSummary

	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	r := parquet.NewGenericReader[model.Snapshot](f)
	defer r.Close()

	buf := make([]model.Snapshot, 8192)
	for {
		n, err := r.Read(buf)
		for _, row := range buf[:n] {
			if s.rows == 0 || row.Timestamp < s.minTS {
				s.minTS = row.Timestamp
			}
			if row.Timestamp > s.maxTS {
				s.maxTS = row.Timestamp
			}
			s.rows++
		}
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return s, err
		}
	}
}

type levelSummary struct {
	rows      int64
	snapshots int64 // distinct snapshot ids (rows are sorted by snapshot_id)
}

func levelStats(path string) (levelSummary, error) {
	var s levelSummary

	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	r := parquet.NewGenericReader[model.BookLevel](f)
	defer r.Close()

	var lastSnapshot int64
	buf := make([]model.BookLevel, 8192)
	for {
		n, err := r.Read(buf)
		for _, row := range buf[:n] {
			if s.rows == 0 || row.SnapshotID != lastSnapshot {
				s.snapshots++
				lastSnapshot = row.SnapshotID
			}
			s.rows++
		}
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return s, err
		}
	}
}

func megabytes(path string) float64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return float64(info.Size()) / (1024 * 1024)
}

func formatTS(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05")
}
