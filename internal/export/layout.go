package export

import (
	"path/filepath"
	"strings"
)

// PartitionName normalizes a symbol code for use in file names
// ("USDT-BTC" -> "USDT_BTC").
func PartitionName(code string) string {
	return strings.ReplaceAll(code, "-", "_")
}

// SymbolsFile is the path of the dimension table file.
func SymbolsFile(dir string) string {
	return filepath.Join(dir, "symbols.parquet")
}

// SnapshotsFile is the path of one partition's snapshot file.
func SnapshotsFile(dir, code string) string {
	return filepath.Join(dir, "snapshots_"+PartitionName(code)+".parquet")
}

// BookLevelsFile is the path of one partition's order-book level file.
func BookLevelsFile(dir, code string) string {
	return filepath.Join(dir, "orderbook_"+PartitionName(code)+".parquet")
}
