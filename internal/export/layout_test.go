package export

import (
	"path/filepath"
	"testing"
)

func TestPartitionName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USDT-BTC", "USDT_BTC"},
		{"KRW-ETH", "KRW_ETH"},
		{"NOSEP", "NOSEP"},
		{"A-B-C", "A_B_C"},
	}

	for _, tt := range tests {
		if got := PartitionName(tt.code); got != tt.want {
			t.Errorf("PartitionName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFilePaths(t *testing.T) {
	dir := "/data/export"

	if got, want := SymbolsFile(dir), filepath.Join(dir, "symbols.parquet"); got != want {
		t.Errorf("SymbolsFile = %q, want %q", got, want)
	}
	if got, want := SnapshotsFile(dir, "USDT-BTC"), filepath.Join(dir, "snapshots_USDT_BTC.parquet"); got != want {
		t.Errorf("SnapshotsFile = %q, want %q", got, want)
	}
	if got, want := BookLevelsFile(dir, "USDT-BTC"), filepath.Join(dir, "orderbook_USDT_BTC.parquet"); got != want {
		t.Errorf("BookLevelsFile = %q, want %q", got, want)
	}
}
