package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/format37/upbit-book-order/internal/model"
)

func TestNormalizeCodes(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"uppercases", []string{"usdt-btc"}, []string{"USDT-BTC"}},
		{"trims", []string{" USDT-ETH ", "usdt-btc"}, []string{"USDT-ETH", "USDT-BTC"}},
		{"drops empty", []string{"", "  ", "KRW-XRP"}, []string{"KRW-XRP"}},
		{"nil", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCodes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeCodes(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NormalizeCodes(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReorderRequested(t *testing.T) {
	fetched := []model.Symbol{
		{SymbolID: 1, SymbolCode: "USDT-BTC"},
		{SymbolID: 2, SymbolCode: "USDT-ETH"},
	}

	got, err := reorderRequested(fetched, []string{"USDT-ETH", "USDT-BTC"})
	if err != nil {
		t.Fatalf("reorderRequested failed: %v", err)
	}
	if got[0].SymbolCode != "USDT-ETH" || got[1].SymbolCode != "USDT-BTC" {
		t.Errorf("request order not preserved: %v", got)
	}
}

func TestReorderRequestedUnknown(t *testing.T) {
	fetched := []model.Symbol{{SymbolID: 1, SymbolCode: "USDT-BTC"}}

	_, err := reorderRequested(fetched, []string{"USDT-BTC", "KRW-DOGE"})
	if err == nil {
		t.Fatal("reorderRequested = nil error, want UnknownPartitionError")
	}

	var unknown *UnknownPartitionError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownPartitionError", err)
	}
	if unknown.Code != "KRW-DOGE" {
		t.Errorf("unknown.Code = %q, want %q", unknown.Code, "KRW-DOGE")
	}
}

func TestExtractionErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ExtractionError{Symbol: "USDT-BTC", Table: "snapshots", Rows: 123456, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	msg := err.Error()
	if want := "USDT-BTC"; !strings.Contains(msg, want) {
		t.Errorf("Error() = %q, missing %q", msg, want)
	}
	if want := "123456"; !strings.Contains(msg, want) {
		t.Errorf("Error() = %q, missing row count %q", msg, want)
	}
}
