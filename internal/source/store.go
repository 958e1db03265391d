package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/format37/upbit-book-order/internal/model"
)

const (
	symbolsAllQuery = `
		SELECT symbol_id, symbol_code, base_currency, quote_currency, created_at
		FROM upbit_symbols
		ORDER BY symbol_code`

	symbolsByCodeQuery = `
		SELECT symbol_id, symbol_code, base_currency, quote_currency, created_at
		FROM upbit_symbols
		WHERE symbol_code = ANY($1)
		ORDER BY symbol_code`

	snapshotsQuery = `
		SELECT snapshot_id, symbol_id, timestamp, total_ask_size, total_bid_size,
		       stream_type, units_count, received_at
		FROM upbit_orderbook_snapshots
		WHERE symbol_id = $1
		ORDER BY snapshot_id`

	bookLevelsQuery = `
		SELECT id, snapshot_id, symbol_id, timestamp, ask_price, bid_price,
		       ask_size, bid_size, unit_level, received_at
		FROM upbit_order_book_data
		WHERE symbol_id = $1
		ORDER BY snapshot_id, unit_level`
)

// Store reads symbols, snapshots and order-book levels from the source
// PostgreSQL database. It never writes.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a Store on an existing connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// NormalizeCodes trims and uppercases user-supplied symbol codes.
func NormalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Symbols returns the partition set. With no codes it returns every symbol
// ordered by symbol_code; otherwise exactly the requested codes, in request
// order, failing with *UnknownPartitionError when any code is absent.
func (s *Store) Symbols(ctx context.Context, codes []string) ([]model.Symbol, error) {
	codes = NormalizeCodes(codes)

	var (
		rows pgx.Rows
		err  error
	)
	if len(codes) == 0 {
		rows, err = s.db.Query(ctx, symbolsAllQuery)
	} else {
		rows, err = s.db.Query(ctx, symbolsByCodeQuery, codes)
	}
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}

	symbols, err := pgx.CollectRows(rows, scanSymbol)
	if err != nil {
		return nil, fmt.Errorf("read symbols: %w", err)
	}

	if len(codes) == 0 {
		return symbols, nil
	}
	return reorderRequested(symbols, codes)
}

// reorderRequested maps the fetched symbols back onto the requested code
// order and reports the first missing code.
func reorderRequested(symbols []model.Symbol, codes []string) ([]model.Symbol, error) {
	byCode := make(map[string]model.Symbol, len(symbols))
	for _, sym := range symbols {
		byCode[sym.SymbolCode] = sym
	}

	out := make([]model.Symbol, 0, len(codes))
	for _, code := range codes {
		sym, ok := byCode[code]
		if !ok {
			return nil, &UnknownPartitionError{Code: code}
		}
		out = append(out, sym)
	}
	return out, nil
}

// Snapshots opens a forward-only cursor over one symbol's snapshot rows,
// ordered by snapshot_id (non-decreasing timestamp).
func (s *Store) Snapshots(ctx context.Context, sym model.Symbol) (Cursor[model.Snapshot], error) {
	rows, err := s.db.Query(ctx, snapshotsQuery, sym.SymbolID)
	if err != nil {
		return nil, &ExtractionError{Symbol: sym.SymbolCode, Table: "snapshots", Err: err}
	}
	return &rowCursor[model.Snapshot]{
		rows:   rows,
		scan:   scanSnapshot,
		symbol: sym.SymbolCode,
		table:  "snapshots",
	}, nil
}

// BookLevels opens a forward-only cursor over one symbol's order-book level
// rows, ordered by (snapshot_id, unit_level).
func (s *Store) BookLevels(ctx context.Context, sym model.Symbol) (Cursor[model.BookLevel], error) {
	rows, err := s.db.Query(ctx, bookLevelsQuery, sym.SymbolID)
	if err != nil {
		return nil, &ExtractionError{Symbol: sym.SymbolCode, Table: "orderbook", Err: err}
	}
	return &rowCursor[model.BookLevel]{
		rows:   rows,
		scan:   scanBookLevel,
		symbol: sym.SymbolCode,
		table:  "orderbook",
	}, nil
}

func scanSymbol(rows pgx.CollectableRow) (model.Symbol, error) {
	var m model.Symbol
	err := rows.Scan(&m.SymbolID, &m.SymbolCode, &m.BaseCurrency, &m.QuoteCurrency, &m.CreatedAt)
	return m, err
}

func scanSnapshot(rows pgx.Rows) (model.Snapshot, error) {
	var m model.Snapshot
	err := rows.Scan(&m.SnapshotID, &m.SymbolID, &m.Timestamp, &m.TotalAskSize,
		&m.TotalBidSize, &m.StreamType, &m.UnitsCount, &m.ReceivedAt)
	return m, err
}

func scanBookLevel(rows pgx.Rows) (model.BookLevel, error) {
	var m model.BookLevel
	err := rows.Scan(&m.ID, &m.SnapshotID, &m.SymbolID, &m.Timestamp, &m.AskPrice,
		&m.BidPrice, &m.AskSize, &m.BidSize, &m.UnitLevel, &m.ReceivedAt)
	return m, err
}
