package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const countsQuery = `
	SELECT s.symbol_code,
	       COALESCE(sn.cnt, 0),
	       COALESCE(sn.min_ts, 0),
	       COALESCE(sn.max_ts, 0),
	       COALESCE(ob.cnt, 0)
	FROM upbit_symbols s
	LEFT JOIN (
		SELECT symbol_id, COUNT(*) AS cnt, MIN(timestamp) AS min_ts, MAX(timestamp) AS max_ts
		FROM upbit_orderbook_snapshots
		GROUP BY symbol_id
	) sn USING (symbol_id)
	LEFT JOIN (
		SELECT symbol_id, COUNT(*) AS cnt
		FROM upbit_order_book_data
		GROUP BY symbol_id
	) ob USING (symbol_id)
	ORDER BY s.symbol_code`

// SymbolCounts is one line of the source-store coverage report.
type SymbolCounts struct {
	SymbolCode string
	Snapshots  int64
	LevelRows  int64
	FirstTS    int64 // ms since epoch, 0 when the symbol has no snapshots
	LastTS     int64 // ms since epoch, 0 when the symbol has no snapshots
}

// Counts returns per-symbol row counts and timestamp coverage in one
// aggregate read, ordered by symbol_code.
func (s *Store) Counts(ctx context.Context) ([]SymbolCounts, error) {
	rows, err := s.db.Query(ctx, countsQuery)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SymbolCounts, error) {
		var c SymbolCounts
		err := row.Scan(&c.SymbolCode, &c.Snapshots, &c.FirstTS, &c.LastTS, &c.LevelRows)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("read counts: %w", err)
	}
	return counts, nil
}
