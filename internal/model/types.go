package model

import "time"

// -----------------------------------------------------------------------------
// Dimension Types
// -----------------------------------------------------------------------------

// Symbol is one row of the upbit_symbols dimension table.
type Symbol struct {
	SymbolID      int64     `parquet:"symbol_id"`                         // Primary key
	SymbolCode    string    `parquet:"symbol_code"`                       // Market identifier (e.g., "USDT-BTC")
	BaseCurrency  string    `parquet:"base_currency"`                     // Base leg (e.g., "BTC")
	QuoteCurrency string    `parquet:"quote_currency"`                    // Quote leg (e.g., "USDT")
	CreatedAt     time.Time `parquet:"created_at,timestamp(millisecond)"` // Row creation time
}

// -----------------------------------------------------------------------------
// Time-Series Types
// -----------------------------------------------------------------------------

// Snapshot is one observed order-book state for one symbol at one instant.
// Rows for a symbol are monotonic in Timestamp and keyed by SnapshotID.
type Snapshot struct {
	SnapshotID   int64     `parquet:"snapshot_id"`                        // Primary key
	SymbolID     int64     `parquet:"symbol_id"`                          // Foreign key to Symbol
	Timestamp    int64     `parquet:"timestamp"`                          // Exchange timestamp (ms since epoch)
	TotalAskSize float64   `parquet:"total_ask_size"`                     // Sum of ask sizes across all levels
	TotalBidSize float64   `parquet:"total_bid_size"`                     // Sum of bid sizes across all levels
	StreamType   string    `parquet:"stream_type"`                        // "SNAPSHOT" or "REALTIME"
	UnitsCount   int32     `parquet:"units_count"`                        // Number of price levels captured
	ReceivedAt   time.Time `parquet:"received_at,timestamp(millisecond)"` // Ingestion receive time
}

// BookLevel is a single price level of a snapshot. Levels belonging to a
// snapshot are ordered by UnitLevel, 1 = best price.
type BookLevel struct {
	ID         int64     `parquet:"id"`                                 // Primary key
	SnapshotID int64     `parquet:"snapshot_id"`                        // Foreign key to Snapshot
	SymbolID   int64     `parquet:"symbol_id"`                          // Foreign key to Symbol (denormalized)
	Timestamp  int64     `parquet:"timestamp"`                          // Exchange timestamp (ms since epoch)
	AskPrice   float64   `parquet:"ask_price"`                          // Ask price at this level
	BidPrice   float64   `parquet:"bid_price"`                          // Bid price at this level
	AskSize    float64   `parquet:"ask_size"`                           // Ask quantity at this level
	BidSize    float64   `parquet:"bid_size"`                           // Bid quantity at this level
	UnitLevel  int32     `parquet:"unit_level"`                         // Level rank, 1 = best
	ReceivedAt time.Time `parquet:"received_at,timestamp(millisecond)"` // Ingestion receive time
}
