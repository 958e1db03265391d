// Package database provides the connection pool for the source PostgreSQL
// store holding upbit_symbols, upbit_orderbook_snapshots and
// upbit_order_book_data.
//
// The pool is intentionally small: the export engine runs one cursor at a
// time, so it needs one working connection plus headroom for the odd
// metadata query.
package database
