package source

import (
	"github.com/jackc/pgx/v5"
)

// Cursor is a finite, forward-only batch reader over one partition's rows
// of one table. It is not restartable: once exhausted or failed it stays
// that way. An empty batch with a nil error means the cursor is exhausted.
type Cursor[T any] interface {
	// Next returns up to max rows in source order.
	Next(max int) ([]T, error)

	// Close releases the underlying query. Safe to call more than once.
	Close()
}

// rowCursor adapts a streaming pgx result set to Cursor. pgx delivers rows
// incrementally off the wire, so only the batch under construction is ever
// resident.
type rowCursor[T any] struct {
	rows   pgx.Rows
	scan   func(pgx.Rows) (T, error)
	symbol string
	table  string
	total  int64
	done   bool
}

func (c *rowCursor[T]) Next(max int) ([]T, error) {
	if c.done {
		return nil, nil
	}

	batch := make([]T, 0, max)
	for len(batch) < max && c.rows.Next() {
		row, err := c.scan(c.rows)
		if err != nil {
			c.fail()
			return nil, &ExtractionError{Symbol: c.symbol, Table: c.table, Rows: c.total + int64(len(batch)), Err: err}
		}
		batch = append(batch, row)
	}

	if len(batch) < max {
		// Result set drained (or the connection died). rows.Err tells
		// which.
		c.fail()
		if err := c.rows.Err(); err != nil {
			return nil, &ExtractionError{Symbol: c.symbol, Table: c.table, Rows: c.total + int64(len(batch)), Err: err}
		}
	}

	c.total += int64(len(batch))
	return batch, nil
}

func (c *rowCursor[T]) Close() { c.fail() }

func (c *rowCursor[T]) fail() {
	if !c.done {
		c.done = true
		c.rows.Close()
	}
}
