package source

import "fmt"

// UnknownPartitionError reports a requested symbol code that does not exist
// in upbit_symbols. It fails the run before any extraction starts.
type UnknownPartitionError struct {
	Code string
}

func (e *UnknownPartitionError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Code)
}

// ExtractionError reports a cursor lost mid-partition (connection drop,
// query failure). Rows is how far the cursor got; there is no resume point,
// the partition must be restarted from scratch.
type ExtractionError struct {
	Symbol string
	Table  string
	Rows   int64
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction interrupted for %s %s after %d rows: %v", e.Symbol, e.Table, e.Rows, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
