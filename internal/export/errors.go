package export

import "fmt"

// WriteError reports a destination storage failure for one output file.
// The in-progress temp file is removed before this surfaces; the partition
// must be rebuilt from scratch.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
