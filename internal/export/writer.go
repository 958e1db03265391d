package export

import (
	"os"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
)

// TableWriter appends row batches for one (partition, table) target into a
// single snappy-compressed Parquet file. The file opens lazily on the first
// batch and is written under a per-run temp name; Finalize writes the
// footer and renames it onto the final path in one atomic step. A file that
// was never finalized never exists under its final name.
type TableWriter[T any] struct {
	path    string
	tmpPath string
	file    *os.File
	pw      *parquet.GenericWriter[T]
	rows    int64
}

// NewTableWriter creates a writer targeting path. Nothing touches the
// filesystem until the first Append or Finalize.
func NewTableWriter[T any](path string) *TableWriter[T] {
	return &TableWriter[T]{path: path}
}

func (w *TableWriter[T]) open() error {
	w.tmpPath = w.path + "." + uuid.NewString() + ".tmp"

	f, err := os.Create(w.tmpPath)
	if err != nil {
		return &WriteError{Path: w.path, Err: err}
	}
	w.file = f
	w.pw = parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Snappy))
	return nil
}

// Append writes one batch in delivery order. On failure the temp file is
// discarded and the writer is unusable.
func (w *TableWriter[T]) Append(batch []T) error {
	if len(batch) == 0 {
		return nil
	}
	if w.pw == nil {
		if err := w.open(); err != nil {
			return err
		}
	}

	if _, err := w.pw.Write(batch); err != nil {
		w.Abort()
		return &WriteError{Path: w.path, Err: err}
	}
	w.rows += int64(len(batch))
	return nil
}

// Finalize writes the Parquet footer, flushes to disk, and atomically
// renames the temp file onto the final path. An empty target still yields
// a finalized schema-only file so re-runs can skip the partition.
func (w *TableWriter[T]) Finalize() error {
	if w.pw == nil {
		if err := w.open(); err != nil {
			return err
		}
	}

	if err := w.pw.Close(); err != nil {
		w.Abort()
		return &WriteError{Path: w.path, Err: err}
	}
	if err := w.file.Sync(); err != nil {
		w.Abort()
		return &WriteError{Path: w.path, Err: err}
	}
	if err := w.file.Close(); err != nil {
		w.file = nil
		os.Remove(w.tmpPath)
		return &WriteError{Path: w.path, Err: err}
	}
	w.file = nil

	if err := os.Rename(w.tmpPath, w.path); err != nil {
		os.Remove(w.tmpPath)
		return &WriteError{Path: w.path, Err: err}
	}
	return nil
}

// Abort discards the temp file, if any. Safe to call more than once.
func (w *TableWriter[T]) Abort() {
	if w.file != nil {
		w.file.Close()
		os.Remove(w.tmpPath)
		w.file = nil
		w.pw = nil
	}
}

// Rows returns the number of rows appended so far.
func (w *TableWriter[T]) Rows() int64 { return w.rows }
