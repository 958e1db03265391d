// Package export implements the streaming, partitioned Parquet export
// engine.
//
// The Runner processes partitions strictly sequentially: for each symbol
// it interleaves cursor batch pulls with appends into one open Parquet
// writer per table, so peak memory is bounded by the chunk size and never
// by partition size. Finished files reach their final name only through an
// atomic rename after the Parquet footer is written; a file existing under
// its final name is therefore complete, and re-runs skip it.
package export
