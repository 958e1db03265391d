// Package source reads the three exported relations from the source
// PostgreSQL store.
//
// Store resolves the partition set (symbols) and opens forward-only,
// ordered cursors over one partition's snapshot or level rows. Cursors are
// finite, non-restartable, and pull rows in caller-bounded batches so peak
// memory stays at chunk_size x row width regardless of partition size.
package source
