// Package model defines the fixed row types for the three exported relations.
//
// Each type mirrors its source table column-for-column; the parquet tags
// define the output file schema so the files are self-describing.
//
// Conventions:
//   - Exchange timestamps: int64 milliseconds since Unix epoch
//   - Prices and sizes: float64, matching the source double precision columns
//   - Wall-clock columns: time.Time, stored as millisecond timestamps
package model
