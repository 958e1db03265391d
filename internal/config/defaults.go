package config

// Default values for optional configuration fields.
const (
	DefaultDBPort       = 5432
	DefaultDBSSLMode    = "prefer"
	DefaultMaxConns     = 2
	DefaultMinConns     = 1
	DefaultChunkSize    = 100000
	DefaultProgressRows = 500000
)

// ApplyDefaults fills unset optional fields. Flag overrides are applied by
// the caller before validation.
func (c *ExportConfig) ApplyDefaults() {
	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Export defaults
	if c.Export.ChunkSize == 0 {
		c.Export.ChunkSize = DefaultChunkSize
	}
	if c.Export.ProgressRows == 0 {
		c.Export.ProgressRows = DefaultProgressRows
	}
}
