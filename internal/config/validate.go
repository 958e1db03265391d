package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *ExportConfig) Validate() error {
	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Export.OutputDir == "" {
		return errors.New("export.output_dir is required")
	}
	if c.Export.ChunkSize < 1 {
		return errors.New("export.chunk_size must be >= 1")
	}
	if c.Export.ProgressRows < 1 {
		return errors.New("export.progress_rows must be >= 1")
	}

	return nil
}

// Validate checks the database section alone, for tools that never touch
// the output directory.
func (db *DBConfig) Validate() error {
	return db.validate("database")
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
