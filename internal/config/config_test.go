package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	yaml := `
database:
  host: localhost
  port: 5432
  name: dnk
  user: testuser
  password: testpass
export:
  output_dir: /tmp/parquet_export
  chunk_size: 50000
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Database.Name != "dnk" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "dnk")
	}
	if cfg.Export.OutputDir != "/tmp/parquet_export" {
		t.Errorf("Export.OutputDir = %q, want %q", cfg.Export.OutputDir, "/tmp/parquet_export")
	}
	if cfg.Export.ChunkSize != 50000 {
		t.Errorf("Export.ChunkSize = %d, want 50000", cfg.Export.ChunkSize)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  host: localhost
  name: dnk
  user: testuser
  password: ${TEST_DB_PASSWORD}
export:
  output_dir: /tmp/parquet_export
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  host: localhost
  name: dnk
  user: testuser
  password: testpass
export:
  output_dir: /tmp/parquet_export
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.SSLMode != DefaultDBSSLMode {
		t.Errorf("Database.SSLMode = %q, want %q", cfg.Database.SSLMode, DefaultDBSSLMode)
	}
	if cfg.Export.ChunkSize != DefaultChunkSize {
		t.Errorf("Export.ChunkSize = %d, want %d", cfg.Export.ChunkSize, DefaultChunkSize)
	}
	if cfg.Export.ProgressRows != DefaultProgressRows {
		t.Errorf("Export.ProgressRows = %d, want %d", cfg.Export.ProgressRows, DefaultProgressRows)
	}
}

func TestValidate(t *testing.T) {
	valid := ExportConfig{
		Database: DBConfig{
			Host:     "localhost",
			Port:     5432,
			Name:     "dnk",
			User:     "u",
			Password: "p",
			MaxConns: 2,
			MinConns: 1,
		},
		Export: RunConfig{
			OutputDir:    "/tmp/out",
			ChunkSize:    100000,
			ProgressRows: 500000,
		},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid config = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*ExportConfig)
	}{
		{"missing host", func(c *ExportConfig) { c.Database.Host = "" }},
		{"missing name", func(c *ExportConfig) { c.Database.Name = "" }},
		{"missing user", func(c *ExportConfig) { c.Database.User = "" }},
		{"missing password", func(c *ExportConfig) { c.Database.Password = "" }},
		{"bad port", func(c *ExportConfig) { c.Database.Port = 70000 }},
		{"min over max conns", func(c *ExportConfig) { c.Database.MinConns = 5 }},
		{"missing output dir", func(c *ExportConfig) { c.Export.OutputDir = "" }},
		{"zero chunk size", func(c *ExportConfig) { c.Export.ChunkSize = 0 }},
		{"zero progress rows", func(c *ExportConfig) { c.Export.ProgressRows = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() on missing file = nil, want error")
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
