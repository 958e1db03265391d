package config

// ExportConfig is the root configuration for an export run.
type ExportConfig struct {
	Database DBConfig  `yaml:"database"`
	Export   RunConfig `yaml:"export"`
}

// DBConfig holds the source store connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// RunConfig holds export engine settings. OutputDir, ChunkSize and Symbols
// may be overridden by command-line flags.
type RunConfig struct {
	OutputDir    string   `yaml:"output_dir"`    // Destination directory, created if absent
	ChunkSize    int      `yaml:"chunk_size"`    // Rows per extraction batch
	Symbols      []string `yaml:"symbols"`       // Optional partition allow-list (symbol codes)
	ProgressRows int64    `yaml:"progress_rows"` // Rows between progress log lines
}
