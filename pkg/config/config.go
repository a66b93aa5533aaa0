// Package config provides configuration management for tradedb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: kind, host, port, user, password, database, ssl_mode, path,
//     batch_size
//   - Load: input_dir, trade_pattern, economy_file, rerun_policy
//   - Extract: output_path, sample_size, top_partners, top_commodities,
//     treemap_size, pretty
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Load.Strict, Load.SkipUnchanged (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use TRADEDB_ prefix with underscores for nesting:
//
//	TRADEDB_DATABASE_HOST=localhost
//	TRADEDB_DATABASE_PORT=5432
//	TRADEDB_LOAD_INPUT_DIR=raw_data
//	TRADEDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete tradedb configuration.
type Config struct {
	// Database contains connection settings of the star schema store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Load contains settings of the trade and economy ETL tasks.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	// Extract contains settings of the dashboard extraction job.
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of input files decoded concurrently.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains database connection parameters.
type DatabaseConfig struct {
	// Kind selects the database engine.
	// Valid values: "postgres", "sqlite".
	Kind string `mapstructure:"kind" yaml:"kind"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file. Used only when Kind is "sqlite".
	Path string `mapstructure:"path" yaml:"path"`

	// BatchSize is the number of fact rows sent to the database in one
	// insert chunk. Larger chunks are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LoadConfig contains settings of the ETL tasks.
type LoadConfig struct {
	// InputDir is the directory where the collector drops raw JSON files.
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`

	// TradePattern is a glob (relative to InputDir) that selects
	// trade files. All matches are loaded as one batch.
	TradePattern string `mapstructure:"trade_pattern" yaml:"trade_pattern"`

	// EconomyFile is the indicator file name inside InputDir.
	EconomyFile string `mapstructure:"economy_file" yaml:"economy_file"`

	// RerunPolicy decides what happens to facts of periods that are already
	// loaded. Valid values: "replace", "append".
	RerunPolicy string `mapstructure:"rerun_policy" yaml:"rerun_policy"`

	// Strict turns row-dropping data anomalies into a batch failure.
	// Runtime-only field.
	Strict bool `mapstructure:"-" yaml:"-"`

	// SkipUnchanged skips a feed when its input fingerprint matches the
	// last successful run. Runtime-only field.
	SkipUnchanged bool `mapstructure:"-" yaml:"-"`
}

// ExtractConfig contains settings of the dashboard extraction.
type ExtractConfig struct {
	// OutputPath is the location of the dashboard JSON document.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`

	// SampleSize is the number of joined rows copied to raw_sample.
	SampleSize int `mapstructure:"sample_size" yaml:"sample_size"`

	// TopPartners is the size of the per-year partner ranking.
	TopPartners int `mapstructure:"top_partners" yaml:"top_partners"`

	// TopCommodities is the size of the per-year commodity ranking.
	TopCommodities int `mapstructure:"top_commodities" yaml:"top_commodities"`

	// TreemapSize is the number of commodities in the treemap list.
	TreemapSize int `mapstructure:"treemap_size" yaml:"treemap_size"`

	// Pretty enables indented JSON output.
	Pretty bool `mapstructure:"pretty" yaml:"pretty"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Kind:      "postgres",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "trade_analysis",
			SSLMode:   "disable",
			Path:      "trade_analysis.sqlite",
			BatchSize: 5_000,
		},
		Load: LoadConfig{
			InputDir:     "raw_data",
			TradePattern: "uncomtrade_*.json",
			EconomyFile:  "worldbank_indicators_2020-2024.json",
			RerunPolicy:  "replace",
		},
		Extract: ExtractConfig{
			OutputPath:     "dashboard_precomputed.json",
			SampleSize:     500,
			TopPartners:    10,
			TopCommodities: 10,
			TreemapSize:    30,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
