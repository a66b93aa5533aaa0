// Package iotesting provides shared test utilities for store-level tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/egytrade/tradedb/pkg/config"
)

const (
	// TestDatabaseName is the PostgreSQL database used by integration tests.
	// Tests never run against the production database name.
	TestDatabaseName = "trade_analysis_test"
)

// SQLiteConfig returns a configuration with a fresh SQLite file and input
// and output locations inside a temporary directory of the test.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "raw_data")
	if err := os.MkdirAll(input, 0755); err != nil {
		t.Fatalf("Failed to create input dir: %v", err)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptDatabaseKind("sqlite"),
		config.OptDatabasePath(filepath.Join(dir, "trade.sqlite")),
		config.OptLoadInputDir(input),
		config.OptExtractOutputPath(filepath.Join(dir, "out", "dashboard.json")),
		config.OptJobsNumber(2),
	})
	return cfg
}

// PostgresConfig returns a configuration for PostgreSQL integration tests.
// Connection settings are taken from TRADEDB_DATABASE_* environment
// variables when present, the database name is always TestDatabaseName.
func PostgresConfig() *config.Config {
	cfg := config.New()
	opts := []config.Option{
		config.OptDatabaseKind("postgres"),
		config.OptDatabaseDatabase(TestDatabaseName),
	}
	if s := os.Getenv("TRADEDB_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("TRADEDB_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("TRADEDB_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	if s := os.Getenv("TRADEDB_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	cfg.Update(opts)
	return cfg
}
