package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "tradedb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "tradedb", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "tradedb", "config.yaml"),
		},
		{
			msg: "regions file",
			fn:  config.RegionsFilePath,
			res: filepath.Join(tempHome, ".config", "tradedb", "regions.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres", cfg.Database.Kind)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "postgres", cfg.Database.Password)
	assert.Equal(t, "trade_analysis", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5_000, cfg.Database.BatchSize)

	assert.Equal(t, "raw_data", cfg.Load.InputDir)
	assert.Equal(t, "uncomtrade_*.json", cfg.Load.TradePattern)
	assert.Equal(t, "worldbank_indicators_2020-2024.json", cfg.Load.EconomyFile)
	assert.Equal(t, "replace", cfg.Load.RerunPolicy)
	assert.False(t, cfg.Load.Strict)
	assert.False(t, cfg.Load.SkipUnchanged)

	assert.Equal(t, "dashboard_precomputed.json", cfg.Extract.OutputPath)
	assert.Equal(t, 500, cfg.Extract.SampleSize)
	assert.Equal(t, 10, cfg.Extract.TopPartners)
	assert.Equal(t, 10, cfg.Extract.TopCommodities)
	assert.Equal(t, 30, cfg.Extract.TreemapSize)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid host", "db.example.com", "db.example.com"},
		{"trims whitespace", "  db.example.com  ", "db.example.com"},
		{"ignores empty string", "", "localhost"},
		{"ignores whitespace-only", "   ", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabaseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets sqlite", "sqlite", "sqlite"},
		{"normalizes to lowercase", "SQLite", "sqlite"},
		{"ignores unknown engine", "mysql", "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseKind(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Kind)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid port", 5433, 5433},
		{"ignores zero", 0, 5432},
		{"ignores negative", -100, 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePort(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets disable", "disable", "disable"},
		{"sets require", "require", "require"},
		{"sets verify-ca", "verify-ca", "verify-ca"},
		{"sets verify-full", "verify-full", "verify-full"},
		{"normalizes to lowercase", "REQUIRE", "require"},
		{"ignores invalid value", "invalid", "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseSSLMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionRerunPolicy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets append", "append", "append"},
		{"sets replace", " Replace ", "replace"},
		{"ignores unknown policy", "merge", "replace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLoadRerunPolicy(tt.input)})
			assert.Equal(t, tt.expected, cfg.Load.RerunPolicy)
		})
	}
}

func TestOptionLog(t *testing.T) {
	tests := []struct {
		name  string
		opt   config.Option
		field func(*config.Config) string
		exp   string
	}{
		{"level debug", config.OptLogLevel("DEBUG"),
			func(c *config.Config) string { return c.Log.Level }, "debug"},
		{"level invalid", config.OptLogLevel("trace"),
			func(c *config.Config) string { return c.Log.Level }, "info"},
		{"format text", config.OptLogFormat("text"),
			func(c *config.Config) string { return c.Log.Format }, "text"},
		{"format invalid", config.OptLogFormat("xml"),
			func(c *config.Config) string { return c.Log.Format }, "json"},
		{"destination stderr", config.OptLogDestination("stderr"),
			func(c *config.Config) string { return c.Log.Destination }, "stderr"},
		{"destination invalid", config.OptLogDestination("stdin"),
			func(c *config.Config) string { return c.Log.Destination }, "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.exp, tt.field(cfg))
		})
	}
}

func TestOptionPositiveInts(t *testing.T) {
	tests := []struct {
		name  string
		opt   func(int) config.Option
		field func(*config.Config) int
	}{
		{"batch size", config.OptDatabaseBatchSize,
			func(c *config.Config) int { return c.Database.BatchSize }},
		{"sample size", config.OptExtractSampleSize,
			func(c *config.Config) int { return c.Extract.SampleSize }},
		{"top partners", config.OptExtractTopPartners,
			func(c *config.Config) int { return c.Extract.TopPartners }},
		{"top commodities", config.OptExtractTopCommodities,
			func(c *config.Config) int { return c.Extract.TopCommodities }},
		{"treemap size", config.OptExtractTreemapSize,
			func(c *config.Config) int { return c.Extract.TreemapSize }},
		{"jobs number", config.OptJobsNumber,
			func(c *config.Config) int { return c.JobsNumber }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			def := tt.field(cfg)

			cfg.Update([]config.Option{tt.opt(0), tt.opt(-5)})
			assert.Equal(t, def, tt.field(cfg), "keeps default")

			cfg.Update([]config.Option{tt.opt(42)})
			assert.Equal(t, 42, tt.field(cfg))
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDatabaseKind("sqlite"),
			config.OptDatabasePath("/tmp/trade.sqlite"),
			config.OptLoadInputDir("/data/raw"),
			config.OptLoadStrict(true),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		})

		assert.Equal(t, "sqlite", cfg.Database.Kind)
		assert.Equal(t, "/tmp/trade.sqlite", cfg.Database.Path)
		assert.Equal(t, "/data/raw", cfg.Load.InputDir)
		assert.True(t, cfg.Load.Strict)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDatabaseHost("first.host.com"),
			config.OptDatabaseHost("second.host.com"),
		})
		assert.Equal(t, "second.host.com", cfg.Database.Host)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptDatabaseKind("sqlite"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(5433),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabasePath("/tmp/t.sqlite"),
			config.OptDatabaseBatchSize(10000),
			config.OptLoadInputDir("/in"),
			config.OptLoadTradePattern("trade_*.json"),
			config.OptLoadEconomyFile("wb.json"),
			config.OptLoadRerunPolicy("append"),
			config.OptExtractOutputPath("/out/dash.json"),
			config.OptExtractSampleSize(50),
			config.OptExtractTopPartners(5),
			config.OptExtractTopCommodities(7),
			config.OptExtractTreemapSize(20),
			config.OptExtractPretty(true),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Load, newCfg.Load)
		assert.Equal(t, original.Extract, newCfg.Extract)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptLoadStrict(true),
			config.OptLoadSkipUnchanged(true),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.False(t, newCfg.Load.Strict)
		assert.False(t, newCfg.Load.SkipUnchanged)
	})
}
