package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseKind sets the database engine.
// Valid values: "postgres", "sqlite".
func OptDatabaseKind(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.Kind", s) {
			c.Database.Kind = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabasePath sets the SQLite database file.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = s
		}
	}
}

// OptDatabaseBatchSize sets the number of fact rows per insert chunk.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLoadInputDir sets the directory with raw JSON files.
func OptLoadInputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Directory", s) {
			c.Load.InputDir = s
		}
	}
}

// OptLoadTradePattern sets the glob that selects trade files.
func OptLoadTradePattern(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Trade Pattern", s) {
			c.Load.TradePattern = s
		}
	}
}

// OptLoadEconomyFile sets the name of the indicator file.
func OptLoadEconomyFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Economy File", s) {
			c.Load.EconomyFile = s
		}
	}
}

// OptLoadRerunPolicy sets how facts of already loaded periods are treated.
// Valid values: "replace", "append".
func OptLoadRerunPolicy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Load.RerunPolicy", s) {
			c.Load.RerunPolicy = s
		}
	}
}

// OptLoadStrict makes row-dropping anomalies fatal for a batch.
// Runtime-only field - not in ToOptions().
func OptLoadStrict(b bool) Option {
	return func(c *Config) {
		c.Load.Strict = b
	}
}

// OptLoadSkipUnchanged skips feeds whose input did not change since
// the last successful run.
// Runtime-only field - not in ToOptions().
func OptLoadSkipUnchanged(b bool) Option {
	return func(c *Config) {
		c.Load.SkipUnchanged = b
	}
}

// OptExtractOutputPath sets the location of the dashboard document.
func OptExtractOutputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Path", s) {
			c.Extract.OutputPath = s
		}
	}
}

// OptExtractSampleSize sets the number of rows in raw_sample.
func OptExtractSampleSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Sample Size", i) {
			c.Extract.SampleSize = i
		}
	}
}

// OptExtractTopPartners sets the size of the partner ranking.
func OptExtractTopPartners(i int) Option {
	return func(c *Config) {
		if isValidInt("Top Partners", i) {
			c.Extract.TopPartners = i
		}
	}
}

// OptExtractTopCommodities sets the size of the commodity ranking.
func OptExtractTopCommodities(i int) Option {
	return func(c *Config) {
		if isValidInt("Top Commodities", i) {
			c.Extract.TopCommodities = i
		}
	}
}

// OptExtractTreemapSize sets the number of commodities in the treemap.
func OptExtractTreemapSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Treemap Size", i) {
			c.Extract.TreemapSize = i
		}
	}
}

// OptExtractPretty enables indented JSON output.
func OptExtractPretty(b bool) Option {
	return func(c *Config) {
		c.Extract.Pretty = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent file decoders.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
