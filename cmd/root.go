/*
Copyright © 2026 The tradedb Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/egytrade/tradedb/internal/iofs"
	"github.com/egytrade/tradedb/internal/iologger"
	app "github.com/egytrade/tradedb/pkg"
	"github.com/egytrade/tradedb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir  string
	opts     []config.Option
	cfg      *config.Config
	closeLog = func() error { return nil }
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "tradedb",
		Short:   "Trade data warehouse: load feeds, extract the dashboard",
		Long: `tradedb keeps a star schema of trade flows and economic indicators
and precomputes the document of the trade dashboard.

Commands:
  create   create tables of the star schema
  load     load UN Comtrade and World Bank extracts
  extract  write the precomputed dashboard JSON
  optimize reclaim space of replaced facts

Every command is one unit of work suitable for a scheduler.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (TRADEDB_*)
  3. Config file (~/.config/tradedb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host -> TRADEDB_DATABASE_HOST).

  Examples:
    TRADEDB_DATABASE_KIND           postgres or sqlite
    TRADEDB_DATABASE_HOST           PostgreSQL host
    TRADEDB_DATABASE_PASSWORD       PostgreSQL password
    TRADEDB_LOAD_INPUT_DIR          directory with JSON extracts
    TRADEDB_LOAD_RERUN_POLICY       replace or append
    TRADEDB_EXTRACT_OUTPUT_PATH     dashboard JSON file
    TRADEDB_LOG_LEVEL               debug, info, warn, error`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: shutdown,
		RunE:               runRoot,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "tradedb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for tradedb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getLoadCmd(),
		getExtractCmd(),
		getOptimizeCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if closeLog, err = iologger.Init(
		config.LogDir(homeDir), defaultLog, false,
	); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureRegionsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the file
	// started above.
	_ = closeLog()
	if closeLog, err = iologger.Init(
		config.LogDir(homeDir), cfg.Log, true,
	); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

func shutdown(_ *cobra.Command, _ []string) error {
	return closeLog()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	err := getRootCmd().Execute()
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("TRADEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.kind", "TRADEDB_DATABASE_KIND")
	v.BindEnv("database.host", "TRADEDB_DATABASE_HOST")
	v.BindEnv("database.port", "TRADEDB_DATABASE_PORT")
	v.BindEnv("database.user", "TRADEDB_DATABASE_USER")
	v.BindEnv("database.password", "TRADEDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "TRADEDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "TRADEDB_DATABASE_SSL_MODE")
	v.BindEnv("database.path", "TRADEDB_DATABASE_PATH")
	v.BindEnv("database.batch_size", "TRADEDB_DATABASE_BATCH_SIZE")

	// Load configuration
	v.BindEnv("load.input_dir", "TRADEDB_LOAD_INPUT_DIR")
	v.BindEnv("load.trade_pattern", "TRADEDB_LOAD_TRADE_PATTERN")
	v.BindEnv("load.economy_file", "TRADEDB_LOAD_ECONOMY_FILE")
	v.BindEnv("load.rerun_policy", "TRADEDB_LOAD_RERUN_POLICY")

	// Extract configuration
	v.BindEnv("extract.output_path", "TRADEDB_EXTRACT_OUTPUT_PATH")
	v.BindEnv("extract.sample_size", "TRADEDB_EXTRACT_SAMPLE_SIZE")
	v.BindEnv("extract.top_partners", "TRADEDB_EXTRACT_TOP_PARTNERS")
	v.BindEnv("extract.top_commodities", "TRADEDB_EXTRACT_TOP_COMMODITIES")
	v.BindEnv("extract.treemap_size", "TRADEDB_EXTRACT_TREEMAP_SIZE")
	v.BindEnv("extract.pretty", "TRADEDB_EXTRACT_PRETTY")

	// Log configuration
	v.BindEnv("log.level", "TRADEDB_LOG_LEVEL")
	v.BindEnv("log.format", "TRADEDB_LOG_FORMAT")
	v.BindEnv("log.destination", "TRADEDB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "TRADEDB_JOBS_NUMBER")

	v.AutomaticEnv()
}
