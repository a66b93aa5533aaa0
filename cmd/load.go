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
	"context"
	"log/slog"
	"slices"

	"github.com/egytrade/tradedb/internal/ioload"
	"github.com/egytrade/tradedb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load [trade|economy|all]",
		Short: "Load JSON extracts into the star schema",
		Long: `Load UN Comtrade (trade) and World Bank (economy) extracts.

Each feed is one unit of work:
  1. Reads all input files of the feed
  2. Inserts missing dimension rows (years, partners, commodities,
     flows, indicators)
  3. Replaces facts of reloaded years (rerun_policy: replace) or
     appends them (rerun_policy: append)
  4. Inserts facts with surrogate keys and commits
  5. Records the run in the etl_runs table

Rows with an empty or unknown natural key are skipped and counted.
With --strict such rows fail the whole feed.

"all" loads economy, then trade, and stops at the first failure.

Examples:
  tradedb load trade
  tradedb load economy --input-dir /data/raw
  tradedb load all --strict --skip-unchanged`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(slices.Clone(ioload.Feeds), "all"),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().StringP("input-dir", "i", "",
		"directory with JSON extracts")
	loadCmd.Flags().StringP("rerun-policy", "r", "",
		"replace or append facts of reloaded years")
	loadCmd.Flags().IntP("batch-size", "b", 0,
		"fact rows per insert statement")
	loadCmd.Flags().Bool("strict", false,
		"fail the feed if any row would be dropped")
	loadCmd.Flags().Bool("skip-unchanged", false,
		"skip a feed whose input did not change since the last success")

	return loadCmd
}

// loadFeeds returns feeds selected by the command argument.
func loadFeeds(args []string) ([]string, error) {
	if len(args) == 0 || args[0] == "all" {
		return ioload.Feeds, nil
	}
	if !slices.Contains(ioload.Feeds, args[0]) {
		return nil, ioload.UnknownFeedError(args[0])
	}
	return args[:1], nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	feeds, err := loadFeeds(args)
	if err != nil {
		return err
	}

	cfg.Update(flagOptions(cmd,
		stringFlag("input-dir", config.OptLoadInputDir),
		stringFlag("rerun-policy", config.OptLoadRerunPolicy),
		intFlag("batch-size", config.OptDatabaseBatchSize),
		boolFlag("strict", config.OptLoadStrict),
		boolFlag("skip-unchanged", config.OptLoadSkipUnchanged),
	))

	for _, feed := range feeds {
		if err = loadFeed(ctx, feed); err != nil {
			return err
		}
	}

	gn.Info("Next step: run '<em>tradedb extract</em>' to update the dashboard")
	return nil
}

// loadFeed runs the ETL task of a feed on its own connection.
func loadFeed(ctx context.Context, feed string) error {
	op, err := connectSchema(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	l, err := ioload.New(feed, cfg, op)
	if err != nil {
		return err
	}
	gn.Info("Loading <em>%s</em> feed from %s...", feed, cfg.Load.InputDir)
	run, err := l.Load(ctx)
	if err != nil {
		slog.Error("Load failed", "feed", feed, "run_id", run.ID,
			"error", err)
		return err
	}
	return nil
}
