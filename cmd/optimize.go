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

	"github.com/egytrade/tradedb/internal/iooptimize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Reclaim space and refresh statistics of the star schema",
		Long: `Run database maintenance after loads.

Facts of reloaded years are deleted under the replace rerun policy.
This command reclaims their space and refreshes query planner
statistics (VACUUM ANALYZE on PostgreSQL, VACUUM and ANALYZE on
SQLite). It is safe to run at any time outside of a load.

Examples:
  tradedb optimize`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runOptimize(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return optimizeCmd
}

func runOptimize(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	op, err := connectSchema(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Optimization in progress, <em>it might take a while</em>...")
	return iooptimize.NewOptimizer(op).Optimize(ctx)
}
