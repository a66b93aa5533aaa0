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

	"github.com/egytrade/tradedb/internal/ioextract"
	"github.com/egytrade/tradedb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getExtractCmd returns the extract command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getExtractCmd() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Write the precomputed dashboard JSON",
		Long: `Aggregate trade facts into the dashboard document.

The document contains yearly trends, KPIs, top partners, top
commodities, the commodity treemap, regional breakdowns and a sample
of raw rows. Partner regions come from ~/.config/tradedb/regions.yaml.

The database is only read. The output file is replaced at once, a
failed run leaves the previous document in place.

Examples:
  tradedb extract
  tradedb extract -o public/dashboard_precomputed.json --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExtract(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	extractCmd.Flags().StringP("output", "o", "",
		"path of the dashboard JSON file")
	extractCmd.Flags().BoolP("pretty", "p", false,
		"indent JSON output")
	extractCmd.Flags().Int("sample-size", 0,
		"number of raw rows in the document")

	return extractCmd
}

func runExtract(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg.Update(flagOptions(cmd,
		stringFlag("output", config.OptExtractOutputPath),
		boolFlag("pretty", config.OptExtractPretty),
		intFlag("sample-size", config.OptExtractSampleSize),
	))

	op, err := connectSchema(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	_, err = ioextract.New(cfg, op).Extract(ctx)
	return err
}
