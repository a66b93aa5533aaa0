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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/egytrade/tradedb/internal/ioschema"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var drop, force bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create star schema tables",
		Long: `Create dimension, fact and run log tables of the star schema.

This command:
  1. Connects to the database using configuration settings
  2. Optionally drops existing tables (--drop)
  3. Creates missing tables, unique keys, foreign keys and indexes
     (GORM AutoMigrate on PostgreSQL, DDL on SQLite)

Without --drop the command is idempotent: existing tables and rows
are kept.

Examples:
  tradedb create
  tradedb create --drop
  tradedb create --drop --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(cmd.Context(), os.Stdin, drop, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().BoolVarP(&drop, "drop", "d",
		false, "drop existing tables and data first")
	createCmd.Flags().BoolVarP(&force, "force", "f",
		false, "drop without confirmation")

	return createCmd
}

func runCreate(
	ctx context.Context,
	in io.Reader,
	drop, force bool,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if drop && hasTables {
		if !force && !confirm(in) {
			gn.Info("Aborted. No changes made.")
			return nil
		}
		gn.Info("Dropping all existing tables...")
		if err = op.DropAllTables(ctx); err != nil {
			return err
		}
		gn.Info("All tables dropped")
	}

	sm := ioschema.NewManager(op)
	gn.Info("Creating star schema...")
	if err = sm.Create(ctx); err != nil {
		return err
	}

	gn.Info(`Star schema is ready.

Next steps:
  - Run '<em>tradedb load all</em>' to import extracts
  - Run '<em>tradedb extract</em>' to write the dashboard`)
	return nil
}

func confirm(in io.Reader) bool {
	gn.Warn("\nWarning: Database contains existing tables.")
	gn.Warn("Dropping will remove ALL loaded data.")
	fmt.Print("\nDo you want to continue? (yes/no): ")

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		gn.Warn("Failed to read user input")
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}
