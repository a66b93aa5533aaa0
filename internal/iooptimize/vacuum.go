package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/schema"
)

// vacuumPostgres runs VACUUM ANALYZE table by table, so a failure names
// the table. Missing tables are skipped.
func vacuumPostgres(ctx context.Context, op db.PoolProvider) error {
	pool := op.Pool()
	for _, table := range schema.TableNames() {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT to_regclass($1) IS NOT NULL", table,
		).Scan(&exists)
		if err != nil {
			return VacuumError(table, err)
		}
		if !exists {
			continue
		}

		timeStart := time.Now()
		if _, err = pool.Exec(ctx, "VACUUM ANALYZE "+table); err != nil {
			return VacuumError(table, err)
		}
		slog.Info("VACUUM ANALYZE completed",
			"table", table,
			"duration", time.Since(timeStart).String(),
		)
	}
	return nil
}

// vacuumSQLite rebuilds the database file and refreshes statistics.
func vacuumSQLite(ctx context.Context, op db.SQLProvider) error {
	for _, stmt := range []string{"VACUUM", "ANALYZE"} {
		timeStart := time.Now()
		if _, err := op.DB().ExecContext(ctx, stmt); err != nil {
			return VacuumError("main", err)
		}
		slog.Info("SQLite maintenance completed",
			"statement", stmt,
			"duration", time.Since(timeStart).String(),
		)
	}
	return nil
}
