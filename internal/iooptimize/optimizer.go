// Package iooptimize implements Optimizer interface. It reclaims storage
// left by the replace rerun policy and updates planner statistics.
package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// optimizer implements the Optimizer interface.
type optimizer struct {
	operator db.Operator
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(op db.Operator) lifecycle.Optimizer {
	return &optimizer{operator: op}
}

// Optimize runs VACUUM ANALYZE on every star schema table with
// PostgreSQL, or VACUUM followed by ANALYZE of the database file with
// SQLite. Neither can run inside a transaction, the operator must not
// have one open.
func (o *optimizer) Optimize(ctx context.Context) error {
	slog.Info("Starting database optimization")
	timeStart := time.Now()

	var err error
	switch op := o.operator.(type) {
	case db.PoolProvider:
		if op.Pool() == nil {
			return NotConnectedError()
		}
		err = vacuumPostgres(ctx, op)
	case db.SQLProvider:
		if op.DB() == nil {
			return NotConnectedError()
		}
		err = vacuumSQLite(ctx, op)
	default:
		return NotConnectedError()
	}
	if err != nil {
		return err
	}

	dur := gnfmt.TimeString(time.Since(timeStart).Seconds())
	slog.Info("Optimization completed", "duration", dur)
	gn.Info("Optimization completed in <em>%s</em>", dur)
	return nil
}
