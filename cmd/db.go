package cmd

import (
	"context"

	"github.com/egytrade/tradedb/internal/iodb"
	"github.com/egytrade/tradedb/pkg/db"
	"github.com/gnames/gn"
)

// newOperator creates an unconnected operator of a database kind.
var newOperator = iodb.New

// connect opens the database of the configuration. The caller closes
// the returned operator.
func connect(ctx context.Context) (db.Operator, error) {
	op, err := newOperator(cfg.Database.Kind)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	if op.Kind() == "sqlite" {
		gn.Info("Connected to database: <em>%s</em>", cfg.Database.Path)
	} else {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}
	return op, nil
}

// connectSchema opens the database and makes sure the star schema exists.
func connectSchema(ctx context.Context) (db.Operator, error) {
	op, err := connect(ctx)
	if err != nil {
		return nil, err
	}

	hasTables, err := op.HasTables(ctx)
	if err == nil && !hasTables {
		err = EmptyDatabaseError()
	}
	if err != nil {
		_ = op.Close()
		return nil, err
	}
	return op, nil
}
