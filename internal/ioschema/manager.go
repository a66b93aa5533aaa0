// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate on PostgreSQL and plain DDL on SQLite.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/lifecycle"
	"github.com/egytrade/tradedb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates missing tables of the star schema.
// Existing tables and their rows are kept.
func (m *manager) Create(ctx context.Context) error {
	switch op := m.operator.(type) {
	case db.PoolProvider:
		return m.createGORM(ctx, op)
	case db.SQLProvider:
		return m.createDDL(ctx, op)
	default:
		return NotConnectedError()
	}
}

func (m *manager) createGORM(ctx context.Context, op db.PoolProvider) error {
	pool := op.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	slog.Info("Schema is up to date", "engine", "postgres",
		"tables", len(schema.AllModels()))
	return nil
}

func (m *manager) createDDL(ctx context.Context, op db.SQLProvider) error {
	sqlDB := op.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return CreateSchemaError(err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, model := range schema.DDLModels() {
		stmts := append([]string{model.TableDDL()}, model.IndexDDL()...)
		for _, q := range stmts {
			if _, err = tx.ExecContext(ctx, q); err != nil {
				slog.Error("Cannot create table",
					"table", model.TableName(), "error", err)
				return CreateSchemaError(err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return CreateSchemaError(err)
	}

	slog.Info("Schema is up to date", "engine", "sqlite",
		"tables", len(schema.DDLModels()))
	return nil
}
