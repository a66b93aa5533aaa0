package ioschema_test

import (
	"context"
	"testing"

	"github.com/egytrade/tradedb/internal/iodb"
	"github.com/egytrade/tradedb/internal/ioschema"
	"github.com/egytrade/tradedb/internal/iotesting"
	"github.com/egytrade/tradedb/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerImplementsInterface(t *testing.T) {
	var _ lifecycle.SchemaManager = ioschema.NewManager(iodb.NewPgxOperator())
	var _ lifecycle.SchemaManager = ioschema.NewManager(iodb.NewSQLiteOperator())
}

func TestCreateNotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewSQLiteOperator())
	err := mgr.Create(context.Background())
	assert.Error(t, err)
}

func TestCreateSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := iotesting.SQLiteConfig(t)

	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))
	// idempotent
	require.NoError(t, mgr.Create(ctx))

	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	var count int
	err = op.DB().QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name LIKE 'dim_%'",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	require.NoError(t, op.DropAllTables(ctx))
	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCreatePostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.PostgresConfig()
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))
	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))
	require.NoError(t, mgr.Create(ctx))

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}
