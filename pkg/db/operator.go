package db

import (
	"context"
	"database/sql"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/star"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines database operations of the star schema store.
// Every operator holds at most one connection, ETL tasks and the
// extraction job never talk to the database concurrently.
//
// Schema creation is not part of the interface. SchemaManager reaches the
// engine-specific handle through PoolProvider or SQLProvider.
type Operator interface {
	// Connect opens the single connection to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the connection. It is safe to call on a closed
	// or never connected operator.
	Close() error

	// Kind returns the engine name, "postgres" or "sqlite".
	Kind() string

	// HasTables checks if any star schema table exists.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops star schema tables, facts first.
	DropAllTables(ctx context.Context) error

	// Begin starts the unit of work of one ETL task invocation.
	Begin(ctx context.Context) (Tx, error)

	// TradeRows returns trade facts joined with their dimensions in
	// insertion order.
	TradeRows(ctx context.Context) ([]star.TradeRow, error)

	// RecordRun stores an audit record of an ETL task invocation.
	RecordRun(ctx context.Context, run star.LoadRun) error

	// LastRun returns the latest run of a feed with the given status,
	// or nil if there is none.
	LastRun(
		ctx context.Context,
		feed string,
		status star.RunStatus,
	) (*star.LoadRun, error)
}

// Tx is a database transaction scoped to star schema writes.
// Nothing written through Tx is visible to other connections before
// Commit, and Rollback discards dimension and fact rows alike.
type Tx interface {
	// EnsureKeys inserts dimension rows whose natural key is absent.
	// Each tuple holds values of dim.Columns in order. Conflicting natural
	// keys are ignored. Returns the number of inserted rows.
	EnsureKeys(ctx context.Context, dim star.Dimension, tuples [][]any) (int64, error)

	// KeyMap reads the whole dimension table as natural to surrogate keys.
	KeyMap(ctx context.Context, dim star.Dimension) (star.KeyMap, error)

	// DeleteFacts removes facts whose columns cols match any of the tuples.
	// Returns the number of deleted rows.
	DeleteFacts(
		ctx context.Context,
		fact star.Fact,
		cols []string,
		tuples [][]any,
	) (int64, error)

	// InsertFacts inserts rows with values in fact.Columns() order.
	InsertFacts(ctx context.Context, fact star.Fact, rows [][]any) (int64, error)

	// Commit makes all writes of the transaction durable.
	Commit(ctx context.Context) error

	// Rollback discards all writes. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error
}

// PoolProvider is implemented by PostgreSQL operators.
type PoolProvider interface {
	Pool() *pgxpool.Pool
}

// SQLProvider is implemented by operators built on database/sql.
type SQLProvider interface {
	DB() *sql.DB
}
