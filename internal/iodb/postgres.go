package iodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/schema"
	"github.com/egytrade/tradedb/pkg/star"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxOperator implements db.Operator interface using a pgxpool
// capped at one connection.
type PgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new PostgreSQL operator
// (without connecting).
func NewPgxOperator() *PgxOperator {
	return &PgxOperator{}
}

// Connect establishes the connection to PostgreSQL.
func (p *PgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg, err)
	}

	// one connection per task invocation
	poolConfig.MaxConns = 1
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg, err)
	}

	p.pool = pool
	return nil
}

// Close releases the database connection.
func (p *PgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Kind returns "postgres".
func (p *PgxOperator) Kind() string {
	return "postgres"
}

// Pool returns the underlying pgxpool.Pool.
func (p *PgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// HasTables checks if any star schema table exists in the public schema.
func (p *PgxOperator) HasTables(ctx context.Context) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = ANY($1)
		)
	`

	var hasTables bool
	err := p.pool.QueryRow(ctx, query, schema.TableNames()).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// DropAllTables drops star schema tables with CASCADE.
func (p *PgxOperator) DropAllTables(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	for _, table := range schema.TableNames() {
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}

// Begin starts a transaction on the single connection.
func (p *PgxOperator) Begin(ctx context.Context) (db.Tx, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, TransactionError(err)
	}
	return &pgxTx{tx: tx}, nil
}

// TradeRows reads joined trade facts in insertion order.
func (p *PgxOperator) TradeRows(ctx context.Context) ([]star.TradeRow, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := p.pool.Query(ctx, tradeRowsSQL)
	if err != nil {
		return nil, QueryError(star.TradeFact.Table, err)
	}
	defer rows.Close()

	var res []star.TradeRow
	for rows.Next() {
		var row star.TradeRow
		var value, weight *float64
		err = rows.Scan(
			&row.Year, &row.Flow, &row.Partner, &row.PartnerISO,
			&row.Commodity, &value, &weight,
		)
		if err != nil {
			return nil, QueryError(star.TradeFact.Table, err)
		}
		row.Value = numberFromPtr(value)
		row.NetWeight = numberFromPtr(weight)
		res = append(res, row)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(star.TradeFact.Table, err)
	}
	return res, nil
}

// RecordRun stores the audit record of a task invocation.
func (p *PgxOperator) RecordRun(ctx context.Context, run star.LoadRun) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	anomalies, err := encodeAnomalies(run.Anomalies)
	if err != nil {
		return err
	}

	q := fmt.Sprintf("INSERT INTO etl_runs (%s) VALUES %s",
		runColumns, pgDialect.values(1, 11))
	_, err = p.pool.Exec(ctx, q,
		run.ID, run.Feed, run.Fingerprint, string(run.Status), run.RowsRead,
		run.FactsInserted, run.FactsReplaced, anomalies, run.Error,
		utc(run.StartedAt), utc(run.FinishedAt),
	)
	if err != nil {
		return QueryError("etl_runs", err)
	}
	return nil
}

// LastRun returns the latest run of a feed with the given status.
func (p *PgxOperator) LastRun(
	ctx context.Context,
	feed string,
	status star.RunStatus,
) (*star.LoadRun, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	q := fmt.Sprintf(`SELECT %s FROM etl_runs
	WHERE feed = $1 AND status = $2
	ORDER BY finished_at DESC LIMIT 1`, runColumns)

	var run star.LoadRun
	var st, anomalies string
	err := p.pool.QueryRow(ctx, q, feed, string(status)).Scan(
		&run.ID, &run.Feed, &run.Fingerprint, &st, &run.RowsRead,
		&run.FactsInserted, &run.FactsReplaced, &anomalies, &run.Error,
		&run.StartedAt, &run.FinishedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError("etl_runs", err)
	}
	run.Status = star.RunStatus(st)
	if run.Anomalies, err = decodeAnomalies(anomalies); err != nil {
		return nil, QueryError("etl_runs", err)
	}
	return &run, nil
}

type pgxTx struct {
	tx pgx.Tx
}

func (t *pgxTx) exec(ctx context.Context, q string, args []any) (int64, error) {
	tag, err := t.tx.Exec(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (t *pgxTx) EnsureKeys(
	ctx context.Context,
	dim star.Dimension,
	tuples [][]any,
) (int64, error) {
	return ensureKeys(ctx, pgDialect, t.exec, dim, tuples)
}

func (t *pgxTx) KeyMap(ctx context.Context, dim star.Dimension) (star.KeyMap, error) {
	rows, err := t.tx.Query(ctx, keyMapSQL(dim))
	if err != nil {
		return nil, QueryError(dim.Table, err)
	}
	defer rows.Close()

	res := make(star.KeyMap)
	for rows.Next() {
		var key int64
		var natural string
		if err = rows.Scan(&key, &natural); err != nil {
			return nil, QueryError(dim.Table, err)
		}
		res[star.NaturalKey(natural)] = key
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(dim.Table, err)
	}
	return res, nil
}

func (t *pgxTx) DeleteFacts(
	ctx context.Context,
	fact star.Fact,
	cols []string,
	tuples [][]any,
) (int64, error) {
	return deleteFacts(ctx, pgDialect, t.exec, fact, cols, tuples)
}

// InsertFacts uses the COPY protocol.
func (t *pgxTx) InsertFacts(
	ctx context.Context,
	fact star.Fact,
	rows [][]any,
) (int64, error) {
	cols := fact.Columns()
	if err := checkWidth(fact.Table, rows, len(cols)); err != nil {
		return 0, err
	}
	return t.tx.CopyFrom(
		ctx,
		pgx.Identifier{fact.Table},
		cols,
		pgx.CopyFromRows(rows),
	)
}

func (t *pgxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgxTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
