package iodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/schema"
	"github.com/egytrade/tradedb/pkg/star"
	_ "modernc.org/sqlite"
)

// timeLayout keeps stored timestamps sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteOperator implements db.Operator on a SQLite file.
type SQLiteOperator struct {
	db *sql.DB
}

// NewSQLiteOperator creates a new SQLite operator (without opening
// the file).
func NewSQLiteOperator() *SQLiteOperator {
	return &SQLiteOperator{}
}

// Connect opens the SQLite file with foreign keys enforced.
func (s *SQLiteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	if cfg.Path == "" {
		return ConnectionError(cfg, errors.New("sqlite path is empty"))
	}

	sqlDB, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return ConnectionError(cfg, err)
	}
	// PRAGMAs are per connection, keep exactly one
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, v := range pragmas {
		if _, err = sqlDB.ExecContext(ctx, v); err != nil {
			_ = sqlDB.Close()
			return ConnectionError(cfg, err)
		}
	}

	s.db = sqlDB
	return nil
}

// Close closes the database file.
func (s *SQLiteOperator) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Kind returns "sqlite".
func (s *SQLiteOperator) Kind() string {
	return "sqlite"
}

// DB returns the underlying database handle.
func (s *SQLiteOperator) DB() *sql.DB {
	return s.db
}

// HasTables checks if any star schema table exists.
func (s *SQLiteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	names := schema.TableNames()
	args := make([]any, len(names))
	ps := make([]string, len(names))
	for i, v := range names {
		args[i] = v
		ps[i] = "?"
	}
	q := fmt.Sprintf(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN (%s)",
		strings.Join(ps, ", "),
	)

	var count int
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return false, TableCheckError(err)
	}
	return count > 0, nil
}

// DropAllTables drops star schema tables, referencing tables first.
func (s *SQLiteOperator) DropAllTables(ctx context.Context) error {
	if s.db == nil {
		return NotConnectedError()
	}

	for _, table := range schema.TableNames() {
		dropSQL := "DROP TABLE IF EXISTS " + table
		if _, err := s.db.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

// Begin starts a transaction.
func (s *SQLiteOperator) Begin(ctx context.Context) (db.Tx, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, TransactionError(err)
	}
	return &sqliteTx{tx: tx}, nil
}

// TradeRows reads joined trade facts in insertion order.
func (s *SQLiteOperator) TradeRows(ctx context.Context) ([]star.TradeRow, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	rows, err := s.db.QueryContext(ctx, tradeRowsSQL)
	if err != nil {
		return nil, QueryError(star.TradeFact.Table, err)
	}
	defer rows.Close()

	var res []star.TradeRow
	for rows.Next() {
		var row star.TradeRow
		var value, weight sql.NullFloat64
		err = rows.Scan(
			&row.Year, &row.Flow, &row.Partner, &row.PartnerISO,
			&row.Commodity, &value, &weight,
		)
		if err != nil {
			return nil, QueryError(star.TradeFact.Table, err)
		}
		row.Value = star.Number{Value: value.Float64, Valid: value.Valid}
		row.NetWeight = star.Number{Value: weight.Float64, Valid: weight.Valid}
		res = append(res, row)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(star.TradeFact.Table, err)
	}
	return res, nil
}

// RecordRun stores the audit record of a task invocation.
func (s *SQLiteOperator) RecordRun(ctx context.Context, run star.LoadRun) error {
	if s.db == nil {
		return NotConnectedError()
	}

	anomalies, err := encodeAnomalies(run.Anomalies)
	if err != nil {
		return err
	}

	q := fmt.Sprintf("INSERT INTO etl_runs (%s) VALUES %s",
		runColumns, sqliteDialect.values(1, 11))
	_, err = s.db.ExecContext(ctx, q,
		run.ID, run.Feed, run.Fingerprint, string(run.Status), run.RowsRead,
		run.FactsInserted, run.FactsReplaced, anomalies, run.Error,
		utc(run.StartedAt).Format(timeLayout),
		utc(run.FinishedAt).Format(timeLayout),
	)
	if err != nil {
		return QueryError("etl_runs", err)
	}
	return nil
}

// LastRun returns the latest run of a feed with the given status.
func (s *SQLiteOperator) LastRun(
	ctx context.Context,
	feed string,
	status star.RunStatus,
) (*star.LoadRun, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	q := fmt.Sprintf(`SELECT %s FROM etl_runs
	WHERE feed = ? AND status = ?
	ORDER BY finished_at DESC LIMIT 1`, runColumns)

	var run star.LoadRun
	var st, anomalies, started, finished string
	err := s.db.QueryRowContext(ctx, q, feed, string(status)).Scan(
		&run.ID, &run.Feed, &run.Fingerprint, &st, &run.RowsRead,
		&run.FactsInserted, &run.FactsReplaced, &anomalies, &run.Error,
		&started, &finished,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError("etl_runs", err)
	}

	run.Status = star.RunStatus(st)
	if run.Anomalies, err = decodeAnomalies(anomalies); err != nil {
		return nil, QueryError("etl_runs", err)
	}
	if run.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return nil, QueryError("etl_runs", err)
	}
	if run.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
		return nil, QueryError("etl_runs", err)
	}
	return &run, nil
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) exec(ctx context.Context, q string, args []any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *sqliteTx) EnsureKeys(
	ctx context.Context,
	dim star.Dimension,
	tuples [][]any,
) (int64, error) {
	return ensureKeys(ctx, sqliteDialect, t.exec, dim, tuples)
}

func (t *sqliteTx) KeyMap(ctx context.Context, dim star.Dimension) (star.KeyMap, error) {
	rows, err := t.tx.QueryContext(ctx, keyMapSQL(dim))
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

func (t *sqliteTx) DeleteFacts(
	ctx context.Context,
	fact star.Fact,
	cols []string,
	tuples [][]any,
) (int64, error) {
	return deleteFacts(ctx, sqliteDialect, t.exec, fact, cols, tuples)
}

// InsertFacts uses multi-row INSERT statements.
func (t *sqliteTx) InsertFacts(
	ctx context.Context,
	fact star.Fact,
	rows [][]any,
) (int64, error) {
	cols := fact.Columns()
	if err := checkWidth(fact.Table, rows, len(cols)); err != nil {
		return 0, err
	}

	var res int64
	for _, chunk := range sqliteDialect.chunks(rows, len(cols), 0) {
		q := sqliteDialect.insertSQL(fact.Table, cols, len(chunk), "")
		n, err := t.exec(ctx, q, flatten(chunk))
		if err != nil {
			return res, fmt.Errorf("insert into %s: %w", fact.Table, err)
		}
		res += n
	}
	return res, nil
}

func (t *sqliteTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback(context.Context) error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}
