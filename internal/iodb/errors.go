package iodb

import (
	"fmt"
	"runtime"

	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/errcode"
	"github.com/gnames/gn"
)

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

// ConnectionError is returned when the database cannot be reached.
func ConnectionError(cfg *config.DatabaseConfig, err error) error {
	var msg string
	var vars []any
	if cfg.Kind == "sqlite" {
		msg = `<title>Database Connection Failed</title>
Could not open SQLite database <em>%s</em>.`
		vars = []any{cfg.Path}
	} else {
		msg = `<title>Database Connection Failed</title>
Could not connect to PostgreSQL database.

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>
  3. Check settings in <em>~/.config/tradedb/config.yaml</em>
     Database: %s`
		vars = []any{cfg.Host, cfg.Port, cfg.Host, cfg.User, cfg.Database}
	}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s database: %w",
			caller(), cfg.Kind, err),
	}
}

// UnknownKindError is returned for unsupported database engines.
func UnknownKindError(kind string) error {
	return &gn.Error{
		Code: errcode.DBUnknownKindError,
		Msg:  "Unknown database kind <em>%s</em>",
		Vars: []any{kind},
		Err:  fmt.Errorf("from %s: unknown database kind %q", caller(), kind),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  fmt.Errorf("from %s: database is not connected", caller()),
	}
}

func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Could not verify database state",
		Err:  fmt.Errorf("from %s: cannot check tables: %w", caller(), err),
	}
}

func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Cannot drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("from %s: cannot drop %s: %w", caller(), table, err),
	}
}

func TransactionError(err error) error {
	return &gn.Error{
		Code: errcode.DBTransactionError,
		Msg:  "Cannot start database transaction",
		Err:  fmt.Errorf("from %s: cannot begin transaction: %w", caller(), err),
	}
}

func QueryError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  "Cannot read <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("from %s: query on %s failed: %w", caller(), table, err),
	}
}
