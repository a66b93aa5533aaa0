package cmd

import (
	"errors"
	"fmt"

	"github.com/egytrade/tradedb/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadConfigError is returned when config.yaml cannot be read or parsed.
func ReadConfigError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read configuration from <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read config %s: %w", path, err),
	}
}

// EmptyDatabaseError is returned when a command needs the star schema
// but the database has no tables.
func EmptyDatabaseError() error {
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg: `<err>Database appears to be empty.</err>
   Run <em>'tradedb create'</em> first to initialize the schema.`,
		Err: errors.New("star schema tables do not exist"),
	}
}
