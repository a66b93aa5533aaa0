package iooptimize

import (
	"fmt"

	"github.com/egytrade/tradedb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when the operator has no open database.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database not connected",
		Err:  fmt.Errorf("optimizer: database is not connected"),
	}
}

// VacuumError is returned when maintenance of a table fails.
func VacuumError(table string, err error) error {
	msg := `Cannot vacuum <em>%s</em>

<em>How to fix:</em>
  1. Make sure no other session holds a lock on the table
  2. Run <em>tradedb optimize</em> again`

	return &gn.Error{
		Code: errcode.OptimizeVacuumError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("cannot vacuum %s: %w", table, err),
	}
}
