package ioextract

import (
	"fmt"

	"github.com/egytrade/tradedb/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadError is returned when trade facts cannot be read.
func ReadError(err error) error {
	msg := `Cannot read trade facts

<em>How to fix:</em>
  1. Create the schema: <em>tradedb create</em>
  2. Load the feeds: <em>tradedb load all</em>`

	return &gn.Error{
		Code: errcode.ExtractReadError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot read trade facts: %w", err),
	}
}

// EncodeError is returned when the dashboard cannot be serialized.
func EncodeError(err error) error {
	return &gn.Error{
		Code: errcode.ExtractEncodeError,
		Msg:  "Cannot encode dashboard document",
		Err:  fmt.Errorf("cannot encode dashboard: %w", err),
	}
}

// WriteError is returned when the dashboard file cannot be written.
func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ExtractWriteError,
		Msg:  "Cannot write dashboard to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
