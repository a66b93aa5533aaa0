package ioload

import (
	"fmt"

	"github.com/egytrade/tradedb/pkg/errcode"
	"github.com/egytrade/tradedb/pkg/star"
	"github.com/gnames/gn"
)

// NoInputError is returned when a feed has no input files.
func NoInputError(feed, pattern string) error {
	msg := `No input for <em>%s</em> feed

<em>Expected files:</em> %s

<em>How to fix:</em>
  1. Check <em>load.input_dir</em> in config.yaml or --input-dir flag
  2. Make sure the collector dropped the files`

	return &gn.Error{
		Code: errcode.LoadNoInputError,
		Msg:  msg,
		Vars: []any{feed, pattern},
		Err:  fmt.Errorf("no input files for %s feed: %s", feed, pattern),
	}
}

// InputPatternError is returned when the file pattern of a feed is not
// a valid glob.
func InputPatternError(feed, pattern string, err error) error {
	msg := `Invalid file pattern <em>%s</em> for <em>%s</em> feed

<em>How to fix:</em>
  Check <em>load.trade_pattern</em> or <em>load.economy_file</em> in config.yaml`

	return &gn.Error{
		Code: errcode.LoadInputPatternError,
		Msg:  msg,
		Vars: []any{pattern, feed},
		Err:  fmt.Errorf("invalid pattern %q for %s feed: %w", pattern, feed, err),
	}
}

// ReadInputError is returned when an input file cannot be read.
func ReadInputError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// DecodeError is returned when an input file is not a JSON array of
// records.
func DecodeError(path string, err error) error {
	msg := `Cannot decode <em>%s</em>

The file must contain a JSON array of flat records.`

	return &gn.Error{
		Code: errcode.LoadDecodeError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot decode %s: %w", path, err),
	}
}

// ResolveError is returned when dimension rows cannot be written or read.
func ResolveError(dim string, err error) error {
	return &gn.Error{
		Code: errcode.LoadResolveError,
		Msg:  "Cannot resolve <em>%s</em> dimension, nothing was loaded",
		Vars: []any{dim},
		Err:  fmt.Errorf("cannot resolve %s dimension: %w", dim, err),
	}
}

// StrictAnomalyError is returned in strict mode when rows would be
// dropped from the batch.
func StrictAnomalyError(feed string, a star.Anomalies) error {
	msg := `Strict mode: <em>%s</em> batch has %d rows with unresolved keys

<em>Anomalies:</em> %s
Nothing was loaded. Run without --strict to skip such rows.`

	return &gn.Error{
		Code: errcode.LoadStrictAnomalyError,
		Msg:  msg,
		Vars: []any{feed, a.Dropping(), a.String()},
		Err: fmt.Errorf("%s batch has %d rows with unresolved keys: %s",
			feed, a.Dropping(), a),
	}
}

// ReplaceError is returned when old facts of reloaded periods cannot be
// removed.
func ReplaceError(table string, err error) error {
	return &gn.Error{
		Code: errcode.LoadReplaceError,
		Msg:  "Cannot replace facts in <em>%s</em>, nothing was loaded",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot delete old facts from %s: %w", table, err),
	}
}

// InsertError is returned when fact rows cannot be inserted.
func InsertError(table string, err error) error {
	return &gn.Error{
		Code: errcode.LoadInsertError,
		Msg:  "Cannot insert facts into <em>%s</em>, nothing was loaded",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot insert into %s: %w", table, err),
	}
}

// CommitError is returned when the load transaction cannot be committed.
func CommitError(feed string, err error) error {
	return &gn.Error{
		Code: errcode.LoadCommitError,
		Msg:  "Cannot commit <em>%s</em> batch, nothing was loaded",
		Vars: []any{feed},
		Err:  fmt.Errorf("cannot commit %s batch: %w", feed, err),
	}
}

// RunLogError is returned when the audit record of a run cannot be
// stored.
func RunLogError(feed string, err error) error {
	return &gn.Error{
		Code: errcode.LoadRunLogError,
		Msg:  "Cannot record <em>%s</em> run in etl_runs",
		Vars: []any{feed},
		Err:  fmt.Errorf("cannot record %s run: %w", feed, err),
	}
}

// UnknownFeedError is returned for a feed name other than trade or
// economy.
func UnknownFeedError(feed string) error {
	return &gn.Error{
		Code: errcode.LoadUnknownFeedError,
		Msg:  "Unknown feed <em>%s</em>, use trade or economy",
		Vars: []any{feed},
		Err:  fmt.Errorf("unknown feed %q", feed),
	}
}
