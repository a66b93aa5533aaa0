// Package iodb implements star schema storage on PostgreSQL (pgxpool) and
// SQLite (modernc.org/sqlite). This is an impure I/O package that
// implements contracts defined in pkg/db.
package iodb

import (
	"time"

	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/star"
	"github.com/gnames/gnfmt"
)

// New creates an operator for the database kind (without connecting).
func New(kind string) (db.Operator, error) {
	switch kind {
	case "postgres":
		return NewPgxOperator(), nil
	case "sqlite":
		return NewSQLiteOperator(), nil
	default:
		return nil, UnknownKindError(kind)
	}
}

func encodeAnomalies(a star.Anomalies) (string, error) {
	if a == nil {
		a = star.Anomalies{}
	}
	enc := gnfmt.GNjson{}
	res, err := enc.Encode(a)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

func decodeAnomalies(s string) (star.Anomalies, error) {
	res := star.Anomalies{}
	if s == "" {
		return res, nil
	}
	enc := gnfmt.GNjson{}
	err := enc.Decode([]byte(s), &res)
	return res, err
}

func numberFromPtr(f *float64) star.Number {
	if f == nil {
		return star.Number{}
	}
	return star.NewNumber(*f)
}

func utc(t time.Time) time.Time {
	return t.UTC()
}
