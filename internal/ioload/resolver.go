package ioload

import (
	"context"
	"log/slog"

	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/star"
)

// resolve makes sure every natural key referenced by the batch exists in
// its dimension table and returns natural to surrogate key maps by
// dimension name. Attributes of a key come from its first record.
// It runs inside the caller's transaction, so keys inserted here are
// read back before commit.
func resolve(
	ctx context.Context,
	tx db.Tx,
	b *batch,
) (map[string]star.KeyMap, error) {
	res := make(map[string]star.KeyMap)

	for _, dim := range b.fact.Dims() {
		var tuples [][]any
		seen := make(map[string]struct{})
		for i := range b.size {
			t := b.tuple(i, dim)
			if t == nil {
				continue
			}
			k := star.NaturalKey(t[0])
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			tuples = append(tuples, t)
		}

		inserted, err := tx.EnsureKeys(ctx, dim, tuples)
		if err != nil {
			return nil, ResolveError(dim.Name, err)
		}

		km, err := tx.KeyMap(ctx, dim)
		if err != nil {
			return nil, ResolveError(dim.Name, err)
		}
		res[dim.Name] = km

		slog.Info("Dimension resolved",
			"dimension", dim.Table,
			"distinct", len(tuples),
			"inserted", inserted,
			"total", len(km),
		)
	}
	return res, nil
}
