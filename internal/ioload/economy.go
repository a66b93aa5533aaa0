package ioload

import (
	"github.com/egytrade/tradedb/pkg/star"
)

func economyBatch(recs []star.EconomyRecord) *batch {
	b := &batch{
		fact:       star.EconomyFact,
		size:       len(recs),
		anomalies:  star.Anomalies{},
		periodCols: []string{"indicator_key_fk", "date_key_fk"},
		period: func(fks []int64) []any {
			return []any{fks[0], fks[1]}
		},
	}

	for _, r := range recs {
		countNumber(b.anomalies, "indicator_value", r.IndicatorValue)
	}

	b.tuple = func(i int, dim star.Dimension) []any {
		r := recs[i]
		switch dim.Name {
		case star.DateDim.Name:
			return yearTuple(r.Year)
		case star.IndicatorDim.Name:
			code := text(r.IndicatorCode)
			if code == nil {
				return nil
			}
			return []any{code, text(r.Description)}
		}
		return nil
	}

	b.measures = func(i int) []any {
		return []any{recs[i].IndicatorValue.SQL()}
	}
	return b
}
