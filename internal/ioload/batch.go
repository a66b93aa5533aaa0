package ioload

import (
	"fmt"
	"strings"

	"github.com/egytrade/tradedb/pkg/star"
)

// batch is the input of one feed described in star schema terms.
type batch struct {
	fact star.Fact
	size int

	// tuple returns values of dim.Columns for the i-th record, or nil when
	// its natural key is empty.
	tuple func(i int, dim star.Dimension) []any

	// measures returns measure values of the i-th record.
	measures func(i int) []any

	// periodCols are fact columns that identify the period of a fact for
	// the replace policy.
	periodCols []string

	// period returns values of periodCols from resolved foreign keys,
	// given in fact.Refs order.
	period func(fks []int64) []any

	anomalies star.Anomalies
}

// projection is a batch with surrogate keys in place of natural keys.
type projection struct {
	rows    [][]any
	periods [][]any
	dropped int
}

// project joins records with dimension keys. Records with an empty or
// unmatched natural key are dropped and counted against the first
// dimension that failed.
func (b *batch) project(keys map[string]star.KeyMap) projection {
	var res projection
	seen := make(map[string]struct{})
	refs := b.fact.Refs

rows:
	for i := range b.size {
		fks := make([]int64, len(refs))
		for j, ref := range refs {
			t := b.tuple(i, ref.Dim)
			if t == nil {
				b.anomalies.Add(ref.Dim.Name, star.KindEmpty)
				res.dropped++
				continue rows
			}
			k, ok := keys[ref.Dim.Name].Lookup(t[0])
			if !ok {
				b.anomalies.Add(ref.Dim.Name, star.KindUnmatched)
				res.dropped++
				continue rows
			}
			fks[j] = k
		}

		row := make([]any, 0, len(refs)+len(b.fact.Measures))
		for _, v := range fks {
			row = append(row, v)
		}
		row = append(row, b.measures(i)...)
		res.rows = append(res.rows, row)

		p := b.period(fks)
		id := periodID(p)
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			res.periods = append(res.periods, p)
		}
	}
	return res
}

func periodID(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "|")
}

// text cleans a string field, empty result means a missing value.
func text(s string) any {
	s = star.CleanText(s)
	if s == "" {
		return nil
	}
	return s
}
