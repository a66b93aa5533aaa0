package ioload

import (
	"github.com/egytrade/tradedb/pkg/star"
)

func tradeBatch(recs []star.TradeRecord) *batch {
	b := &batch{
		fact:       star.TradeFact,
		size:       len(recs),
		anomalies:  star.Anomalies{},
		periodCols: []string{"date_key_fk"},
		period: func(fks []int64) []any {
			return []any{fks[0]}
		},
	}

	for _, r := range recs {
		countNumber(b.anomalies, "trade_value", r.TradeValue)
		countNumber(b.anomalies, "net_weight", r.NetWeight)
		if r.PartnerCode.Unparsable() {
			b.anomalies.Add("partner_code", star.KindUnparsable)
		}
	}

	b.tuple = func(i int, dim star.Dimension) []any {
		r := recs[i]
		switch dim.Name {
		case star.DateDim.Name:
			return yearTuple(r.Year)
		case star.CountryDim.Name:
			name := text(r.PartnerCountry)
			if name == nil {
				return nil
			}
			var code any
			if c, ok := r.PartnerCode.Int(); ok {
				code = int64(c)
			}
			return []any{name, text(r.PartnerISO), code}
		case star.CommodityDim.Name:
			return single(text(r.Commodity))
		case star.FlowDim.Name:
			return single(text(r.Flow))
		}
		return nil
	}

	b.measures = func(i int) []any {
		return []any{recs[i].TradeValue.SQL(), recs[i].NetWeight.SQL()}
	}
	return b
}

func yearTuple(n star.Number) []any {
	year, ok := n.Int()
	if !ok {
		return nil
	}
	return []any{year}
}

func single(v any) []any {
	if v == nil {
		return nil
	}
	return []any{v}
}

func countNumber(a star.Anomalies, field string, n star.Number) {
	switch {
	case n.Unparsable():
		a.Add(field, star.KindUnparsable)
	case !n.Valid:
		a.Add(field, star.KindNull)
	}
}
