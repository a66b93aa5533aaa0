package ioload

import (
	"testing"

	"github.com/egytrade/tradedb/pkg/star"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) star.Number {
	return star.NewNumber(v)
}

func TestTradeBatchProject(t *testing.T) {
	recs := []star.TradeRecord{
		{Year: num(2022), PartnerCountry: " Egypt ", PartnerISO: "EGY",
			Commodity: "Coffee", Flow: "Export", TradeValue: num(10)},
		{Year: num(2022), PartnerCountry: "Egypt", Commodity: "Coffee",
			Flow: "Import", TradeValue: num(5)},
		{Year: num(2023), PartnerCountry: "", Commodity: "Tea",
			Flow: "Export", TradeValue: num(1)},
		{Year: num(2024), PartnerCountry: "Peru", Commodity: "Tea",
			Flow: "Export", TradeValue: num(1)},
	}
	b := tradeBatch(recs)
	assert.Equal(t, 4, b.anomalies.Get("net_weight", star.KindNull))

	keys := map[string]star.KeyMap{
		"date":      {"2022": 1, "2023": 2},
		"country":   {"Egypt": 7},
		"commodity": {"Coffee": 3, "Tea": 4},
		"flow":      {"Export": 1, "Import": 2},
	}
	p := b.project(keys)

	require.Len(t, p.rows, 2)
	assert.Equal(t, []any{int64(1), int64(7), int64(3), int64(1), 10.0, nil},
		p.rows[0])
	assert.Equal(t, [][]any{{int64(1)}}, p.periods)
	assert.Equal(t, 2, p.dropped)
	assert.Equal(t, 1, b.anomalies.Get("country", star.KindEmpty))
	assert.Equal(t, 1, b.anomalies.Get("date", star.KindUnmatched))
}

func TestEconomyBatchPeriods(t *testing.T) {
	recs := []star.EconomyRecord{
		{Year: num(2022), IndicatorCode: "GDP", Description: "GDP",
			IndicatorValue: num(1)},
		{Year: num(2022), IndicatorCode: "GDP", Description: "GDP",
			IndicatorValue: num(2)},
		{Year: num(2023), IndicatorCode: "GDP", Description: "GDP",
			IndicatorValue: num(3)},
	}
	b := economyBatch(recs)
	keys := map[string]star.KeyMap{
		"date":      {"2022": 1, "2023": 2},
		"indicator": {"GDP": 5},
	}
	p := b.project(keys)
	assert.Len(t, p.rows, 3)
	assert.Equal(t, [][]any{{int64(5), int64(1)}, {int64(5), int64(2)}},
		p.periods)
}
