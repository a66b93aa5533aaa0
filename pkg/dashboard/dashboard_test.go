package dashboard_test

import (
	"fmt"
	"testing"

	"github.com/egytrade/tradedb/pkg/dashboard"
	"github.com/egytrade/tradedb/pkg/star"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(year int, flow, partner, commodity string, value float64) star.TradeRow {
	return star.TradeRow{
		Year:      year,
		Flow:      flow,
		Partner:   partner,
		Commodity: commodity,
		Value:     star.NewNumber(value),
	}
}

func TestCommodityName(t *testing.T) {
	tests := []struct {
		msg  string
		desc string
		name string
	}{
		{"code and qualifier", "0901 - Coffee; not roasted", "Coffee"},
		{"no qualifier", "27 - Mineral fuels", "Mineral fuels"},
		{"no spaces around dash", "1001-Wheat and meslin", "Wheat and meslin"},
		{"no code", "Cotton; raw", "Cotton"},
		{"plain", "Total", "Total"},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.name, dashboard.CommodityName(v.desc), v.msg)
	}
}

func TestBuildTrends(t *testing.T) {
	rows := []star.TradeRow{
		row(2022, "Export", "Egypt", "0901 - Coffee; not roasted", 100),
		row(2022, "Import", "Egypt", "0901 - Coffee; not roasted", 40),
		row(2023, "Export", "Italy", "0901 - Coffee; not roasted", 60),
	}

	res, anomalies := dashboard.Build(
		rows, dashboard.DefaultRegions(), dashboard.DefaultOptions(),
	)
	require.NotNil(t, res)
	assert.Empty(t, anomalies)

	assert.Equal(t, []dashboard.Trend{
		{Year: 2022, Exports: 100, Imports: 40},
		{Year: 2023, Exports: 60, Imports: 0},
	}, res.Trends)

	y22 := res.YearlyData[2022]
	assert.Equal(t, dashboard.KPI{Exports: 100, Imports: 40, Net: 60}, y22.KPI)
	assert.Equal(t, []dashboard.FlowTotals{
		{Name: "MENA", Exports: 100, Imports: 40},
	}, y22.Regions)
	assert.Equal(t, []dashboard.CommodityValue{
		{Name: "Coffee", Value: 140},
	}, y22.Commodities.Top10)

	y23 := res.YearlyData[2023]
	assert.Equal(t, dashboard.KPI{Exports: 60, Imports: 0, Net: 60}, y23.KPI)
	assert.Equal(t, "Europe", y23.Regions[0].Name)

	assert.Len(t, res.RawSample, 3)
	assert.Equal(t, dashboard.SampleRow{
		Year: 2022, Flow: "Export", Partner: "Egypt",
		Commodity: "0901 - Coffee; not roasted", Value: 100,
	}, res.RawSample[0])
}

func TestBuildTopPartners(t *testing.T) {
	var rows []star.TradeRow
	for i := range 15 {
		partner := fmt.Sprintf("Country %02d", i)
		rows = append(rows,
			row(2024, "Export", partner, "Goods", float64(i*10)),
			row(2024, "Import", partner, "Goods", float64(i)),
		)
	}

	res, _ := dashboard.Build(
		rows, dashboard.DefaultRegions(), dashboard.DefaultOptions(),
	)
	partners := res.YearlyData[2024].Partners
	require.Len(t, partners, 10)

	for i, p := range partners {
		assert.Equal(t, fmt.Sprintf("Country %02d", 14-i), p.Name)
		if i > 0 {
			prev := partners[i-1]
			assert.GreaterOrEqual(t,
				prev.Exports+prev.Imports, p.Exports+p.Imports)
		}
	}
	assert.Equal(t, 140.0, partners[0].Exports)
	assert.Equal(t, 14.0, partners[0].Imports)
}

func TestBuildTiesAreOrderedByName(t *testing.T) {
	rows := []star.TradeRow{
		row(2024, "Export", "Zambia", "B - Beta", 5),
		row(2024, "Export", "Angola", "A - Alpha", 5),
		row(2024, "Export", "Mali", "C - Gamma", 7),
	}

	for range 3 {
		res, _ := dashboard.Build(
			rows, dashboard.DefaultRegions(), dashboard.DefaultOptions(),
		)
		yd := res.YearlyData[2024]
		names := []string{}
		for _, p := range yd.Partners {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"Mali", "Angola", "Zambia"}, names)

		names = names[:0]
		for _, c := range yd.Commodities.Top10 {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, names)
	}
}

func TestBuildRegionsAddUpToKPI(t *testing.T) {
	rows := []star.TradeRow{
		row(2021, "Export", "Egypt", "X", 10),
		row(2021, "Import", "Germany", "X", 20),
		row(2021, "Export", "USA", "Y", 30.5),
		row(2021, "Import", "Japan", "Y", 7.25),
		row(2021, "Export", "Chile", "Z", 1),
		row(2021, "Re-export", "Chile", "Z", 100),
		{Year: 2021, Flow: "Import", Partner: "Chile", Commodity: "Z"},
	}

	res, anomalies := dashboard.Build(
		rows, dashboard.DefaultRegions(), dashboard.DefaultOptions(),
	)
	yd := res.YearlyData[2021]

	var exp, imp float64
	names := []string{}
	for _, r := range yd.Regions {
		exp += r.Exports
		imp += r.Imports
		names = append(names, r.Name)
	}
	assert.Equal(t, yd.KPI.Exports, exp)
	assert.Equal(t, yd.KPI.Imports, imp)
	assert.Equal(t, yd.KPI.Exports-yd.KPI.Imports, yd.KPI.Net)
	assert.Equal(t,
		[]string{"Americas", "Asia", "Europe", "International", "MENA"}, names)

	assert.Equal(t, 1, anomalies.Get("flow", star.KindOtherFlow))
	assert.Equal(t, 1, anomalies.Get("trade_value", star.KindNull))
	// other flows still add to commodity values
	assert.Equal(t, 101.0, yd.Commodities.Top10[0].Value)
}

func TestBuildLimits(t *testing.T) {
	var rows []star.TradeRow
	for i := range 40 {
		rows = append(rows,
			row(2020, "Export", "Egypt", fmt.Sprintf("%02d - Item %02d", i, i), float64(i)))
	}
	opts := dashboard.DefaultOptions()
	opts.SampleSize = 25

	res, _ := dashboard.Build(rows, dashboard.DefaultRegions(), opts)
	yd := res.YearlyData[2020]
	assert.Len(t, yd.Commodities.Top10, 10)
	assert.Len(t, yd.Commodities.All, 30)
	assert.Equal(t, "Item 39", yd.Commodities.Top10[0].Name)
	assert.Equal(t, 39.0, yd.Commodities.All[0].Size)
	assert.Len(t, res.RawSample, 25)
	assert.Equal(t, "00 - Item 00", res.RawSample[0].Commodity)
}

func TestBuildEmpty(t *testing.T) {
	res, anomalies := dashboard.Build(
		nil, dashboard.DefaultRegions(), dashboard.DefaultOptions(),
	)
	assert.NotNil(t, res.Trends)
	assert.NotNil(t, res.RawSample)
	assert.Empty(t, res.YearlyData)
	assert.Zero(t, anomalies.Total())
}

func TestRegions(t *testing.T) {
	r := dashboard.DefaultRegions()
	assert.Equal(t, "MENA", r.Region("Saudi Arabia"))
	assert.Equal(t, "Europe", r.Region(" Italy "))
	assert.Equal(t, "Americas", r.Region("USA"))
	assert.Equal(t, "Asia", r.Region("South Korea"))
	assert.Equal(t, dashboard.DefaultRegion, r.Region("Chile"))

	custom := dashboard.NewRegions(map[string][]string{
		"North":  {"Norway"},
		"Arctic": {"Norway", "Iceland"},
	}, "Rest")
	assert.Equal(t, "Arctic", custom.Region("Norway"))
	assert.Equal(t, "Rest", custom.Region("Chile"))
}

func TestRegionsConfigValidate(t *testing.T) {
	warns, err := dashboard.DefaultRegionsConfig().Validate()
	require.NoError(t, err)
	assert.Empty(t, warns)

	_, err = dashboard.RegionsConfig{}.Validate()
	assert.Error(t, err)

	_, err = dashboard.RegionsConfig{
		Regions: map[string][]string{" ": {"Chile"}},
	}.Validate()
	assert.Error(t, err)

	cfg := dashboard.RegionsConfig{
		Regions: map[string][]string{
			"North":  {"Norway"},
			"Arctic": {"Norway", "Iceland", ""},
			"Empty":  nil,
		},
	}
	warns, err = cfg.Validate()
	require.NoError(t, err)
	assert.Len(t, warns, 3)
	assert.Equal(t, "Arctic", cfg.Lookup().Region("Norway"))
	assert.Equal(t, dashboard.DefaultRegion, cfg.Lookup().Region("Chile"))
}
