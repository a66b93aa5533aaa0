package dashboard

import (
	"cmp"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/egytrade/tradedb/pkg/star"
)

var codePrefix = regexp.MustCompile(`^\d+\s*-\s*`)

// CommodityName shortens a commodity description for display: the part
// before the first ';' without the leading "<code> - ".
// "0901 - Coffee; not roasted" becomes "Coffee".
func CommodityName(desc string) string {
	name, _, _ := strings.Cut(desc, ";")
	name = codePrefix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

type flowAcc struct {
	exports float64
	imports float64
}

func (f *flowAcc) add(flow string, v float64) {
	switch flow {
	case FlowExport:
		f.exports += v
	case FlowImport:
		f.imports += v
	}
}

type yearAcc struct {
	total       flowAcc
	partners    map[string]*flowAcc
	regions     map[string]*flowAcc
	commodities map[string]float64
}

func newYearAcc() *yearAcc {
	return &yearAcc{
		partners:    make(map[string]*flowAcc),
		regions:     make(map[string]*flowAcc),
		commodities: make(map[string]float64),
	}
}

func group(m map[string]*flowAcc, name string) *flowAcc {
	res, ok := m[name]
	if !ok {
		res = &flowAcc{}
		m[name] = res
	}
	return res
}

// Build aggregates joined trade rows. Rows must come in fact insertion
// order, the raw sample is their head. NULL trade values count as 0.
// Only Export and Import flows feed the pivots, rows of other flows still
// create their partner, region and commodity entries and add to commodity
// values. Returned anomalies count NULL values and other flows.
func Build(
	rows []star.TradeRow,
	regions Regions,
	opts Options,
) (*Dashboard, star.Anomalies) {
	anomalies := star.Anomalies{}
	years := make(map[int]*yearAcc)

	for _, row := range rows {
		if !row.Value.Valid {
			anomalies.Add("trade_value", star.KindNull)
		}
		if row.Flow != FlowExport && row.Flow != FlowImport {
			anomalies.Add("flow", star.KindOtherFlow)
		}
		v := row.Value.OrZero()

		acc, ok := years[row.Year]
		if !ok {
			acc = newYearAcc()
			years[row.Year] = acc
		}
		acc.total.add(row.Flow, v)
		group(acc.partners, row.Partner).add(row.Flow, v)
		group(acc.regions, regions.Region(row.Partner)).add(row.Flow, v)
		acc.commodities[row.Commodity] += v
	}

	res := &Dashboard{
		Trends:     []Trend{},
		YearlyData: make(map[int]YearData, len(years)),
		RawSample:  rawSample(rows, opts.SampleSize),
	}

	for _, year := range slices.Sorted(maps.Keys(years)) {
		acc := years[year]
		res.Trends = append(res.Trends, Trend{
			Year:    year,
			Exports: acc.total.exports,
			Imports: acc.total.imports,
		})
		res.YearlyData[year] = yearData(acc, opts)
	}
	return res, anomalies
}

func yearData(acc *yearAcc, opts Options) YearData {
	res := YearData{
		KPI: KPI{
			Exports: acc.total.exports,
			Imports: acc.total.imports,
			Net:     acc.total.exports - acc.total.imports,
		},
	}

	partners := flowTotals(acc.partners)
	rank(partners, func(f FlowTotals) float64 { return f.Exports + f.Imports })
	res.Partners = head(partners, opts.TopPartners)

	res.Regions = flowTotals(acc.regions)

	descs := slices.Sorted(maps.Keys(acc.commodities))
	slices.SortStableFunc(descs, func(a, b string) int {
		return cmp.Compare(acc.commodities[b], acc.commodities[a])
	})

	top := head(descs, opts.TopCommodities)
	res.Commodities.Top10 = make([]CommodityValue, len(top))
	for i, d := range top {
		res.Commodities.Top10[i] = CommodityValue{
			Name:  CommodityName(d),
			Value: acc.commodities[d],
		}
	}

	all := head(descs, opts.TreemapSize)
	res.Commodities.All = make([]CommoditySize, len(all))
	for i, d := range all {
		res.Commodities.All[i] = CommoditySize{
			Name: CommodityName(d),
			Size: acc.commodities[d],
		}
	}
	return res
}

// flowTotals returns groups ordered by name.
func flowTotals(m map[string]*flowAcc) []FlowTotals {
	res := make([]FlowTotals, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		res = append(res, FlowTotals{
			Name:    name,
			Exports: m[name].exports,
			Imports: m[name].imports,
		})
	}
	return res
}

// rank sorts descending by value, equal values keep their order.
func rank[T any](items []T, val func(T) float64) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(val(b), val(a))
	})
}

func head[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func rawSample(rows []star.TradeRow, n int) []SampleRow {
	rows = head(rows, n)
	res := make([]SampleRow, len(rows))
	for i, v := range rows {
		res[i] = SampleRow{
			Year:      v.Year,
			Flow:      v.Flow,
			Partner:   v.Partner,
			Commodity: v.Commodity,
			Value:     v.Value.OrZero(),
		}
	}
	return res
}
