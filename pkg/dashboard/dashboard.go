// Package dashboard aggregates joined trade facts into the precomputed
// document consumed by the dashboard front end. The package is pure, it
// does not read the database or write files.
package dashboard

// Flow descriptions that feed export and import pivots.
const (
	FlowExport = "Export"
	FlowImport = "Import"
)

// Dashboard is the precomputed document.
type Dashboard struct {
	// Trends holds yearly totals in ascending year order.
	Trends []Trend `json:"trends"`

	// YearlyData holds breakdowns keyed by year.
	YearlyData map[int]YearData `json:"yearly_data"`

	// RawSample is the head of joined trade rows in insertion order.
	RawSample []SampleRow `json:"raw_sample"`
}

// Trend is the total of exports and imports of a year.
type Trend struct {
	Year    int     `json:"year"`
	Exports float64 `json:"exports"`
	Imports float64 `json:"imports"`
}

// YearData contains all breakdowns of one year.
type YearData struct {
	KPI         KPI          `json:"kpi"`
	Partners    []FlowTotals `json:"partners"`
	Commodities Commodities  `json:"commodities"`
	Regions     []FlowTotals `json:"regions"`
}

// KPI are headline numbers of a year. Net is Exports - Imports.
type KPI struct {
	Exports float64 `json:"exports"`
	Imports float64 `json:"imports"`
	Net     float64 `json:"net"`
}

// FlowTotals splits the trade with a partner or a region by direction.
type FlowTotals struct {
	Name    string  `json:"name"`
	Exports float64 `json:"exports"`
	Imports float64 `json:"imports"`
}

// Commodities contains the commodity ranking and the treemap list.
type Commodities struct {
	Top10 []CommodityValue `json:"top10"`
	All   []CommoditySize  `json:"all"`
}

// CommodityValue is an entry of the commodity ranking.
type CommodityValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CommoditySize is an entry of the commodity treemap.
type CommoditySize struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

// SampleRow is a joined trade row as shown in the raw data table.
type SampleRow struct {
	Year      int     `json:"Year"`
	Flow      string  `json:"Flow"`
	Partner   string  `json:"Partner"`
	Commodity string  `json:"Commodity"`
	Value     float64 `json:"Value"`
}

// Options limit sizes of rankings and of the raw sample.
type Options struct {
	SampleSize     int
	TopPartners    int
	TopCommodities int
	TreemapSize    int
}

// DefaultOptions returns the sizes the front end expects.
func DefaultOptions() Options {
	return Options{
		SampleSize:     500,
		TopPartners:    10,
		TopCommodities: 10,
		TreemapSize:    30,
	}
}
