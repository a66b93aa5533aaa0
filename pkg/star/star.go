// Package star describes the trade star schema: its dimensions and facts,
// the raw records of the input feeds, and the small value types that move
// between them.
package star

// Dimension describes a dimension table. The first column is the natural
// key, the rest are attributes stored with the first sighting of the key.
type Dimension struct {
	// Name is a short label used in logs and anomaly counters.
	Name string

	// Table is the name of the dimension table.
	Table string

	// KeyColumn is the surrogate key generated by the database.
	KeyColumn string

	// Columns lists the natural key followed by attribute columns.
	Columns []string
}

// NaturalColumn returns the column that holds the natural key.
func (d Dimension) NaturalColumn() string {
	return d.Columns[0]
}

// Ref links a fact column to the dimension it references.
type Ref struct {
	Column string
	Dim    Dimension
}

// Fact describes a fact table. Rows are inserted with columns in the order
// returned by Columns.
type Fact struct {
	Name      string
	Table     string
	KeyColumn string
	Refs      []Ref
	Measures  []string
}

// Columns returns foreign key columns followed by measure columns.
func (f Fact) Columns() []string {
	res := make([]string, 0, len(f.Refs)+len(f.Measures))
	for _, v := range f.Refs {
		res = append(res, v.Column)
	}
	return append(res, f.Measures...)
}

// Dims returns referenced dimensions in column order.
func (f Fact) Dims() []Dimension {
	res := make([]Dimension, len(f.Refs))
	for i, v := range f.Refs {
		res[i] = v.Dim
	}
	return res
}

var (
	DateDim = Dimension{
		Name:      "date",
		Table:     "dim_date",
		KeyColumn: "date_key",
		Columns:   []string{"year_of_trade"},
	}

	CountryDim = Dimension{
		Name:      "country",
		Table:     "dim_country",
		KeyColumn: "partner_country_key",
		Columns: []string{
			"partner_country_name", "partner_country_iso", "partner_code",
		},
	}

	CommodityDim = Dimension{
		Name:      "commodity",
		Table:     "dim_commodity",
		KeyColumn: "commodity_key",
		Columns:   []string{"commodity_description"},
	}

	FlowDim = Dimension{
		Name:      "flow",
		Table:     "dim_flow",
		KeyColumn: "flow_key",
		Columns:   []string{"flow_description"},
	}

	IndicatorDim = Dimension{
		Name:      "indicator",
		Table:     "dim_indicator",
		KeyColumn: "indicator_key",
		Columns:   []string{"indicator_code", "indicator_name"},
	}
)

var (
	TradeFact = Fact{
		Name:      "trade",
		Table:     "fact_trade",
		KeyColumn: "trade_key",
		Refs: []Ref{
			{Column: "date_key_fk", Dim: DateDim},
			{Column: "partner_country_key_fk", Dim: CountryDim},
			{Column: "commodity_key_fk", Dim: CommodityDim},
			{Column: "flow_key_fk", Dim: FlowDim},
		},
		Measures: []string{"trade_value", "net_weight"},
	}

	EconomyFact = Fact{
		Name:      "economy",
		Table:     "fact_economy",
		KeyColumn: "economy_key",
		Refs: []Ref{
			{Column: "indicator_key_fk", Dim: IndicatorDim},
			{Column: "date_key_fk", Dim: DateDim},
		},
		Measures: []string{"indicator_value"},
	}
)

// Dimensions lists every dimension of the schema.
func Dimensions() []Dimension {
	return []Dimension{DateDim, CountryDim, CommodityDim, FlowDim, IndicatorDim}
}

// Facts lists every fact table of the schema.
func Facts() []Fact {
	return []Fact{TradeFact, EconomyFact}
}
