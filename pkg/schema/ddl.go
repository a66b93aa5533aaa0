package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

func (d DimDate) TableDDL() string   { return generateDDL(d, d.TableName()) }
func (d DimDate) IndexDDL() []string { return []string{} }
func (d DimDate) TableName() string  { return "dim_date" }

func (d DimCountry) TableDDL() string   { return generateDDL(d, d.TableName()) }
func (d DimCountry) IndexDDL() []string { return []string{} }
func (d DimCountry) TableName() string  { return "dim_country" }

func (d DimCommodity) TableDDL() string   { return generateDDL(d, d.TableName()) }
func (d DimCommodity) IndexDDL() []string { return []string{} }
func (d DimCommodity) TableName() string  { return "dim_commodity" }

func (d DimFlow) TableDDL() string   { return generateDDL(d, d.TableName()) }
func (d DimFlow) IndexDDL() []string { return []string{} }
func (d DimFlow) TableName() string  { return "dim_flow" }

func (d DimIndicator) TableDDL() string   { return generateDDL(d, d.TableName()) }
func (d DimIndicator) IndexDDL() []string { return []string{} }
func (d DimIndicator) TableName() string  { return "dim_indicator" }

// FactTrade DDL methods
func (f FactTrade) TableDDL() string {
	return generateDDL(f, f.TableName())
}

func (f FactTrade) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_fact_trade_date ON fact_trade(date_key_fk);",
		"CREATE INDEX IF NOT EXISTS idx_fact_trade_country ON fact_trade(partner_country_key_fk);",
		"CREATE INDEX IF NOT EXISTS idx_fact_trade_commodity ON fact_trade(commodity_key_fk);",
		"CREATE INDEX IF NOT EXISTS idx_fact_trade_flow ON fact_trade(flow_key_fk);",
	}
}

func (f FactTrade) TableName() string {
	return "fact_trade"
}

// FactEconomy DDL methods
func (f FactEconomy) TableDDL() string {
	return generateDDL(f, f.TableName())
}

func (f FactEconomy) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_fact_economy_indicator ON fact_economy(indicator_key_fk);",
		"CREATE INDEX IF NOT EXISTS idx_fact_economy_date ON fact_economy(date_key_fk);",
	}
}

func (f FactEconomy) TableName() string {
	return "fact_economy"
}

// EtlRun DDL methods
func (r EtlRun) TableDDL() string {
	return generateDDL(r, r.TableName())
}

func (r EtlRun) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_etl_runs_feed ON etl_runs(feed, finished_at);",
	}
}

func (r EtlRun) TableName() string {
	return "etl_runs"
}
