// Package schema provides table models of the trade star schema.
//
// Models carry two sets of tags: `gorm` tags drive AutoMigrate on
// PostgreSQL, `db` and `ddl` tags generate plain DDL for SQLite.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate SQLite DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// DimDate is the time dimension, one row per year.
type DimDate struct {
	DateKey int64 `gorm:"column:date_key;primaryKey;autoIncrement" db:"date_key" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	// YearOfTrade is the natural key.
	YearOfTrade int `gorm:"column:year_of_trade;not null;uniqueIndex" db:"year_of_trade" ddl:"INTEGER NOT NULL UNIQUE"`
}

// DimCountry is the partner country dimension.
type DimCountry struct {
	PartnerCountryKey int64 `gorm:"column:partner_country_key;primaryKey;autoIncrement" db:"partner_country_key" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	// PartnerCountryName is the natural key.
	PartnerCountryName string `gorm:"column:partner_country_name;type:varchar(255);not null;uniqueIndex" db:"partner_country_name" ddl:"TEXT NOT NULL UNIQUE"`

	// PartnerCountryISO is an ISO 3166 alpha-3 code, if provided.
	PartnerCountryISO sql.NullString `gorm:"column:partner_country_iso;type:varchar(10)" db:"partner_country_iso" ddl:"TEXT"`

	// PartnerCode is the numeric Comtrade code of the partner.
	PartnerCode sql.NullInt64 `gorm:"column:partner_code" db:"partner_code" ddl:"INTEGER"`
}

// DimCommodity is the traded commodity dimension.
type DimCommodity struct {
	CommodityKey int64 `gorm:"column:commodity_key;primaryKey;autoIncrement" db:"commodity_key" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	// CommodityDescription is the natural key, for example
	// "0901 - Coffee; not roasted".
	CommodityDescription string `gorm:"column:commodity_description;type:text;not null;uniqueIndex" db:"commodity_description" ddl:"TEXT NOT NULL UNIQUE"`
}

// DimFlow is the flow direction dimension (Export, Import, ...).
type DimFlow struct {
	FlowKey         int64  `gorm:"column:flow_key;primaryKey;autoIncrement" db:"flow_key" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`
	FlowDescription string `gorm:"column:flow_description;type:varchar(100);not null;uniqueIndex" db:"flow_description" ddl:"TEXT NOT NULL UNIQUE"`
}

// DimIndicator is the economic indicator dimension.
type DimIndicator struct {
	IndicatorKey int64 `gorm:"column:indicator_key;primaryKey;autoIncrement" db:"indicator_key" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	// IndicatorCode is the natural key, for example "NY.GDP.MKTP.CD".
	IndicatorCode string         `gorm:"column:indicator_code;type:varchar(100);not null;uniqueIndex" db:"indicator_code" ddl:"TEXT NOT NULL UNIQUE"`
	IndicatorName sql.NullString `gorm:"column:indicator_name;type:text" db:"indicator_name" ddl:"TEXT"`
}

// FactTrade is one traded commodity flow with a partner in a year.
type FactTrade struct {
	TradeKey int64 `gorm:"column:trade_key;primaryKey;autoIncrement" db:"trade_key" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	DateKeyFK int64   `gorm:"column:date_key_fk;not null;index" db:"date_key_fk" ddl:"INTEGER NOT NULL REFERENCES dim_date(date_key)"`
	Date      DimDate `gorm:"foreignKey:DateKeyFK;references:DateKey"`

	PartnerCountryKeyFK int64      `gorm:"column:partner_country_key_fk;not null;index" db:"partner_country_key_fk" ddl:"INTEGER NOT NULL REFERENCES dim_country(partner_country_key)"`
	Country             DimCountry `gorm:"foreignKey:PartnerCountryKeyFK;references:PartnerCountryKey"`

	CommodityKeyFK int64        `gorm:"column:commodity_key_fk;not null;index" db:"commodity_key_fk" ddl:"INTEGER NOT NULL REFERENCES dim_commodity(commodity_key)"`
	Commodity      DimCommodity `gorm:"foreignKey:CommodityKeyFK;references:CommodityKey"`

	FlowKeyFK int64   `gorm:"column:flow_key_fk;not null;index" db:"flow_key_fk" ddl:"INTEGER NOT NULL REFERENCES dim_flow(flow_key)"`
	Flow      DimFlow `gorm:"foreignKey:FlowKeyFK;references:FlowKey"`

	// TradeValue is the value of the flow in US dollars.
	TradeValue sql.NullFloat64 `gorm:"column:trade_value;type:numeric" db:"trade_value" ddl:"REAL"`

	// NetWeight is the weight of traded goods in kilograms.
	NetWeight sql.NullFloat64 `gorm:"column:net_weight;type:numeric" db:"net_weight" ddl:"REAL"`
}

// FactEconomy is the value of an indicator in a year.
type FactEconomy struct {
	EconomyKey int64 `gorm:"column:economy_key;primaryKey;autoIncrement" db:"economy_key" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	IndicatorKeyFK int64        `gorm:"column:indicator_key_fk;not null;index" db:"indicator_key_fk" ddl:"INTEGER NOT NULL REFERENCES dim_indicator(indicator_key)"`
	Indicator      DimIndicator `gorm:"foreignKey:IndicatorKeyFK;references:IndicatorKey"`

	DateKeyFK int64   `gorm:"column:date_key_fk;not null;index" db:"date_key_fk" ddl:"INTEGER NOT NULL REFERENCES dim_date(date_key)"`
	Date      DimDate `gorm:"foreignKey:DateKeyFK;references:DateKey"`

	IndicatorValue sql.NullFloat64 `gorm:"column:indicator_value;type:numeric" db:"indicator_value" ddl:"REAL"`
}

// EtlRun is the audit log of ETL task invocations.
type EtlRun struct {
	RunID         string    `gorm:"column:run_id;type:uuid;primaryKey" db:"run_id" ddl:"TEXT PRIMARY KEY"`
	Feed          string    `gorm:"column:feed;type:varchar(50);not null;index" db:"feed" ddl:"TEXT NOT NULL"`
	Fingerprint   string    `gorm:"column:fingerprint;type:varchar(36);not null" db:"fingerprint" ddl:"TEXT NOT NULL"`
	Status        string    `gorm:"column:status;type:varchar(20);not null" db:"status" ddl:"TEXT NOT NULL"`
	RowsRead      int       `gorm:"column:rows_read;not null;default:0" db:"rows_read" ddl:"INTEGER NOT NULL DEFAULT 0"`
	FactsInserted int64     `gorm:"column:facts_inserted;not null;default:0" db:"facts_inserted" ddl:"INTEGER NOT NULL DEFAULT 0"`
	FactsReplaced int64     `gorm:"column:facts_replaced;not null;default:0" db:"facts_replaced" ddl:"INTEGER NOT NULL DEFAULT 0"`
	Anomalies     string    `gorm:"column:anomalies;type:text;not null;default:'{}'" db:"anomalies" ddl:"TEXT NOT NULL DEFAULT '{}'"`
	Error         string    `gorm:"column:error;type:text;not null;default:''" db:"error" ddl:"TEXT NOT NULL DEFAULT ''"`
	StartedAt     time.Time `gorm:"column:started_at;not null" db:"started_at" ddl:"TEXT NOT NULL"`
	FinishedAt    time.Time `gorm:"column:finished_at;not null" db:"finished_at" ddl:"TEXT NOT NULL"`
}
