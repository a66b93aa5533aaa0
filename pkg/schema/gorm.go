package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Dimensions come before the facts that reference them.
func AllModels() []any {
	return []any{
		&DimDate{},
		&DimCountry{},
		&DimCommodity{},
		&DimFlow{},
		&DimIndicator{},
		&FactTrade{},
		&FactEconomy{},
		&EtlRun{},
	}
}

// DDLModels returns all schema models in creation order for engines that
// are created from plain DDL.
func DDLModels() []DDLGenerator {
	return []DDLGenerator{
		DimDate{},
		DimCountry{},
		DimCommodity{},
		DimFlow{},
		DimIndicator{},
		FactTrade{},
		FactEconomy{},
		EtlRun{},
	}
}

// TableNames returns names of all tables, referencing tables first, so
// they can be dropped in order.
func TableNames() []string {
	models := DDLModels()
	res := make([]string, len(models))
	for i, v := range models {
		res[len(models)-1-i] = v.TableName()
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
