package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/egytrade/tradedb/pkg/config"
)

// TradeJSON is a small Comtrade extract with two years, three partners
// and both flow directions. Values are sent both as numbers and strings.
const TradeJSON = `[
  {"Year": 2022, "Partner_Country": "Egypt", "Partner_ISO": "EGY",
   "Partner_Code": 818, "Traded_Commodities": "0901 - Coffee; not roasted",
   "Flow_Description": "Export", "Trade_Value": 100,
   "WeightofTradedGoods": 10},
  {"Year": 2022, "Partner_Country": "Egypt", "Partner_ISO": "EGY",
   "Partner_Code": 818, "Traded_Commodities": "0901 - Coffee; not roasted",
   "Flow_Description": "Import", "Trade_Value": "40",
   "WeightofTradedGoods": null},
  {"Year": "2023", "Partner_Country": "Italy", "Partner_ISO": "ITA",
   "Partner_Code": 380, "Traded_Commodities": "1001 - Wheat and meslin",
   "Flow_Description": "Export", "Trade_Value": 60,
   "WeightofTradedGoods": 5.5}
]`

// TradeJSON2 adds a partner in a second file.
const TradeJSON2 = `[
  {"Year": 2023, "Partner_Country": "China", "Partner_ISO": "CHN",
   "Partner_Code": 156, "Traded_Commodities": "1001 - Wheat and meslin",
   "Flow_Description": "Import", "Trade_Value": 25.5,
   "WeightofTradedGoods": 3}
]`

// TradeJSONBad has an empty partner, an unparsable value and an
// invalid year.
const TradeJSONBad = `[
  {"Year": 2022, "Partner_Country": "", "Partner_ISO": "",
   "Partner_Code": null, "Traded_Commodities": "0901 - Coffee; not roasted",
   "Flow_Description": "Export", "Trade_Value": 1,
   "WeightofTradedGoods": 1},
  {"Year": 2022, "Partner_Country": "Jordan", "Partner_ISO": "JOR",
   "Partner_Code": 400, "Traded_Commodities": "0901 - Coffee; not roasted",
   "Flow_Description": "Export", "Trade_Value": "n/a",
   "WeightofTradedGoods": 2},
  {"Year": "unknown", "Partner_Country": "Jordan", "Partner_ISO": "JOR",
   "Partner_Code": 400, "Traded_Commodities": "0901 - Coffee; not roasted",
   "Flow_Description": "Import", "Trade_Value": 3,
   "WeightofTradedGoods": 3}
]`

// EconomyJSON is a small World Bank extract.
const EconomyJSON = `[
  {"Year": 2022, "Indicator_Code": "NY.GDP.MKTP.CD",
   "Description": "GDP (current US$)", "Indicator_Value": 4.77e11},
  {"Year": 2023, "Indicator_Code": "NY.GDP.MKTP.CD",
   "Description": "GDP (current US$)", "Indicator_Value": "3.96e11"},
  {"Year": 2023, "Indicator_Code": "FP.CPI.TOTL.ZG",
   "Description": "Inflation, consumer prices (annual %)",
   "Indicator_Value": ".."}
]`

// WriteInput writes a file into the input directory of the config.
func WriteInput(t *testing.T, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Load.InputDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
