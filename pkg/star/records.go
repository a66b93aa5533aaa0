package star

// TradeRecord is one row of a UN Comtrade extract.
type TradeRecord struct {
	Year           Number `json:"Year"`
	PartnerCountry string `json:"Partner_Country"`
	PartnerISO     string `json:"Partner_ISO"`
	PartnerCode    Number `json:"Partner_Code"`
	Commodity      string `json:"Traded_Commodities"`
	Flow           string `json:"Flow_Description"`
	TradeValue     Number `json:"Trade_Value"`
	NetWeight      Number `json:"WeightofTradedGoods"`
}

// EconomyRecord is one row of a World Bank indicator extract.
type EconomyRecord struct {
	Year           Number `json:"Year"`
	IndicatorCode  string `json:"Indicator_Code"`
	Description    string `json:"Description"`
	IndicatorValue Number `json:"Indicator_Value"`
}

// TradeRow is a trade fact joined with its dimensions, as read by the
// dashboard extraction.
type TradeRow struct {
	Year       int
	Flow       string
	Partner    string
	PartnerISO string
	Commodity  string
	Value      Number
	NetWeight  Number
}
