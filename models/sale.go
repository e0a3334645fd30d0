package models

import "time"

// RawRow is a single CSV record keyed by header name. Column names are not
// standardized across source files, so the same logical field may appear
// under several historical names.
type RawRow map[string]string

// Sale is the canonical, validated sale record stored in PostgreSQL.
// Beds and FloorAreaSqm are nil when the source row had no usable value.
type Sale struct {
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	SoldPriceGbp int       `json:"soldPriceGbp"`
	SoldDate     time.Time `json:"soldDate"`
	PropertyType string    `json:"propertyType"`
	Beds         *int      `json:"beds"`
	FloorAreaSqm *float64  `json:"floorAreaSqm"`
}

// MarketSummary holds the computed statistics over the ingested sales,
// printed after a seed run.
type MarketSummary struct {
	TotalSales    int
	AveragePrice  float64
	MinPrice      int
	MaxPrice      int
	MostExpensive *Sale
	SalesByType   map[string]int
	EarliestSale  time.Time
	LatestSale    time.Time
}
