package models

// The estimate payload mirrors the demo API contract: a subject property,
// a headline ARV range, the comparable sales used, and narrative
// explanations. Field names follow the wire format (snake_case).

type Subject struct {
	ID           string  `json:"id"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	PropertyType string  `json:"property_type"`
	Beds         int     `json:"beds"`
	FloorAreaSqm float64 `json:"floor_area_sqm"`
}

type Estimate struct {
	ArvGbp       int    `json:"arv_gbp"`
	RangeLowGbp  int    `json:"range_low_gbp"`
	RangeHighGbp int    `json:"range_high_gbp"`
	Confidence   string `json:"confidence"`
}

type CompAdjustments struct {
	SizeAdj float64 `json:"size_adj"`
	TimeAdj float64 `json:"time_adj"`
}

type Comp struct {
	ID              string          `json:"id"`
	SoldPriceGbp    int             `json:"sold_price_gbp"`
	SoldDate        string          `json:"sold_date"`
	DistanceM       int             `json:"distance_m"`
	FloorAreaSqm    float64         `json:"floor_area_sqm"`
	PricePerSqm     int             `json:"price_per_sqm"`
	SimilarityScore float64         `json:"similarity_score"`
	Adjustments     CompAdjustments `json:"adjustments"`
}

type Explanations struct {
	ChosenBecause   []string `json:"chosen_because"`
	ExcludedBecause []string `json:"excluded_because"`
	RiskFlags       []string `json:"risk_flags"`
	WhatMovesValue  []string `json:"what_moves_value"`
}

type EstimateDebug struct {
	CandidateCount int `json:"candidate_count"`
	SelectedCount  int `json:"selected_count"`
}

type EstimateResponse struct {
	Subject      Subject       `json:"subject"`
	Estimate     Estimate      `json:"estimate"`
	Comps        []Comp        `json:"comps"`
	Explanations Explanations  `json:"explanations"`
	Debug        EstimateDebug `json:"debug"`
}
