package api

import (
	"encoding/json"
	"net/http"

	"github.com/kriskaras/realtech-arv-v1/models"
)

type salesResponse struct {
	Count int            `json:"count"`
	Rows  []*models.Sale `json:"rows"`
}

// handleSales lists the most recent sales, newest first.
func (s *Server) handleSales(w http.ResponseWriter, r *http.Request) {
	sales, err := s.store.FetchRecent(s.salesLimit)
	if err != nil {
		s.logger.Error("[api] Fetch recent sales failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch sales"})
		return
	}
	if sales == nil {
		sales = []*models.Sale{}
	}

	writeJSON(w, http.StatusOK, salesResponse{Count: len(sales), Rows: sales})
}

// handleEstimate returns the canned demo estimate. There is no comp
// selection or scoring behind it; the payload is fixed apart from the
// echoed subject id.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	subjectID := r.URL.Query().Get("subject_id")
	if subjectID == "" {
		subjectID = "demo"
	}

	writeJSON(w, http.StatusOK, demoEstimate(subjectID))
}

func demoEstimate(subjectID string) models.EstimateResponse {
	return models.EstimateResponse{
		Subject: models.Subject{
			ID:           subjectID,
			Lat:          51.5074,
			Lon:          -0.1278,
			PropertyType: "semi_detached",
			Beds:         3,
			FloorAreaSqm: 90,
		},
		Estimate: models.Estimate{
			ArvGbp:       325000,
			RangeLowGbp:  305000,
			RangeHighGbp: 345000,
			Confidence:   "high",
		},
		Comps: []models.Comp{
			{
				ID:              "sale_1",
				SoldPriceGbp:    330000,
				SoldDate:        "2024-11-02",
				DistanceM:       420,
				FloorAreaSqm:    92,
				PricePerSqm:     3587,
				SimilarityScore: 0.83,
				Adjustments:     models.CompAdjustments{SizeAdj: -0.02, TimeAdj: 0.01},
			},
			{
				ID:              "sale_2",
				SoldPriceGbp:    318000,
				SoldDate:        "2024-08-18",
				DistanceM:       610,
				FloorAreaSqm:    88,
				PricePerSqm:     3614,
				SimilarityScore: 0.78,
				Adjustments:     models.CompAdjustments{SizeAdj: 0.01, TimeAdj: 0.0},
			},
		},
		Explanations: models.Explanations{
			ChosenBecause: []string{
				"Closest recent sales with similar size and same property type.",
				"No extreme outliers on price per sqm.",
			},
			ExcludedBecause: []string{
				"Older than 24 months.",
				"Different property type or size mismatch.",
			},
			RiskFlags: []string{
				"Floor area missing reduces confidence (not in this demo).",
			},
			WhatMovesValue: []string{
				"Renovation condition", "street premium", "extension potential",
			},
		},
		Debug: models.EstimateDebug{CandidateCount: 61, SelectedCount: 2},
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
