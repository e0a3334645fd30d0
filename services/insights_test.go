package services

import (
	"testing"
	"time"

	"github.com/kriskaras/realtech-arv-v1/models"
	"github.com/kriskaras/realtech-arv-v1/utils"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func sampleSales() []*models.Sale {
	return []*models.Sale{
		{Lat: 51.5, Lon: -0.12, SoldPriceGbp: 200000, SoldDate: day("2024-03-01"), PropertyType: "flat"},
		{Lat: 51.5, Lon: -0.12, SoldPriceGbp: 350000, SoldDate: day("2023-11-20"), PropertyType: "terraced"},
		{Lat: 51.5, Lon: -0.12, SoldPriceGbp: 500000, SoldDate: day("2024-06-15"), PropertyType: "semi_detached"},
		{Lat: 51.5, Lon: -0.12, SoldPriceGbp: 150000, SoldDate: day("2023-08-02"), PropertyType: "flat"},
	}
}

func TestSummaryCounts(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleSales())
	if r.TotalSales != 4 {
		t.Errorf("TotalSales: got %d, want 4", r.TotalSales)
	}
	if r.SalesByType["flat"] != 2 {
		t.Errorf("SalesByType[flat]: got %d, want 2", r.SalesByType["flat"])
	}
}

func TestSummaryPrices(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleSales())
	if r.AveragePrice != 300000 {
		t.Errorf("AveragePrice: got %.2f, want 300000", r.AveragePrice)
	}
	if r.MinPrice != 150000 {
		t.Errorf("MinPrice: got %d, want 150000", r.MinPrice)
	}
	if r.MaxPrice != 500000 {
		t.Errorf("MaxPrice: got %d, want 500000", r.MaxPrice)
	}
	if r.MostExpensive == nil || r.MostExpensive.PropertyType != "semi_detached" {
		t.Errorf("MostExpensive: got %+v, want the semi_detached sale", r.MostExpensive)
	}
}

func TestSummaryDateRange(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleSales())
	if got := r.EarliestSale.Format("2006-01-02"); got != "2023-08-02" {
		t.Errorf("EarliestSale: got %s, want 2023-08-02", got)
	}
	if got := r.LatestSale.Format("2006-01-02"); got != "2024-06-15" {
		t.Errorf("LatestSale: got %s, want 2024-06-15", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{300000, 300000},
		{0.125, 0.13},
		{-0.125, -0.13},
		{167.504, 167.5},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestSummaryEmptyInput(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(nil)
	if r.TotalSales != 0 {
		t.Errorf("TotalSales: got %d, want 0", r.TotalSales)
	}
	if len(r.SalesByType) != 0 {
		t.Errorf("SalesByType should be empty, got %v", r.SalesByType)
	}
}
