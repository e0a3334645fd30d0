package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/kriskaras/realtech-arv-v1/models"
	"github.com/kriskaras/realtech-arv-v1/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(sales []*models.Sale) *models.MarketSummary {
	summary := &models.MarketSummary{
		SalesByType: make(map[string]int),
	}

	if len(sales) == 0 {
		return summary
	}

	summary.TotalSales = len(sales)
	summary.MinPrice = sales[0].SoldPriceGbp
	summary.MaxPrice = sales[0].SoldPriceGbp
	summary.EarliestSale = sales[0].SoldDate
	summary.LatestSale = sales[0].SoldDate

	var total int
	for _, sale := range sales {
		total += sale.SoldPriceGbp
		if sale.SoldPriceGbp < summary.MinPrice {
			summary.MinPrice = sale.SoldPriceGbp
		}
		if sale.SoldPriceGbp > summary.MaxPrice {
			summary.MaxPrice = sale.SoldPriceGbp
			summary.MostExpensive = sale
		}
		if sale.SoldDate.Before(summary.EarliestSale) {
			summary.EarliestSale = sale.SoldDate
		}
		if sale.SoldDate.After(summary.LatestSale) {
			summary.LatestSale = sale.SoldDate
		}
		summary.SalesByType[sale.PropertyType]++
	}

	if summary.MostExpensive == nil {
		summary.MostExpensive = sales[0]
	}
	summary.AveragePrice = round2(float64(total) / float64(len(sales)))

	return summary
}

func (s *InsightService) Print(r *models.MarketSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 SALES MARKET SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Sales ingested : \033[1m%d\033[0m\n", r.TotalSales)
	if r.TotalSales > 0 {
		fmt.Printf("  Date range     : %s → %s\n",
			r.EarliestSale.Format("2006-01-02"), r.LatestSale.Format("2006-01-02"))
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Sold Prices (GBP)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.TotalSales > 0 {
		fmt.Printf("  Average : \033[1;32m£%.2f\033[0m\n", r.AveragePrice)
		fmt.Printf("  Minimum : \033[1;32m£%d\033[0m\n", r.MinPrice)
		fmt.Printf("  Maximum : \033[1;32m£%d\033[0m\n", r.MaxPrice)
	} else {
		fmt.Printf("  No price data available\n")
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Sales by Property Type\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.SalesByType) == 0 {
		fmt.Printf("  No property type data\n")
	} else {
		type typeCount struct {
			propType string
			count    int
		}
		var types []typeCount
		for propType, cnt := range r.SalesByType {
			types = append(types, typeCount{propType, cnt})
		}
		sort.Slice(types, func(i, j int) bool {
			if types[i].count != types[j].count {
				return types[i].count > types[j].count
			}
			return types[i].propType < types[j].propType
		})
		for _, tc := range types {
			fmt.Printf("  %-24s \033[1m%d\033[0m\n", tc.propType, tc.count)
		}
	}
	fmt.Println()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
