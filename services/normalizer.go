package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kriskaras/realtech-arv-v1/models"
	"github.com/kriskaras/realtech-arv-v1/utils"
)

// Historical exports name the same logical field differently; each list is
// tried in order and the first non-blank value wins.
var (
	latAliases       = []string{"uprn_lat", "lat_rooftop", "lat_postcode"}
	lonAliases       = []string{"uprn_lon", "lon_rooftop", "lon_postcode"}
	priceAliases     = []string{"price", "sold_price_gbp", "soldPriceGbp"}
	dateAliases      = []string{"transfer_date", "sold_date", "soldDate", "date"}
	typeAliases      = []string{"property_type", "propertyType"}
	bedsAliases      = []string{"beds", "bedrooms"}
	floorAreaAliases = []string{"epc_floor_area_m2_from_epc", "floorAreaSqm", "floor_area_sqm"}
)

// dateLayouts are the sold-date formats seen across source CSVs.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalizer transforms RawRows into canonical, validated Sales.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize processes raw rows and returns the canonical sales. Rows
// missing a usable latitude, longitude, price, or sold date are excluded;
// exclusion is expected source noise, not an error.
func (n *Normalizer) Normalize(rows []models.RawRow) []*models.Sale {
	result := make([]*models.Sale, 0, len(rows))

	for _, row := range rows {
		sale, ok := n.normalizeRow(row)
		if !ok {
			continue
		}
		result = append(result, sale)
	}

	n.logger.Info("[normalizer] %d canonical sales ready", len(result))
	return result
}

func (n *Normalizer) normalizeRow(row models.RawRow) (*models.Sale, bool) {
	lat, latOK := toFloat(pickField(row, latAliases))
	lon, lonOK := toFloat(pickField(row, lonAliases))
	price, priceOK := toInt(pickField(row, priceAliases))
	soldDate, dateOK := parseDate(pickField(row, dateAliases))

	if !latOK || !lonOK || !priceOK || !dateOK {
		return nil, false
	}

	propertyType := strings.TrimSpace(pickField(row, typeAliases))
	if propertyType == "" {
		propertyType = "Unknown"
	}

	sale := &models.Sale{
		Lat:          lat,
		Lon:          lon,
		SoldPriceGbp: price,
		SoldDate:     soldDate,
		PropertyType: propertyType,
	}

	if beds, ok := toInt(pickField(row, bedsAliases)); ok {
		sale.Beds = &beds
	}
	if area, ok := toFloat(pickField(row, floorAreaAliases)); ok {
		sale.FloorAreaSqm = &area
	}

	return sale, true
}

// pickField returns the first candidate column whose trimmed value is
// non-empty, or "" when none match.
func pickField(row models.RawRow, names []string) string {
	for _, name := range names {
		if val, ok := row[name]; ok && strings.TrimSpace(val) != "" {
			return val
		}
	}
	return ""
}

// toFloat parses a decimal value. It never fails: a blank, unparseable,
// or non-finite input reads as absent.
func toFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt parses a decimal value truncated toward zero. Total like toFloat.
func toInt(raw string) (int, bool) {
	f, ok := toFloat(raw)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// parseDate tries each known layout in turn.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
