package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kriskaras/realtech-arv-v1/models"
	"github.com/kriskaras/realtech-arv-v1/utils"
)

type fakeReader struct {
	sales []*models.Sale
	err   error
	limit int
}

func (f *fakeReader) FetchRecent(limit int) ([]*models.Sale, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.sales, nil
}

func newTestServer(reader *fakeReader) *Server {
	return NewServer(reader, utils.NewLogger(), 200)
}

func TestSalesEndpoint(t *testing.T) {
	beds := 2
	reader := &fakeReader{sales: []*models.Sale{
		{
			Lat: 51.5, Lon: -0.12, SoldPriceGbp: 300000,
			SoldDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			PropertyType: "flat", Beds: &beds,
		},
	}}

	rec := httptest.NewRecorder()
	newTestServer(reader).Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/sales", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if reader.limit != 200 {
		t.Errorf("FetchRecent limit = %d; want 200", reader.limit)
	}

	var resp struct {
		Count int `json:"count"`
		Rows  []struct {
			SoldPriceGbp int      `json:"soldPriceGbp"`
			PropertyType string   `json:"propertyType"`
			Beds         *int     `json:"beds"`
			FloorAreaSqm *float64 `json:"floorAreaSqm"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Count != 1 || len(resp.Rows) != 1 {
		t.Fatalf("count = %d, rows = %d; want 1, 1", resp.Count, len(resp.Rows))
	}
	if resp.Rows[0].SoldPriceGbp != 300000 || resp.Rows[0].PropertyType != "flat" {
		t.Errorf("unexpected row: %+v", resp.Rows[0])
	}
	if resp.Rows[0].Beds == nil || *resp.Rows[0].Beds != 2 {
		t.Errorf("beds = %v; want 2", resp.Rows[0].Beds)
	}
	if resp.Rows[0].FloorAreaSqm != nil {
		t.Errorf("floorAreaSqm = %v; want null", *resp.Rows[0].FloorAreaSqm)
	}
}

func TestSalesEndpointEmptyStore(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&fakeReader{}).Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/sales", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var resp struct {
		Count int               `json:"count"`
		Rows  []json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Count != 0 || resp.Rows == nil {
		t.Errorf("want count 0 and rows [] (not null); got %s", rec.Body.String())
	}
}

func TestSalesEndpointStoreError(t *testing.T) {
	rec := httptest.NewRecorder()
	reader := &fakeReader{err: errors.New("connection refused")}
	newTestServer(reader).Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/sales", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
}

func TestEstimateEndpointDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&fakeReader{}).Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/estimate", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var resp models.EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Subject.ID != "demo" {
		t.Errorf("subject.id = %q; want demo", resp.Subject.ID)
	}
	if resp.Estimate.ArvGbp != 325000 || resp.Estimate.Confidence != "high" {
		t.Errorf("unexpected estimate: %+v", resp.Estimate)
	}
	if len(resp.Comps) != 2 {
		t.Fatalf("comps = %d; want 2", len(resp.Comps))
	}
	if resp.Comps[0].ID != "sale_1" || resp.Comps[0].Adjustments.SizeAdj != -0.02 {
		t.Errorf("unexpected first comp: %+v", resp.Comps[0])
	}
	if resp.Debug.CandidateCount != 61 || resp.Debug.SelectedCount != 2 {
		t.Errorf("unexpected debug block: %+v", resp.Debug)
	}
}

func TestEstimateEndpointEchoesSubjectID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/estimate?subject_id=prop_42", nil)
	newTestServer(&fakeReader{}).Handler().ServeHTTP(rec, req)

	var resp models.EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Subject.ID != "prop_42" {
		t.Errorf("subject.id = %q; want prop_42", resp.Subject.ID)
	}
}
