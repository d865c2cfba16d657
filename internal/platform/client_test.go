package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Token: "svc-token"})
}

func TestCreateStockLocations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workflows/stock-locations" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer svc-token" {
			t.Fatalf("missing bearer token, got %q", got)
		}

		var body struct {
			Locations []domain.CreateStockLocationInput `json:"locations"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body.Locations) != 1 || body.Locations[0].Name != "Warehouse A" {
			t.Fatalf("unexpected request body: %+v", body)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{{"id": "loc-1", "name": "Warehouse A"}},
		})
	})

	got, err := c.CreateStockLocations(context.Background(),
		[]domain.CreateStockLocationInput{{Name: "Warehouse A"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "loc-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCreateLocationFulfillmentSet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workflows/location-fulfillment-sets" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body domain.CreateLocationFulfillmentSetInput
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.LocationID != "loc-1" || body.FulfillmentSetData.Type != "pickup" {
			t.Fatalf("unexpected request body: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"id": "fset-1", "name": "Pickup", "type": "pickup"},
		})
	})

	got, err := c.CreateLocationFulfillmentSet(context.Background(), domain.CreateLocationFulfillmentSetInput{
		LocationID:         "loc-1",
		FulfillmentSetData: domain.CreateFulfillmentSetInput{Name: "Pickup", Type: "pickup"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "fset-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGraph_SendsConfigAndDecodesData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graph" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["entity"] != "stock_location" {
			t.Fatalf("unexpected entity: %v", body["entity"])
		}
		if body["throw_if_key_not_found"] != true {
			t.Fatalf("throw_if_key_not_found not passed: %v", body)
		}
		filters, _ := body["filters"].(map[string]any)
		if filters["seller.id"] != "sel-1" {
			t.Fatalf("filters not passed: %v", body["filters"])
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"seller": map[string]any{"id": "sel-1"}}},
		})
	})

	rows, err := c.Graph(context.Background(), ports.GraphConfig{
		Entity:             "stock_location",
		Fields:             []string{"seller.id"},
		Filters:            map[string]any{"seller.id": "sel-1", "id": "loc-1"},
		ThrowIfKeyNotFound: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   apperr.Kind
	}{
		{http.StatusBadRequest, apperr.KindBadRequest},
		{http.StatusUnauthorized, apperr.KindUnauthenticated},
		{http.StatusForbidden, apperr.KindForbidden},
		{http.StatusNotFound, apperr.KindNotFound},
		{http.StatusConflict, apperr.KindConflict},
		{http.StatusServiceUnavailable, apperr.KindUnavailable},
		{http.StatusInternalServerError, apperr.KindInternal},
	}

	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "boom"})
		})
		_, err := c.Graph(context.Background(), ports.GraphConfig{Entity: "stock_location", Fields: []string{"id"}})
		if !apperr.IsKind(err, tc.kind) {
			t.Fatalf("status %d: want kind %v, got %v", tc.status, tc.kind, err)
		}
	}
}

func TestUnreachablePlatform_Unavailable(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Graph(context.Background(), ports.GraphConfig{Entity: "stock_location", Fields: []string{"id"}})
	if !apperr.IsKind(err, apperr.KindUnavailable) {
		t.Fatalf("want Unavailable for connection error, got %v", err)
	}
}
