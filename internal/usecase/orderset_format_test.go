package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/Gunvolt24/marketplace_vendor/internal/usecase"
)

func TestFormatOrderSets_Empty(t *testing.T) {
	got := usecase.FormatOrderSets(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", got)
	}
}

func TestFormatOrderSets_SetWithoutOrders(t *testing.T) {
	got := usecase.FormatOrderSets([]map[string]any{{"id": "ordset-1"}})
	if len(got) != 1 {
		t.Fatalf("want 1 set, got %d", len(got))
	}
	set := got[0]
	if set.Orders == nil || len(set.Orders) != 0 {
		t.Fatalf("orders must be an empty slice, got %v", set.Orders)
	}
	if set.Total != 0 || set.ShippingTotal != 0 {
		t.Fatalf("aggregates must be zero: %+v", set)
	}
}

func TestFormatOrderSets_CoercesNumberShapes(t *testing.T) {
	// Read-слой может отдавать суммы в разных формах.
	got := usecase.FormatOrderSets([]map[string]any{{
		"id": "ordset-1",
		"orders": []any{
			map[string]any{"id": "o1", "total": float64(10.5)},
			map[string]any{"id": "o2", "total": json.Number("4.5")},
			map[string]any{"id": "o3", "total": "3"},
			map[string]any{"id": "o4", "total": int64(2)},
		},
	}})
	if got[0].Total != 20.5 {
		t.Fatalf("want total 20.5, got %v", got[0].Total)
	}
}

func TestFormatOrderSets_OrderScalarsAndExpansions(t *testing.T) {
	customer := map[string]any{"id": "cus-1", "email": "a@b.c"}
	items := []any{map[string]any{"id": "item-1", "quantity": float64(2)}}

	got := usecase.FormatOrderSets([]map[string]any{{
		"id":          "ordset-1",
		"customer_id": "cus-1",
		"customer":    customer,
		"orders": []any{map[string]any{
			"id":               "order-1",
			"email":            "a@b.c",
			"currency_code":    "usd",
			"sales_channel_id": "sc-1",
			"customer":         customer,
			"items":            items,
			"total":            float64(42),
			"tax_total":        float64(7),
		}},
	}})

	set := got[0]
	if set.CustomerID != "cus-1" || set.Customer["email"] != "a@b.c" {
		t.Fatalf("set customer not carried: %+v", set)
	}
	order := set.Orders[0]
	if order.CurrencyCode != "usd" || order.SalesChannelID != "sc-1" {
		t.Fatalf("order scalars lost: %+v", order)
	}
	if len(order.Items) != 1 || order.Items[0]["id"] != "item-1" {
		t.Fatalf("order items lost: %v", order.Items)
	}
	if order.Total != 42 || order.TaxTotal != 7 {
		t.Fatalf("order totals lost: %+v", order)
	}
}
