package usecase

import (
	"encoding/json"
	"strconv"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
)

// FormatOrderSets — детерминированное пост-форматирование строк read-слоя
// в презентационную форму: скаляры набора, заказы и агрегаты по заказам.
// Порядок строк и заказов сохраняется как в ответе read-слоя
// (сортировка — зона ответственности variables запроса).
func FormatOrderSets(rows []map[string]any) []domain.FormattedOrderSet {
	out := make([]domain.FormattedOrderSet, 0, len(rows))
	for _, row := range rows {
		set := domain.FormattedOrderSet{
			ID:         asString(row["id"]),
			DisplayID:  row["display_id"],
			CreatedAt:  row["created_at"],
			UpdatedAt:  row["updated_at"],
			CustomerID: asString(row["customer_id"]),
			CartID:     asString(row["cart_id"]),
			Customer:   asMap(row["customer"]),
			Cart:       asMap(row["cart"]),
			Orders:     make([]domain.FormattedOrder, 0),
		}

		for _, o := range asMapSlice(row["orders"]) {
			order := formatOrder(o)
			set.Orders = append(set.Orders, order)

			set.Total += order.Total
			set.Subtotal += order.Subtotal
			set.TaxTotal += order.TaxTotal
			set.ShippingTotal += order.ShippingTotal
		}

		out = append(out, set)
	}
	return out
}

func formatOrder(o map[string]any) domain.FormattedOrder {
	return domain.FormattedOrder{
		ID:             asString(o["id"]),
		Email:          asString(o["email"]),
		CurrencyCode:   asString(o["currency_code"]),
		SalesChannelID: asString(o["sales_channel_id"]),
		CustomerID:     asString(o["customer_id"]),
		CreatedAt:      o["created_at"],
		UpdatedAt:      o["updated_at"],
		CompletedAt:    o["completed_at"],

		Total:            asNumber(o["total"]),
		Subtotal:         asNumber(o["subtotal"]),
		TaxTotal:         asNumber(o["tax_total"]),
		DiscountTotal:    asNumber(o["discount_total"]),
		DiscountTaxTotal: asNumber(o["discount_tax_total"]),
		OriginalTotal:    asNumber(o["original_total"]),
		OriginalTaxTotal: asNumber(o["original_tax_total"]),
		ShippingTotal:    asNumber(o["shipping_total"]),
		ShippingSubtotal: asNumber(o["shipping_subtotal"]),
		ShippingTaxTotal: asNumber(o["shipping_tax_total"]),

		ItemTotal:            asNumber(o["item_total"]),
		ItemSubtotal:         asNumber(o["item_subtotal"]),
		ItemTaxTotal:         asNumber(o["item_tax_total"]),
		OriginalItemTotal:    asNumber(o["original_item_total"]),
		OriginalItemSubtotal: asNumber(o["original_item_subtotal"]),
		OriginalItemTaxTotal: asNumber(o["original_item_tax_total"]),

		Customer: asMap(o["customer"]),
		Items:    asMapSlice(o["items"]),
	}
}

// ------ приведение значений read-слоя ------

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asMapSlice(v any) []map[string]any {
	switch vv := v.(type) {
	case []map[string]any:
		return vv
	case []any:
		out := make([]map[string]any, 0, len(vv))
		for _, item := range vv {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// asNumber — денежные суммы приходят как float64 (JSON), но read-слой
// может отдавать и json.Number, и строку.
func asNumber(v any) float64 {
	switch vv := v.(type) {
	case float64:
		return vv
	case float32:
		return float64(vv)
	case int:
		return float64(vv)
	case int64:
		return float64(vv)
	case json.Number:
		f, _ := vv.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(vv, 64)
		return f
	default:
		return 0
	}
}
