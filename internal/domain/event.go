package domain

import "time"

// Имена событий, публикуемых после успешного create+link.
const (
	EventStockLocationCreated  = "stock_location.created"
	EventFulfillmentSetCreated = "fulfillment_set.created"
)

// VendorEvent — событие о созданной и привязанной к продавцу сущности.
type VendorEvent struct {
	Name       string     `json:"name"`
	SellerID   string     `json:"seller_id"`
	Module     ModuleName `json:"module"`
	EntityID   string     `json:"entity_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}
