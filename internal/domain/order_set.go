package domain

// FormattedOrder — презентационное представление заказа внутри order set.
// Таймстемпы и вложенные объекты передаются как есть (их формат — зона
// ответственности read-слоя платформы).
type FormattedOrder struct {
	ID             string `json:"id"`
	Email          string `json:"email,omitempty"`
	CurrencyCode   string `json:"currency_code,omitempty"`
	SalesChannelID string `json:"sales_channel_id,omitempty"`
	CustomerID     string `json:"customer_id,omitempty"`
	CreatedAt      any    `json:"created_at,omitempty"`
	UpdatedAt      any    `json:"updated_at,omitempty"`
	CompletedAt    any    `json:"completed_at,omitempty"`

	Total            float64 `json:"total"`
	Subtotal         float64 `json:"subtotal"`
	TaxTotal         float64 `json:"tax_total"`
	DiscountTotal    float64 `json:"discount_total"`
	DiscountTaxTotal float64 `json:"discount_tax_total"`
	OriginalTotal    float64 `json:"original_total"`
	OriginalTaxTotal float64 `json:"original_tax_total"`
	ShippingTotal    float64 `json:"shipping_total"`
	ShippingSubtotal float64 `json:"shipping_subtotal"`
	ShippingTaxTotal float64 `json:"shipping_tax_total"`

	ItemTotal            float64 `json:"item_total"`
	ItemSubtotal         float64 `json:"item_subtotal"`
	ItemTaxTotal         float64 `json:"item_tax_total"`
	OriginalItemTotal    float64 `json:"original_item_total"`
	OriginalItemSubtotal float64 `json:"original_item_subtotal"`
	OriginalItemTaxTotal float64 `json:"original_item_tax_total"`

	Customer map[string]any   `json:"customer,omitempty"`
	Items    []map[string]any `json:"items,omitempty"`
}

// FormattedOrderSet — презентационное представление order set:
// скаляры набора, заказы и агрегированные суммы по заказам.
type FormattedOrderSet struct {
	ID         string `json:"id"`
	DisplayID  any    `json:"display_id,omitempty"`
	CreatedAt  any    `json:"created_at,omitempty"`
	UpdatedAt  any    `json:"updated_at,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	CartID     string `json:"cart_id,omitempty"`

	Customer map[string]any `json:"customer,omitempty"`
	Cart     map[string]any `json:"cart,omitempty"`

	Orders []FormattedOrder `json:"orders"`

	Total         float64 `json:"total"`
	Subtotal      float64 `json:"subtotal"`
	TaxTotal      float64 `json:"tax_total"`
	ShippingTotal float64 `json:"shipping_total"`
}
