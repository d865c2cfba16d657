package domain

// FulfillmentSet — именованная группа способов выдачи для локации
// (shipping, pickup и т.д.). Принадлежит ровно одной локации.
type FulfillmentSet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CreateFulfillmentSetInput — данные нового fulfillment set.
type CreateFulfillmentSetInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CreateLocationFulfillmentSetInput — вход воркфлоу привязки
// fulfillment set к локации склада.
type CreateLocationFulfillmentSetInput struct {
	LocationID         string                    `json:"location_id"`
	FulfillmentSetData CreateFulfillmentSetInput `json:"fulfillment_set_data"`
}
