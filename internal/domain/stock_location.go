package domain

// StockLocation — локация склада, принадлежит доменному модулю платформы.
// Здесь храним только то, что нужно поверхности вендора.
type StockLocation struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Address  *StockLocationAddress `json:"address,omitempty"`
	Metadata map[string]any        `json:"metadata,omitempty"`
}

// StockLocationAddress — адрес локации (подмножество полей платформы).
type StockLocationAddress struct {
	Address1    string `json:"address_1,omitempty"`
	Address2    string `json:"address_2,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Province    string `json:"province,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// CreateStockLocationInput — входные данные воркфлоу создания локации.
type CreateStockLocationInput struct {
	Name     string                `json:"name"`
	Address  *StockLocationAddress `json:"address,omitempty"`
	Metadata map[string]any        `json:"metadata,omitempty"`
}
