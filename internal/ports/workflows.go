package ports

import (
	"context"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
)

// PlatformWorkflows — воркфлоу ядра платформы, потребляются по контракту.
type PlatformWorkflows interface {
	// CreateStockLocations — создаёт локации, возвращает их с присвоенными id.
	CreateStockLocations(ctx context.Context, inputs []domain.CreateStockLocationInput) ([]domain.StockLocation, error)

	// CreateLocationFulfillmentSet — создаёт fulfillment set для локации.
	CreateLocationFulfillmentSet(ctx context.Context, input domain.CreateLocationFulfillmentSetInput) (domain.FulfillmentSet, error)
}
