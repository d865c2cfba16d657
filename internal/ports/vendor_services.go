package ports

import (
	"context"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
)

// StockLocationService — операции вендорской поверхности над локациями.
// Записи возвращаются в форме read-слоя (map), чтобы проекция полей
// определялась запросом, а не фиксированной структурой.
type StockLocationService interface {
	CreateStockLocation(ctx context.Context, actorID string, input domain.CreateStockLocationInput, fields []string) (map[string]any, error)
	CreateFulfillmentSet(ctx context.Context, actorID, locationID string, input domain.CreateFulfillmentSetInput, fields []string) (map[string]any, error)
	ListStockLocations(ctx context.Context, actorID string, fields []string, filters map[string]any) ([]map[string]any, error)
}

// OrderSetService — форматированный список order set'ов.
type OrderSetService interface {
	ListFormatted(ctx context.Context, fields []string, variables map[string]any) ([]domain.FormattedOrderSet, error)
}
