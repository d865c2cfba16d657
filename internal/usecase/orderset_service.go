package usecase

import (
	"context"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/metrics"
)

// Проверка, что OrderSetService удовлетворяет интерфейсу ports.OrderSetService.
var _ ports.OrderSetService = (*OrderSetService)(nil)

const orderSetEntity = "order_set"

// orderSetBaseFields — обязательный базовый набор полей списка order set'ов.
// Поля вызывающего дополняются этим набором и дедуплицируются,
// поэтому ответ всегда содержит базовую проекцию.
var orderSetBaseFields = []string{
	"id",
	"updated_at",
	"created_at",
	"display_id",
	"customer_id",
	"customer.*",
	"cart_id",
	"cart.*",
	"orders.id",
	"orders.currency_code",
	"orders.email",
	"orders.created_at",
	"orders.updated_at",
	"orders.completed_at",
	"orders.total",
	"orders.subtotal",
	"orders.tax_total",
	"orders.discount_total",
	"orders.discount_tax_total",
	"orders.original_total",
	"orders.original_tax_total",
	"orders.item_total",
	"orders.item_subtotal",
	"orders.item_tax_total",
	"orders.sales_channel_id",
	"orders.original_item_total",
	"orders.original_item_subtotal",
	"orders.original_item_tax_total",
	"orders.shipping_total",
	"orders.shipping_subtotal",
	"orders.shipping_tax_total",
	"orders.items.*",
	"orders.customer_id",
	"orders.customer.*",
}

// NormalizeOrderSetFields — поля вызывающего + базовый набор,
// дубликаты убираются с сохранением порядка первого вхождения.
func NormalizeOrderSetFields(fields []string) []string {
	merged := make([]string, 0, len(fields)+len(orderSetBaseFields))
	merged = append(merged, fields...)
	merged = append(merged, orderSetBaseFields...)
	return deduplicate(merged)
}

// deduplicate — убирает повторы, порядок первого вхождения сохраняется.
func deduplicate(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// OrderSetService — конвейер списка order set'ов:
// нормализация полей → графовый запрос → пост-форматирование.
type OrderSetService struct {
	query ports.GraphQuery
	log   ports.Logger
}

// NewOrderSetService — DI-конструктор.
func NewOrderSetService(query ports.GraphQuery, log ports.Logger) *OrderSetService {
	return &OrderSetService{query: query, log: log}
}

// ListFormatted — форматированный список order set'ов.
// variables (фильтры, пагинация, сортировка) передаются read-слою непрозрачно;
// его ошибки пробрасываются без изменений.
func (s *OrderSetService) ListFormatted(
	ctx context.Context,
	fields []string,
	variables map[string]any,
) ([]domain.FormattedOrderSet, error) {
	normalized := NormalizeOrderSetFields(fields)

	rows, err := s.query.Graph(ctx, ports.GraphConfig{
		Entity:    orderSetEntity,
		Fields:    normalized,
		Variables: variables,
	})
	if err != nil {
		metrics.GraphQueries.WithLabelValues(orderSetEntity, "failed").Inc()
		s.log.Errorf(ctx, "order_set graph query failed err=%v", err)
		return nil, err
	}
	metrics.GraphQueries.WithLabelValues(orderSetEntity, "ok").Inc()

	return FormatOrderSets(rows), nil
}
