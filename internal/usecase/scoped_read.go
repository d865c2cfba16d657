package usecase

import (
	"context"
	"strings"

	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
	"github.com/Gunvolt24/marketplace_vendor/pkg/metrics"
)

// ScopedReader — чтение сущностей через связь владения.
// Каждый запрошенный путь f переписывается в seller.f, чтобы запрос шёл
// через связь «продавец — сущность»; область владения задаётся фильтром
// seller.id. После запроса строка разворачивается: наружу отдаётся
// вложенный член с именем сущности, обёртка продавца отбрасывается.
type ScopedReader struct {
	query ports.GraphQuery
}

// NewScopedReader — конструктор ScopedReader.
func NewScopedReader(query ports.GraphQuery) *ScopedReader {
	return &ScopedReader{query: query}
}

// ReadOwned — возвращает только сущности, принадлежащие продавцу sellerID.
// Пустой список полей и пустые пути отклоняются до запроса (BadRequest):
// иначе переписывание дало бы путь "seller." без имени поля.
// Фильтры применяются на стороне сущности, не продавца.
func (r *ScopedReader) ReadOwned(
	ctx context.Context,
	sellerID, entity string,
	fields []string,
	filters map[string]any,
) ([]map[string]any, error) {
	if sellerID == "" {
		return nil, apperr.New(apperr.KindUnauthenticated, "seller scope is missing")
	}
	if entity == "" {
		return nil, apperr.New(apperr.KindBadRequest, "entity is required")
	}
	if len(fields) == 0 {
		return nil, apperr.New(apperr.KindBadRequest, "fields list must not be empty")
	}

	scoped := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, apperr.New(apperr.KindBadRequest, "empty field path is not allowed")
		}
		scoped = append(scoped, "seller."+f)
	}

	merged := make(map[string]any, len(filters)+1)
	for k, v := range filters {
		merged[k] = v
	}
	merged["seller.id"] = sellerID

	// Фильтр по конкретному id обязан дать строки — иначе not found.
	idFilter, hasID := filters["id"]

	rows, err := r.query.Graph(ctx, ports.GraphConfig{
		Entity:             entity,
		Fields:             scoped,
		Filters:            merged,
		ThrowIfKeyNotFound: hasID,
	})
	if err != nil {
		metrics.GraphQueries.WithLabelValues(entity, "failed").Inc()
		return nil, err
	}
	metrics.GraphQueries.WithLabelValues(entity, "ok").Inc()

	if hasID && len(rows) == 0 {
		return nil, apperr.New(apperr.KindNotFound, "%s with id %v not found", entity, idFilter)
	}

	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		inner, ok := row[entity].(map[string]any)
		if !ok {
			return nil, apperr.New(apperr.KindInternal, "graph row has no %q member to unwrap", entity)
		}
		out = append(out, inner)
	}
	return out, nil
}
