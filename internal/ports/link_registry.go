package ports

import (
	"context"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
)

// LinkRegistry — реестр связей «продавец — сущность модуля».
// Create вызывается строго после успеха воркфлоу создания сущности.
type LinkRegistry interface {
	// Create — записывает кортеж владения.
	// Возвращает apperr.KindConflict, если связь (module, entity_id) уже есть,
	// и apperr.KindUnavailable, если реестр недоступен.
	Create(ctx context.Context, link domain.OwnershipLink) error
}
