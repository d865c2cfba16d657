package ports

import (
	"context"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
)

// SellerRepository — поиск продавца по актору аутентификации.
type SellerRepository interface {
	// GetByAuthActorID — (nil, nil), если продавец не привязан к актору.
	GetByAuthActorID(ctx context.Context, actorID string) (*domain.Seller, error)
}

// SellerCache — кэш продавцов, ключ — actor_id.
// Требования к реализации: потокобезопасность; возврат копий сущности.
type SellerCache interface {
	// Get — (seller, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, actorID string) (*domain.Seller, bool)

	// Set — сохранить/обновить продавца; ключ берётся из seller.AuthActorID.
	Set(ctx context.Context, seller *domain.Seller) error
}
