package postgres

import (
	"context"
	"errors"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что LinkRepository удовлетворяет интерфейсу LinkRegistry.
var _ ports.LinkRegistry = (*LinkRepository)(nil)

// LinkRepository — реестр связей владения на Postgres.
// Таблица seller_entity_links: PK (module, entity_id) — одна сущность
// принадлежит ровно одному продавцу.
type LinkRepository struct {
	pool *pgxpool.Pool
}

// NewLinkRepository - конструктор LinkRepository.
func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository { return &LinkRepository{pool: pool} }

// Create — записывает кортеж владения.
// Нарушение уникальности (23505) → Conflict, недоступность базы → Unavailable.
func (r *LinkRepository) Create(ctx context.Context, link domain.OwnershipLink) error {
	if link.SellerID == "" || link.Module == "" || link.EntityID == "" {
		return apperr.New(apperr.KindBadRequest, "ownership link requires seller_id, module and entity_id")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO seller_entity_links (seller_id, module, entity_id)
		VALUES ($1, $2, $3)
	`, link.SellerID, string(link.Module), link.EntityID)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperr.Wrap(apperr.KindConflict, err,
			"%s %s is already linked to a seller", link.Module, link.EntityID)
	}
	return apperr.Wrap(apperr.KindUnavailable, err, "link registry insert failed")
}

// GetSellerID — продавец-владелец сущности; "" если связи нет.
func (r *LinkRepository) GetSellerID(ctx context.Context, module domain.ModuleName, entityID string) (string, error) {
	var sellerID string
	err := r.pool.QueryRow(ctx, `
		SELECT seller_id FROM seller_entity_links
		WHERE module = $1 AND entity_id = $2
	`, string(module), entityID).Scan(&sellerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnavailable, err, "link registry select failed")
	}
	return sellerID, nil
}
