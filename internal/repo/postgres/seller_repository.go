package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что SellerRepository удовлетворяет интерфейсу SellerRepository.
var _ ports.SellerRepository = (*SellerRepository)(nil)

// SellerRepository — реализация репозитория продавцов на Postgres (pgxpool).
type SellerRepository struct {
	pool *pgxpool.Pool
}

// NewSellerRepository - конструктор SellerRepository.
func NewSellerRepository(pool *pgxpool.Pool) *SellerRepository { return &SellerRepository{pool: pool} }

// GetByAuthActorID — продавец по актору аутентификации (auth_actor_id UNIQUE).
// Если привязки нет, возвращает (nil, nil).
func (r *SellerRepository) GetByAuthActorID(ctx context.Context, actorID string) (*domain.Seller, error) {
	if actorID == "" {
		return nil, errors.New("actor id is required")
	}

	var seller domain.Seller
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, auth_actor_id, created_at
		FROM sellers WHERE auth_actor_id = $1
	`, actorID).Scan(&seller.ID, &seller.Name, &seller.AuthActorID, &seller.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select seller: %w", err)
	}
	return &seller, nil
}

// Create — сохраняет продавца; конфликт по auth_actor_id — ошибка вызывающему.
func (r *SellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	if seller == nil || seller.ID == "" {
		return errors.New("seller is empty or id is required")
	}
	if seller.AuthActorID == "" {
		return errors.New("auth_actor_id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO sellers (id, name, auth_actor_id)
		VALUES ($1, $2, $3)
	`, seller.ID, seller.Name, seller.AuthActorID); err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}
