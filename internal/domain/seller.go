package domain

import "time"

// Seller — продавец маркетплейса (вендор).
// AuthActorID — идентификатор актора аутентификации, связь один-к-одному.
type Seller struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	AuthActorID string    `json:"auth_actor_id"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
