package ports

import (
	"context"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
)

// EventPublisher — публикация событий о созданных сущностях.
// Ошибка публикации не должна проваливать запрос (логируется выше).
type EventPublisher interface {
	Publish(ctx context.Context, event domain.VendorEvent) error
}
