package interfaces

import (
	"context"

	"logistica_cotizaciones/internal/domain/entities"
)

// INotificationRepository abstracts the DynamoDB inbox.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int, error)
}

// INotifier delivers a message to a user. Callers treat it as best-effort.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
