package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InboxLimit is how many notifications the inbox returns.
const InboxLimit = 50

// INotificationUseCase is the user inbox. It is also the notifier the quote
// lifecycle writes to.
type INotificationUseCase interface {
	interfaces.INotifier
	List(ctx context.Context, actor entities.Actor) ([]entities.Notification, error)
	MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, actor entities.Actor) (int, error)
}

type NotificationUseCase struct {
	repo   interfaces.INotificationRepository
	logger *zap.Logger
	now    func() time.Time
}

var (
	_ INotificationUseCase = (*NotificationUseCase)(nil)
	_ interfaces.INotifier = (*NotificationUseCase)(nil)
)

func NewNotificationUseCase(repo interfaces.INotificationRepository, logger *zap.Logger) *NotificationUseCase {
	return &NotificationUseCase{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *NotificationUseCase) Notify(ctx context.Context, n entities.Notification) error {
	if n.UserID <= 0 || strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: notification needs a recipient and a title", ErrInvalidInput)
	}
	n.ID = uuid.NewString()
	n.Read = false
	n.CreatedAt = u.now()

	if _, err := u.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	u.logger.Debug("notification usecase notify ok",
		zap.String("notification_id", n.ID), zap.Int64("user_id", n.UserID))
	return nil
}

func (u *NotificationUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.Notification, error) {
	items, err := u.repo.ListByUserID(ctx, actor.UserID, InboxLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if items == nil {
		items = []entities.Notification{}
	}
	return items, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, fmt.Errorf("get notification: %w", err)
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.UserID != actor.UserID {
		return entities.Notification{}, ErrNotNotificationOwner
	}
	if n.Read {
		return n, nil
	}

	updated, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}
	if updated.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return updated, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor entities.Actor) (int, error) {
	count, err := u.repo.MarkAllRead(ctx, actor.UserID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	u.logger.Debug("notification usecase mark all read", zap.Int64("user_id", actor.UserID), zap.Int("count", count))
	return count, nil
}
