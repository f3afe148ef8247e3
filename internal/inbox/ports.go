package inbox

import (
	"context"

	"garmentsync/internal/domain"
	"garmentsync/internal/notification"
)

type UseCase interface {
	List(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	Reply(ctx context.Context, id, author, message string) (*domain.Notification, error)
}

type Repository interface {
	List(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

// ReplySender delivers a single message and reports the failure to the caller.
type ReplySender interface {
	Send(ctx context.Context, to string, content notification.Content) error
}
