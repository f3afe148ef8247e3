package inbox

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"garmentsync/internal/domain"
	apperrors "garmentsync/internal/errors"
	"garmentsync/internal/notification"
)

type useCase struct {
	repo      Repository
	sender    ReplySender
	templates notification.Templates
	logger    *zap.Logger
}

func NewUseCase(repo Repository, sender ReplySender, templates notification.Templates, logger *zap.Logger) UseCase {
	return &useCase{
		repo:      repo,
		sender:    sender,
		templates: templates,
		logger:    logger,
	}
}

func (uc *useCase) List(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	return uc.repo.List(ctx, unreadOnly)
}

func (uc *useCase) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.repo.MarkRead(ctx, id)
}

// Reply emails the sender of the notification. A delivery failure is returned
// as is and leaves the entry unread.
func (uc *useCase) Reply(ctx context.Context, id, author, message string) (*domain.Notification, error) {
	original, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if original.SenderEmail == "" {
		return nil, apperrors.NewValidationError("notification has no reply address",
			apperrors.ValidationDetail{Field: "senderEmail", Message: "sender email is missing"})
	}

	content := uc.templates.Reply(*original, strings.TrimSpace(author), strings.TrimSpace(message))
	if err := uc.sender.Send(ctx, original.SenderEmail, content); err != nil {
		uc.logger.Warn("reply not delivered",
			zap.String("notificationId", id),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("reply sent",
		zap.String("notificationId", id),
		zap.String("orderId", original.OrderID),
	)
	return uc.repo.MarkRead(ctx, id)
}
