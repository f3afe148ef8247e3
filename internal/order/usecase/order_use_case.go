package usecase

import (
	"context"

	"go.uber.org/zap"

	"garmentsync/internal/cache"
	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	"garmentsync/internal/events"
	"garmentsync/internal/notification"
	"garmentsync/internal/repository"
)

type OrderRepository interface {
	repository.OrderRepository
	repository.UpdateRepository
	repository.CommentRepository
	ListStakeholdersByOrder(ctx context.Context, orderID string) ([]domain.Stakeholder, error)
}

type ActivityService interface {
	Record(ctx context.Context, eventType events.Type, orderID string, payload interface{})
	NotifyStakeholders(ctx context.Context, orderID string, content notification.Content) (int, int, error)
}

type OrderUseCase struct {
	repo      OrderRepository
	activity  ActivityService
	cache     cache.OrderCache
	templates notification.Templates
	logger    *zap.Logger
}

func NewOrderUseCase(
	repo OrderRepository,
	activity ActivityService,
	orderCache cache.OrderCache,
	templates notification.Templates,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:      repo,
		activity:  activity,
		cache:     orderCache,
		templates: templates,
		logger:    logger,
	}
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	created, err := uc.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order created", zap.String("orderId", created.ID), zap.String("status", string(created.Status)))
	uc.activity.Record(ctx, events.OrderCreated, created.ID, created)
	return created, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	return uc.repo.ListOrders(ctx, filter)
}

// GetOrder returns the order with its updates, comments and stakeholders.
// The assembled view is served from the cache when present and cached only
// if no mutation of the order was recorded while it was being assembled.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderDetail, error) {
	cached, err := uc.cache.Get(ctx, id)
	if err != nil {
		uc.logger.Warn("order cache read failed", zap.String("orderId", id), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	// Taken before the reads so a change that lands mid-read voids the fill.
	version, versionErr := uc.cache.Version(ctx, id)
	if versionErr != nil {
		uc.logger.Warn("order cache version read failed", zap.String("orderId", id), zap.Error(versionErr))
	}

	order, err := uc.repo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := uc.repo.ListUpdatesByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := uc.repo.ListCommentsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	stakeholders, err := uc.repo.ListStakeholdersByOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.OrderDetail{
		Order:        *order,
		Updates:      updates,
		Comments:     comments,
		Stakeholders: stakeholders,
	}
	if versionErr == nil {
		if err := uc.cache.Set(ctx, detail, version); err != nil {
			uc.logger.Warn("order cache write failed", zap.String("orderId", id), zap.Error(err))
		}
	}
	return detail, nil
}

// UpdateStatus stores any status label. Transitions are not enforced.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	updated, err := uc.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		uc.logger.Info("order moved to custom status", zap.String("orderId", id), zap.String("status", string(status)))
	}
	uc.activity.Record(ctx, events.OrderStatusChanged, id, updated)
	return updated, nil
}

// PostUpdate stores the update and then emails every stakeholder of the
// order. Delivery problems never fail the call.
func (uc *OrderUseCase) PostUpdate(ctx context.Context, update domain.Update) (*dto.NoteResponse, error) {
	order, err := uc.repo.FindOrderByID(ctx, update.OrderID)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.CreateUpdate(ctx, update)
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, events.OrderUpdatePosted, order.ID, created)

	recipients, notified := uc.notify(ctx, order.ID, uc.templates.OrderUpdate(*order, *created))
	return &dto.NoteResponse{Data: created, Recipients: recipients, Notified: notified}, nil
}

func (uc *OrderUseCase) PostComment(ctx context.Context, comment domain.Comment) (*dto.NoteResponse, error) {
	order, err := uc.repo.FindOrderByID(ctx, comment.OrderID)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, events.OrderCommentPosted, order.ID, created)

	recipients, notified := uc.notify(ctx, order.ID, uc.templates.OrderComment(*order, *created))
	return &dto.NoteResponse{Data: created, Recipients: recipients, Notified: notified}, nil
}

func (uc *OrderUseCase) notify(ctx context.Context, orderID string, content notification.Content) (int, int) {
	recipients, notified, err := uc.activity.NotifyStakeholders(ctx, orderID, content)
	if err != nil {
		uc.logger.Error("could not load stakeholders for notification", zap.String("orderId", orderID), zap.Error(err))
	}
	return recipients, notified
}

func (uc *OrderUseCase) ListUpdates(ctx context.Context, orderID string) ([]domain.Update, error) {
	if _, err := uc.repo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.repo.ListUpdatesByOrder(ctx, orderID)
}

func (uc *OrderUseCase) ListComments(ctx context.Context, orderID string) ([]domain.Comment, error) {
	if _, err := uc.repo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.repo.ListCommentsByOrder(ctx, orderID)
}
