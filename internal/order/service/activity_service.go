package service

import (
	"context"

	"go.uber.org/zap"

	"garmentsync/internal/cache"
	"garmentsync/internal/domain"
	"garmentsync/internal/events"
	"garmentsync/internal/notification"
)

type StakeholderLister interface {
	ListStakeholdersByOrder(ctx context.Context, orderID string) ([]domain.Stakeholder, error)
}

type Broadcaster interface {
	Broadcast(ctx context.Context, recipients []string, content notification.Content) int
}

// ActivityService runs the side effects that follow a change to an order:
// dropping the cached detail view, publishing the activity event and
// emailing the order's stakeholders.
type ActivityService struct {
	stakeholders StakeholderLister
	broadcaster  Broadcaster
	publisher    events.Publisher
	cache        cache.OrderCache
	logger       *zap.Logger
}

func NewActivityService(
	stakeholders StakeholderLister,
	broadcaster Broadcaster,
	publisher events.Publisher,
	orderCache cache.OrderCache,
	logger *zap.Logger,
) *ActivityService {
	return &ActivityService{
		stakeholders: stakeholders,
		broadcaster:  broadcaster,
		publisher:    publisher,
		cache:        orderCache,
		logger:       logger,
	}
}

// Record invalidates the cached view of orderID and publishes the event.
// Neither step can fail the caller.
func (s *ActivityService) Record(ctx context.Context, eventType events.Type, orderID string, payload interface{}) {
	if err := s.cache.Invalidate(ctx, orderID); err != nil {
		s.logger.Warn("failed to invalidate order cache", zap.String("orderId", orderID), zap.Error(err))
	}
	s.publisher.Publish(events.New(eventType, orderID, payload))
}

// NotifyStakeholders emails content to every stakeholder of orderID and
// returns how many recipients there were and how many were reached.
// Only the stakeholder lookup can fail.
func (s *ActivityService) NotifyStakeholders(ctx context.Context, orderID string, content notification.Content) (int, int, error) {
	stakeholders, err := s.stakeholders.ListStakeholdersByOrder(ctx, orderID)
	if err != nil {
		return 0, 0, err
	}
	if len(stakeholders) == 0 {
		return 0, 0, nil
	}

	recipients := make([]string, len(stakeholders))
	for i, st := range stakeholders {
		recipients[i] = st.Email
	}

	delivered := s.broadcaster.Broadcast(ctx, recipients, content)
	if delivered < len(recipients) {
		s.logger.Warn("some stakeholders were not notified",
			zap.String("orderId", orderID),
			zap.Int("recipients", len(recipients)),
			zap.Int("delivered", delivered),
		)
	}
	return len(recipients), delivered, nil
}
