package order

import (
	"go.uber.org/zap"

	"garmentsync/internal/cache"
	"garmentsync/internal/events"
	"garmentsync/internal/notification"
	"garmentsync/internal/order/controller"
	"garmentsync/internal/order/service"
	"garmentsync/internal/order/usecase"
	"garmentsync/internal/repository"
)

// Module exposes the pieces other modules share.
type Module struct {
	Controller *controller.OrderController
	Activity   *service.ActivityService
}

func NewModule(
	store repository.Store,
	dispatcher *notification.Dispatcher,
	templates notification.Templates,
	publisher events.Publisher,
	orderCache cache.OrderCache,
	logger *zap.Logger,
) *Module {
	activity := service.NewActivityService(store, dispatcher, publisher, orderCache, logger.Named("activity"))
	uc := usecase.NewOrderUseCase(store, activity, orderCache, templates, logger.Named("order"))
	return &Module{
		Controller: controller.NewOrderController(uc, logger),
		Activity:   activity,
	}
}
