package stakeholder

import (
	"go.uber.org/zap"

	"garmentsync/internal/notification"
	"garmentsync/internal/repository"
	"garmentsync/internal/stakeholder/controller"
	"garmentsync/internal/stakeholder/usecase"
)

func NewModule(
	store repository.Store,
	dispatcher *notification.Dispatcher,
	templates notification.Templates,
	activity usecase.ActivityRecorder,
	logger *zap.Logger,
) *controller.StakeholderController {
	uc := usecase.NewStakeholderUseCase(store, dispatcher, activity, templates, logger.Named("stakeholder"))
	return controller.NewStakeholderController(uc, logger)
}
