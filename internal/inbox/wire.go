package inbox

import (
	"time"

	"go.uber.org/zap"

	"garmentsync/internal/notification"
)

func NewModule(seedDemo bool, sender ReplySender, templates notification.Templates, logger *zap.Logger) *Controller {
	var repo Repository
	if seedDemo {
		repo = NewMailbox(DemoNotifications(time.Now().UTC())...)
	} else {
		repo = NewMailbox()
	}
	return NewController(NewUseCase(repo, sender, templates, logger.Named("inbox")), logger)
}
