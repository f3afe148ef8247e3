package media

import (
	"time"

	"go.uber.org/zap"
)

func NewModule(seedDemo bool, logger *zap.Logger) *Controller {
	var repo Repository
	if seedDemo {
		repo = NewCatalog(DemoFiles(time.Now().UTC())...)
	} else {
		repo = NewCatalog()
	}
	return NewController(NewUseCase(repo), logger)
}
