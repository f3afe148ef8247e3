package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"garmentsync/internal/httpx"
	"garmentsync/internal/inbox"
	"garmentsync/internal/media"
	orderctrl "garmentsync/internal/order/controller"
	stakeholderctrl "garmentsync/internal/stakeholder/controller"
)

// Controllers groups the HTTP handlers mounted under /api.
type Controllers struct {
	Orders        *orderctrl.OrderController
	Stakeholders  *stakeholderctrl.StakeholderController
	Media         *media.Controller
	Notifications *inbox.Controller
}

func NewRouter(ctrls Controllers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpx.Trace(logger))
	r.Use(httpx.RequestLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, httpx.Logger(r.Context()))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			ctrls.Orders.Routes(r)
			ctrls.Stakeholders.OrderRoutes(r)
		})
		r.Route("/stakeholders", ctrls.Stakeholders.Routes)
		r.Route("/media", ctrls.Media.Routes)
		r.Route("/notifications", ctrls.Notifications.Routes)
	})

	return r
}
