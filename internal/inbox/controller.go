package inbox

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"garmentsync/internal/dto"
	"garmentsync/internal/httpx"
	"garmentsync/internal/validation"
)

const (
	maxReplyLength  = 5000
	maxAuthorLength = 200
)

type Controller struct {
	useCase UseCase
	logger  *zap.Logger
}

func NewController(useCase UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

// Routes registers the endpoints on a router mounted at /notifications.
func (c *Controller) Routes(r chi.Router) {
	r.Get("/", c.HandleList)
	r.Patch("/{notificationId}/read", c.HandleMarkRead)
	r.Post("/{notificationId}/reply", c.HandleReply)
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	unread := r.URL.Query().Get("unread") == "true"

	entries, err := c.useCase.List(r.Context(), unread)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, entries)
}

func (c *Controller) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	entry, err := c.useCase.MarkRead(r.Context(), chi.URLParam(r, "notificationId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, entry)
}

func (c *Controller) HandleReply(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var v validation.Collector
	if v.Required("message", req.Message) {
		v.MaxLength("message", req.Message, maxReplyLength)
	}
	if v.Required("authorName", req.AuthorName) {
		v.MaxLength("authorName", req.AuthorName, maxAuthorLength)
	}
	if err := v.Err(); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	entry, err := c.useCase.Reply(r.Context(), chi.URLParam(r, "notificationId"), req.AuthorName, req.Message)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, entry)
}

func (c *Controller) writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	httpx.WriteJSON(w, status, data, httpx.Logger(r.Context()))
}
