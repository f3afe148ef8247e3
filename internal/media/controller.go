package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	"garmentsync/internal/httpx"
	"garmentsync/internal/validation"
)

const maxFileSize = 100 << 20

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

// Routes registers the endpoints on a router mounted at /media.
func (c *Controller) Routes(r chi.Router) {
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleCreate)
	r.Get("/{mediaId}", c.HandleGet)
	r.Delete("/{mediaId}", c.HandleDelete)
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := Filter{
		OrderID:  query.Get("orderId"),
		Category: domain.MediaCategory(query.Get("category")),
	}

	files, err := c.useCase.List(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, files)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	file, err := c.useCase.Get(r.Context(), chi.URLParam(r, "mediaId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, file)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMediaRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	if err := validateCreateRequest(req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	file, err := c.useCase.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusCreated, file)
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := c.useCase.Delete(r.Context(), chi.URLParam(r, "mediaId")); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, dto.DeleteResponse{Deleted: true})
}

func validateCreateRequest(req dto.CreateMediaRequest) error {
	var v validation.Collector

	v.Required("orderId", req.OrderID)
	if v.Required("filename", req.Filename) {
		v.MaxLength("filename", req.Filename, 255)
	}
	if req.Size <= 0 || req.Size > maxFileSize {
		v.Add("size", "size must be between 1 byte and 100 MB")
	}
	v.Required("mimeType", req.MimeType)
	if req.Category == "" || !domain.MediaCategory(req.Category).IsValid() {
		v.Add("category", "category must be one of: design, sample, production, quality, shipping, document")
	}
	v.Required("uploadedBy", req.UploadedBy)

	return v.Err()
}

func (c *Controller) writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	httpx.WriteJSON(w, status, data, httpx.Logger(r.Context()))
}
