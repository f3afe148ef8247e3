package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	"garmentsync/internal/httpx"
	"garmentsync/internal/repository"
	"garmentsync/internal/validation"
)

const (
	maxIDLength      = 64
	maxNameLength    = 200
	maxMessageLength = 5000
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderDetail, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	PostUpdate(ctx context.Context, update domain.Update) (*dto.NoteResponse, error)
	PostComment(ctx context.Context, comment domain.Comment) (*dto.NoteResponse, error)
	ListUpdates(ctx context.Context, orderID string) ([]domain.Update, error)
	ListComments(ctx context.Context, orderID string) ([]domain.Comment, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

// Routes registers the order endpoints on a router mounted at /orders.
func (c *OrderController) Routes(r chi.Router) {
	r.Post("/", c.CreateOrder)
	r.Get("/", c.ListOrders)
	r.Get("/{orderId}", c.GetOrder)
	r.Patch("/{orderId}/status", c.UpdateStatus)
	r.Post("/{orderId}/updates", c.PostUpdate)
	r.Get("/{orderId}/updates", c.ListUpdates)
	r.Post("/{orderId}/comments", c.PostComment)
	r.Get("/{orderId}/comments", c.ListComments)
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	order, err := validateCreateOrder(req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	created, err := c.useCase.CreateOrder(r.Context(), order)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusCreated, created)
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := repository.OrderFilter{Status: domain.OrderStatus(r.URL.Query().Get("status"))}

	orders, err := c.useCase.ListOrders(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, orders)
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	detail, err := c.useCase.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, detail)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var v validation.Collector
	if v.Required("status", req.Status) {
		v.MaxLength("status", req.Status, maxIDLength)
	}
	if err := v.Err(); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	orderID := chi.URLParam(r, "orderId")
	updated, err := c.useCase.UpdateStatus(r.Context(), orderID, domain.OrderStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, updated)
}

func (c *OrderController) PostUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeNote(w, r)
	if !ok {
		return
	}

	resp, err := c.useCase.PostUpdate(r.Context(), domain.Update{
		OrderID:    chi.URLParam(r, "orderId"),
		Message:    req.Message,
		AuthorName: req.AuthorName,
		AuthorRole: domain.AuthorRole(req.AuthorRole),
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusCreated, resp)
}

func (c *OrderController) PostComment(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeNote(w, r)
	if !ok {
		return
	}

	resp, err := c.useCase.PostComment(r.Context(), domain.Comment{
		OrderID:    chi.URLParam(r, "orderId"),
		Message:    req.Message,
		AuthorName: req.AuthorName,
		AuthorRole: domain.AuthorRole(req.AuthorRole),
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusCreated, resp)
}

func (c *OrderController) ListUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := c.useCase.ListUpdates(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, updates)
}

func (c *OrderController) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := c.useCase.ListComments(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, comments)
}

func (c *OrderController) decodeNote(w http.ResponseWriter, r *http.Request) (dto.CreateNoteRequest, bool) {
	var req dto.CreateNoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return req, false
	}
	if err := validateNote(req); err != nil {
		httpx.WriteError(w, r, err)
		return req, false
	}
	return req, true
}

func validateCreateOrder(req dto.CreateOrderRequest) (domain.Order, error) {
	var v validation.Collector

	if v.Required("id", req.ID) {
		v.MaxLength("id", req.ID, maxIDLength)
	}
	if v.Required("buyerName", req.BuyerName) {
		v.MaxLength("buyerName", req.BuyerName, maxNameLength)
	}
	if v.Required("styleNumber", req.StyleNumber) {
		v.MaxLength("styleNumber", req.StyleNumber, maxIDLength)
	}
	v.Positive("quantity", req.Quantity)
	delivery := v.Date("estimatedDelivery", req.EstimatedDelivery)
	v.Email("buyerEmail", req.BuyerEmail)
	v.OneOf("status", req.Status, true, orderStatusValues()...)

	if err := v.Err(); err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:                strings.TrimSpace(req.ID),
		BuyerName:         strings.TrimSpace(req.BuyerName),
		StyleNumber:       strings.TrimSpace(req.StyleNumber),
		Quantity:          req.Quantity,
		EstimatedDelivery: delivery,
		BuyerEmail:        strings.TrimSpace(req.BuyerEmail),
		Status:            domain.OrderStatus(req.Status),
	}, nil
}

func validateNote(req dto.CreateNoteRequest) error {
	var v validation.Collector

	if v.Required("message", req.Message) {
		v.MaxLength("message", req.Message, maxMessageLength)
	}
	if v.Required("authorName", req.AuthorName) {
		v.MaxLength("authorName", req.AuthorName, maxNameLength)
	}
	v.OneOf("authorRole", req.AuthorRole, false,
		string(domain.AuthorRoleManufacturer), string(domain.AuthorRoleBuyer))

	return v.Err()
}

func orderStatusValues() []string {
	statuses := domain.OrderStatuses()
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

func (c *OrderController) writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	httpx.WriteJSON(w, status, data, httpx.Logger(r.Context()))
}
