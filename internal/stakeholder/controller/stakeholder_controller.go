package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	apperrors "garmentsync/internal/errors"
	"garmentsync/internal/httpx"
	"garmentsync/internal/stakeholder/usecase"
	"garmentsync/internal/validation"
)

const (
	maxNameLength    = 200
	maxMessageLength = 2000
	maxBulkLength    = 20000
)

var (
	roleValues = []string{
		string(domain.RoleAdmin), string(domain.RoleFactoryOwner), string(domain.RoleFactoryManager),
		string(domain.RoleBuyer), string(domain.RoleBuyerEmployee),
	}
	permissionValues = []string{
		string(domain.PermissionRead), string(domain.PermissionComment), string(domain.PermissionUpdate),
	}
)

type StakeholderUseCase interface {
	Invite(ctx context.Context, orderID, name, email string, opts usecase.InviteOptions) (*dto.InviteResponse, error)
	BulkInvite(ctx context.Context, orderID, raw string, opts usecase.InviteOptions) (*dto.BulkInviteResult, error)
	List(ctx context.Context, orderID string) ([]domain.Stakeholder, error)
	Remove(ctx context.Context, id string) (bool, error)
	UpdatePermissions(ctx context.Context, id string, permissions domain.Permission) (*domain.Stakeholder, error)
}

type StakeholderController struct {
	useCase StakeholderUseCase
	logger  *zap.Logger
}

func NewStakeholderController(useCase StakeholderUseCase, logger *zap.Logger) *StakeholderController {
	return &StakeholderController{
		useCase: useCase,
		logger:  logger,
	}
}

// OrderRoutes registers the per-order endpoints on a router mounted at
// /orders.
func (c *StakeholderController) OrderRoutes(r chi.Router) {
	r.Post("/{orderId}/stakeholders", c.Invite)
	r.Get("/{orderId}/stakeholders", c.List)
	r.Post("/{orderId}/stakeholders/bulk-invite", c.BulkInvite)
}

// Routes registers the endpoints on a router mounted at /stakeholders.
func (c *StakeholderController) Routes(r chi.Router) {
	r.Delete("/{stakeholderId}", c.Delete)
	r.Patch("/{stakeholderId}/permissions", c.UpdatePermissions)
}

func (c *StakeholderController) Invite(w http.ResponseWriter, r *http.Request) {
	var req dto.InviteStakeholderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var v validation.Collector
	if v.Required("name", req.Name) {
		v.MaxLength("name", req.Name, maxNameLength)
	}
	v.Email("email", req.Email)
	opts := collectInviteOptions(&v, req.Role, req.Permissions, req.Message)
	if err := v.Err(); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	resp, err := c.useCase.Invite(r.Context(), chi.URLParam(r, "orderId"),
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), opts)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusCreated, resp)
}

func (c *StakeholderController) BulkInvite(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var v validation.Collector
	if v.Required("emails", req.Emails) {
		v.MaxLength("emails", req.Emails, maxBulkLength)
	}
	opts := collectInviteOptions(&v, req.Role, req.Permissions, req.Message)
	if err := v.Err(); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	result, err := c.useCase.BulkInvite(r.Context(), chi.URLParam(r, "orderId"), req.Emails, opts)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, result)
}

func (c *StakeholderController) List(w http.ResponseWriter, r *http.Request) {
	stakeholders, err := c.useCase.List(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, stakeholders)
}

func (c *StakeholderController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "stakeholderId")

	deleted, err := c.useCase.Remove(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if !deleted {
		httpx.WriteError(w, r, apperrors.NewNotFoundError("stakeholder with id "+id+" not found"))
		return
	}

	c.writeJSON(w, r, http.StatusOK, dto.DeleteResponse{Deleted: true})
}

func (c *StakeholderController) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePermissionsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var v validation.Collector
	v.OneOf("permissions", req.Permissions, false, permissionValues...)
	if err := v.Err(); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	updated, err := c.useCase.UpdatePermissions(r.Context(), chi.URLParam(r, "stakeholderId"), domain.Permission(req.Permissions))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	c.writeJSON(w, r, http.StatusOK, updated)
}

// collectInviteOptions validates the fields shared by both invite endpoints.
// Empty role and permissions fall back to the stakeholder defaults.
func collectInviteOptions(v *validation.Collector, role, permissions, message string) usecase.InviteOptions {
	v.OneOf("role", role, true, roleValues...)
	v.OneOf("permissions", permissions, true, permissionValues...)
	v.MaxLength("message", message, maxMessageLength)

	return usecase.InviteOptions{
		Role:        domain.StakeholderRole(role),
		Permissions: domain.Permission(permissions),
		Message:     strings.TrimSpace(message),
	}
}

func (c *StakeholderController) writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	httpx.WriteJSON(w, status, data, httpx.Logger(r.Context()))
}
