package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	apperrors "garmentsync/internal/errors"
	"garmentsync/internal/httpx"
	"garmentsync/internal/stakeholder/usecase"
)

type mockStakeholderUseCase struct {
	InviteFunc            func(ctx context.Context, orderID, name, email string, opts usecase.InviteOptions) (*dto.InviteResponse, error)
	BulkInviteFunc        func(ctx context.Context, orderID, raw string, opts usecase.InviteOptions) (*dto.BulkInviteResult, error)
	ListFunc              func(ctx context.Context, orderID string) ([]domain.Stakeholder, error)
	RemoveFunc            func(ctx context.Context, id string) (bool, error)
	UpdatePermissionsFunc func(ctx context.Context, id string, permissions domain.Permission) (*domain.Stakeholder, error)
}

func (m *mockStakeholderUseCase) Invite(ctx context.Context, orderID, name, email string, opts usecase.InviteOptions) (*dto.InviteResponse, error) {
	return m.InviteFunc(ctx, orderID, name, email, opts)
}

func (m *mockStakeholderUseCase) BulkInvite(ctx context.Context, orderID, raw string, opts usecase.InviteOptions) (*dto.BulkInviteResult, error) {
	return m.BulkInviteFunc(ctx, orderID, raw, opts)
}

func (m *mockStakeholderUseCase) List(ctx context.Context, orderID string) ([]domain.Stakeholder, error) {
	return m.ListFunc(ctx, orderID)
}

func (m *mockStakeholderUseCase) Remove(ctx context.Context, id string) (bool, error) {
	return m.RemoveFunc(ctx, id)
}

func (m *mockStakeholderUseCase) UpdatePermissions(ctx context.Context, id string, permissions domain.Permission) (*domain.Stakeholder, error) {
	return m.UpdatePermissionsFunc(ctx, id, permissions)
}

func serve(uc StakeholderUseCase, method, path, body string) *httptest.ResponseRecorder {
	c := NewStakeholderController(uc, zap.NewNop())
	r := chi.NewRouter()
	r.Use(httpx.Trace(zap.NewNop()))
	r.Route("/orders", c.OrderRoutes)
	r.Route("/stakeholders", c.Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func errorFields(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	fields := make([]string, len(resp.Details))
	for i, d := range resp.Details {
		fields[i] = d.Field
	}
	return fields
}

func TestInvite(t *testing.T) {
	t.Run("CreatedEvenWhenNotSent", func(t *testing.T) {
		var gotOrder, gotName, gotEmail string
		var gotOpts usecase.InviteOptions
		uc := &mockStakeholderUseCase{
			InviteFunc: func(_ context.Context, orderID, name, email string, opts usecase.InviteOptions) (*dto.InviteResponse, error) {
				gotOrder, gotName, gotEmail, gotOpts = orderID, name, email, opts
				st := domain.Stakeholder{ID: "s1", OrderID: orderID, Name: name, Email: email}.WithDefaults()
				return &dto.InviteResponse{Stakeholder: &st, InvitationSent: false}, nil
			},
		}

		rec := serve(uc, http.MethodPost, "/orders/PO-1/stakeholders",
			`{"name":" Jane Doe ","email":"jane@x.com","permissions":"comment","message":"Welcome"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "PO-1", gotOrder)
		assert.Equal(t, "Jane Doe", gotName)
		assert.Equal(t, "jane@x.com", gotEmail)
		assert.Equal(t, domain.StakeholderRole(""), gotOpts.Role)
		assert.Equal(t, domain.PermissionComment, gotOpts.Permissions)
		assert.Equal(t, "Welcome", gotOpts.Message)

		var body dto.InviteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.InvitationSent)
		assert.Equal(t, domain.RoleBuyer, body.Stakeholder.Role)
	})

	t.Run("Validation", func(t *testing.T) {
		rec := serve(&mockStakeholderUseCase{}, http.MethodPost, "/orders/PO-1/stakeholders",
			`{"email":"not-an-email","role":"owner","permissions":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.ElementsMatch(t, []string{"name", "email", "role", "permissions"}, errorFields(t, rec))
	})

	t.Run("OrderMissing", func(t *testing.T) {
		uc := &mockStakeholderUseCase{
			InviteFunc: func(context.Context, string, string, string, usecase.InviteOptions) (*dto.InviteResponse, error) {
				return nil, apperrors.NewNotFoundError("order with id PO-9 not found")
			},
		}

		rec := serve(uc, http.MethodPost, "/orders/PO-9/stakeholders", `{"name":"Jane","email":"jane@x.com"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBulkInvite(t *testing.T) {
	t.Run("PassesRawList", func(t *testing.T) {
		var gotRaw string
		var gotOpts usecase.InviteOptions
		uc := &mockStakeholderUseCase{
			BulkInviteFunc: func(_ context.Context, _ string, raw string, opts usecase.InviteOptions) (*dto.BulkInviteResult, error) {
				gotRaw, gotOpts = raw, opts
				return &dto.BulkInviteResult{Total: 2, Added: 2, Notified: 1, Results: []dto.BulkInviteEntry{
					{Email: "a@x.com", Status: dto.BulkInviteSuccess},
					{Email: "b@x.com", Status: dto.BulkInviteError, Reason: "smtp down"},
				}}, nil
			},
		}

		rec := serve(uc, http.MethodPost, "/orders/PO-1/stakeholders/bulk-invite",
			`{"emails":"a@x.com\nb@x.com","role":"factory_manager","permissions":"update"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a@x.com\nb@x.com", gotRaw)
		assert.Equal(t, domain.RoleFactoryManager, gotOpts.Role)
		assert.Equal(t, domain.PermissionUpdate, gotOpts.Permissions)

		var body dto.BulkInviteResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Total)
		assert.Equal(t, 1, body.Notified)
		assert.Equal(t, dto.BulkInviteError, body.Results[1].Status)
	})

	t.Run("EmptyList", func(t *testing.T) {
		rec := serve(&mockStakeholderUseCase{}, http.MethodPost, "/orders/PO-1/stakeholders/bulk-invite", `{"emails":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"emails"}, errorFields(t, rec))
	})
}

func TestList(t *testing.T) {
	uc := &mockStakeholderUseCase{
		ListFunc: func(_ context.Context, orderID string) ([]domain.Stakeholder, error) {
			return []domain.Stakeholder{{ID: "s1", OrderID: orderID}}, nil
		},
	}

	rec := serve(uc, http.MethodGet, "/orders/PO-1/stakeholders", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"s1"`)
}

func TestDelete(t *testing.T) {
	tests := map[string]struct {
		deleted    bool
		err        error
		wantStatus int
	}{
		"Deleted":       {deleted: true, wantStatus: http.StatusOK},
		"NotDeleted":    {deleted: false, wantStatus: http.StatusNotFound},
		"NotFoundError": {err: apperrors.NewNotFoundError("stakeholder with id s1 not found"), wantStatus: http.StatusNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uc := &mockStakeholderUseCase{
				RemoveFunc: func(context.Context, string) (bool, error) { return tt.deleted, tt.err },
			}

			rec := serve(uc, http.MethodDelete, "/stakeholders/s1", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())
			}
		})
	}
}

func TestUpdatePermissions(t *testing.T) {
	t.Run("Updated", func(t *testing.T) {
		uc := &mockStakeholderUseCase{
			UpdatePermissionsFunc: func(_ context.Context, id string, p domain.Permission) (*domain.Stakeholder, error) {
				return &domain.Stakeholder{ID: id, Permissions: p}, nil
			},
		}

		rec := serve(uc, http.MethodPatch, "/stakeholders/s1/permissions", `{"permissions":"update"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"permissions":"update"`)
	})

	t.Run("Invalid", func(t *testing.T) {
		rec := serve(&mockStakeholderUseCase{}, http.MethodPatch, "/stakeholders/s1/permissions", `{"permissions":"owner"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"permissions"}, errorFields(t, rec))
	})

	t.Run("Missing", func(t *testing.T) {
		rec := serve(&mockStakeholderUseCase{}, http.MethodPatch, "/stakeholders/s1/permissions", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		uc := &mockStakeholderUseCase{
			UpdatePermissionsFunc: func(context.Context, string, domain.Permission) (*domain.Stakeholder, error) {
				return nil, apperrors.NewNotFoundError("stakeholder with id s1 not found")
			},
		}

		rec := serve(uc, http.MethodPatch, "/stakeholders/s1/permissions", `{"permissions":"read"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
