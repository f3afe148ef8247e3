package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"garmentsync/internal/cache"
	"garmentsync/internal/config"
	"garmentsync/internal/dto"
	"garmentsync/internal/events"
	"garmentsync/internal/httpx"
	"garmentsync/internal/inbox"
	"garmentsync/internal/infrastructure/email"
	"garmentsync/internal/media"
	"garmentsync/internal/notification"
	"garmentsync/internal/order"
	"garmentsync/internal/repository/memory"
	"garmentsync/internal/stakeholder"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []email.Message
}

func (s *recordingSender) Send(_ context.Context, msg email.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sent))
	for i, m := range s.sent {
		out[i] = m.To
	}
	return out
}

func newTestRouter(sender email.Sender) http.Handler {
	logger := zap.NewNop()
	store := memory.New()
	dispatcher := notification.NewDispatcher(sender, logger)
	templates := notification.Templates{AppName: "GarmentSync", PublicURL: "http://app.test"}

	orders := order.NewModule(store, dispatcher, templates, events.Noop{}, cache.Noop{}, logger)
	return NewRouter(Controllers{
		Orders:        orders.Controller,
		Stakeholders:  stakeholder.NewModule(store, dispatcher, templates, orders.Activity, logger),
		Media:         media.NewModule(true, logger),
		Notifications: inbox.NewModule(true, dispatcher, templates, logger),
	}, logger)
}

func call(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	rec := call(newTestRouter(&recordingSender{}), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(httpx.TraceHeader))
}

func TestRouter_OrderWorkflow(t *testing.T) {
	sender := &recordingSender{}
	h := newTestRouter(sender)

	rec := call(h, http.MethodPost, "/api/orders",
		`{"id":"PO-1","buyerName":"Acme","styleNumber":"ST-1","quantity":10,"estimatedDelivery":"2026-12-01","buyerEmail":"buyer@acme.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(h, http.MethodPost, "/api/orders/PO-1/updates",
		`{"message":"Cutting started","authorName":"Mia","authorRole":"manufacturer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, sender.recipients())

	rec = call(h, http.MethodPost, "/api/orders/PO-1/stakeholders/bulk-invite",
		`{"emails":"a@x.com, a@x.com\nbad-email, b@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var bulk dto.BulkInviteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bulk))
	assert.Equal(t, 4, bulk.Total)
	assert.Equal(t, 2, bulk.Added)
	statuses := make([]dto.BulkInviteStatus, len(bulk.Results))
	for i, r := range bulk.Results {
		statuses[i] = r.Status
	}
	assert.Equal(t, []dto.BulkInviteStatus{
		dto.BulkInviteSuccess, dto.BulkInviteExists, dto.BulkInviteInvalid, dto.BulkInviteSuccess,
	}, statuses)

	rec = call(h, http.MethodPost, "/api/orders/PO-1/comments",
		`{"message":"Looks good","authorName":"Sam","authorRole":"buyer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var note dto.NoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, 2, note.Recipients)
	assert.Equal(t, 2, note.Notified)

	rec = call(h, http.MethodGet, "/api/orders/PO-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail dto.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Len(t, detail.Updates, 1)
	assert.Len(t, detail.Comments, 1)
	require.Len(t, detail.Stakeholders, 2)

	rec = call(h, http.MethodDelete, "/api/stakeholders/"+detail.Stakeholders[0].ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(h, http.MethodDelete, "/api/stakeholders/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SecondaryModules(t *testing.T) {
	h := newTestRouter(&recordingSender{})

	rec := call(h, http.MethodGet, "/api/media?orderId=PO-2024-002", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "packing-list.xlsx")

	rec = call(h, http.MethodGet, "/api/notifications?unread=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "notif-1")
}

func TestRouter_DuplicateOrder(t *testing.T) {
	h := newTestRouter(&recordingSender{})
	body := `{"id":"PO-1","buyerName":"Acme","styleNumber":"ST-1","quantity":10,"estimatedDelivery":"2026-12-01","buyerEmail":"buyer@acme.com"}`

	require.Equal(t, http.StatusCreated, call(h, http.MethodPost, "/api/orders", body).Code)
	rec := call(h, http.MethodPost, "/api/orders", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_New(t *testing.T) {
	srv := New(config.ServerConfig{Port: 9090, ReadTimeout: time.Second, WriteTimeout: time.Second},
		http.NotFoundHandler(), zap.NewNop())

	assert.Equal(t, ":9090", srv.Addr())
	assert.NoError(t, srv.Shutdown(context.Background()))
}
