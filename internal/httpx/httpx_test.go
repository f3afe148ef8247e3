package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"garmentsync/internal/dto"
	apperrors "garmentsync/internal/errors"
)

func serveError(err error) *httptest.ResponseRecorder {
	handler := Trace(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, err)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestWriteError(t *testing.T) {
	tests := map[string]struct {
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		"Validation": {
			err: apperrors.NewValidationError("validation failed",
				apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be a positive integer"}),
			wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR", wantMsg: "validation failed",
		},
		"NotFound": {
			err:        apperrors.NewNotFoundError("order with id PO-1 not found"),
			wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND", wantMsg: "order with id PO-1 not found",
		},
		"Conflict": {
			err:        apperrors.NewConflictError("order PO-1 already exists"),
			wantStatus: http.StatusConflict, wantCode: "CONFLICT", wantMsg: "order PO-1 already exists",
		},
		"Delivery": {
			err:        apperrors.NewDeliveryError("a@x.com", errors.New("smtp down")),
			wantStatus: http.StatusInternalServerError, wantCode: "DELIVERY_FAILED", wantMsg: "failed to send email to a@x.com",
		},
		"Unknown": {
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR", wantMsg: "an unexpected error occurred",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serveError(tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, rec.Header().Get(TraceHeader), body.TraceID)
			assert.NotEmpty(t, body.TraceID)
		})
	}
}

func TestWriteError_ValidationDetails(t *testing.T) {
	rec := serveError(apperrors.NewValidationError("validation failed",
		apperrors.ValidationDetail{Field: "id", Message: "id is required"},
		apperrors.ValidationDetail{Field: "buyerName", Message: "buyerName is required"},
	))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Details, 2)
	assert.Equal(t, "buyerName", body.Details[1].Field)
}

func TestDecodeJSON(t *testing.T) {
	var req dto.UpdateStatusRequest

	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"shipped"}`)), &req)
	require.NoError(t, err)
	assert.Equal(t, "shipped", req.Status)

	err = DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)), &req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "body", ve.Details[0].Field)
}

func TestTrace(t *testing.T) {
	t.Run("GeneratesID", func(t *testing.T) {
		var seen string
		handler := Trace(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = TraceID(r.Context())
		}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(TraceHeader))
	})

	t.Run("ReusesIncomingID", func(t *testing.T) {
		handler := Trace(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceHeader, "trace-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(TraceHeader))
	})

	t.Run("OutsideMiddleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Empty(t, TraceID(req.Context()))
		assert.NotNil(t, Logger(req.Context()))
	})
}

func TestRequestLog(t *testing.T) {
	core, recorded := observer.New(zap.InfoLevel)
	handler := Trace(zap.New(core))(RequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", nil))

	entries := recorded.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/orders", fields["path"])
	assert.Equal(t, int64(http.StatusCreated), fields["status"])
	assert.Equal(t, rec.Header().Get(TraceHeader), fields["traceId"])
}
