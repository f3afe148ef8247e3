package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"garmentsync/internal/dto"
	apperrors "garmentsync/internal/errors"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// DecodeJSON reads the request body into v. A malformed body is reported as a
// validation error on the "body" field.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}
	return nil
}

// WriteError maps application errors onto HTTP status codes. Anything it does
// not recognise is logged and reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := Logger(r.Context())
	traceID := TraceID(r.Context())

	resp := dto.ErrorResponse{
		TraceID:   traceID,
		Timestamp: time.Now().UTC(),
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		resp.Status, resp.Code, resp.Message, resp.Details = http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details
	} else if nf, ok := apperrors.IsNotFoundError(err); ok {
		resp.Status, resp.Code, resp.Message = http.StatusNotFound, "NOT_FOUND", nf.Message
	} else if ce, ok := apperrors.IsConflictError(err); ok {
		resp.Status, resp.Code, resp.Message = http.StatusConflict, "CONFLICT", ce.Message
	} else if de, ok := apperrors.IsDeliveryError(err); ok {
		logger.Error("email delivery failed", zap.String("recipient", de.Recipient), zap.Error(err))
		resp.Status, resp.Code, resp.Message = http.StatusInternalServerError, "DELIVERY_FAILED", "failed to send email to "+de.Recipient
	} else {
		logger.Error("unexpected error", zap.Error(err))
		resp.Status, resp.Code, resp.Message = http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred"
	}

	WriteJSON(w, resp.Status, resp, logger)
}
