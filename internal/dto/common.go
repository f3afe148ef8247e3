package dto

import (
	"time"

	apperrors "garmentsync/internal/errors"
)

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"code"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

type CreateMediaRequest struct {
	OrderID    string `json:"orderId"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mimeType"`
	Category   string `json:"category"`
	UploadedBy string `json:"uploadedBy"`
}

type ReplyRequest struct {
	Message    string `json:"message"`
	AuthorName string `json:"authorName"`
}
