package dto

import "garmentsync/internal/domain"

type CreateOrderRequest struct {
	ID                string `json:"id"`
	BuyerName         string `json:"buyerName"`
	StyleNumber       string `json:"styleNumber"`
	Quantity          int    `json:"quantity"`
	EstimatedDelivery string `json:"estimatedDelivery"`
	BuyerEmail        string `json:"buyerEmail"`
	Status            string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateNoteRequest is the body for both updates and comments.
type CreateNoteRequest struct {
	Message    string `json:"message"`
	AuthorName string `json:"authorName"`
	AuthorRole string `json:"authorRole"`
}

// OrderDetail is an order with everything attached to it.
type OrderDetail struct {
	domain.Order
	Updates      []domain.Update      `json:"updates"`
	Comments     []domain.Comment     `json:"comments"`
	Stakeholders []domain.Stakeholder `json:"stakeholders"`
}

// NoteResponse is returned after posting an update or comment.
type NoteResponse struct {
	Data       interface{} `json:"data"`
	Recipients int         `json:"recipients"`
	Notified   int         `json:"notified"`
}
