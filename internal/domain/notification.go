package domain

import "time"

type NotificationType string

const (
	NotificationUpdate       NotificationType = "update"
	NotificationComment      NotificationType = "comment"
	NotificationInvitation   NotificationType = "invitation"
	NotificationStatusChange NotificationType = "status_change"
)

// Notification is an inbox entry shown to the signed-in user.
type Notification struct {
	ID          string           `json:"id"`
	OrderID     string           `json:"orderId"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	SenderName  string           `json:"senderName"`
	SenderEmail string           `json:"senderEmail"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"createdAt"`
}
