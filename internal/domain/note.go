package domain

import "time"

type AuthorRole string

const (
	AuthorRoleManufacturer AuthorRole = "manufacturer"
	AuthorRoleBuyer        AuthorRole = "buyer"
)

func (r AuthorRole) IsValid() bool {
	return r == AuthorRoleManufacturer || r == AuthorRoleBuyer
}

// Update is an append-only status note on an order.
type Update struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"orderId"`
	Message    string     `json:"message"`
	AuthorName string     `json:"authorName"`
	AuthorRole AuthorRole `json:"authorRole"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Comment has the same shape as Update but is a free-form remark kept in its
// own collection and read in chronological order.
type Comment struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"orderId"`
	Message    string     `json:"message"`
	AuthorName string     `json:"authorName"`
	AuthorRole AuthorRole `json:"authorRole"`
	CreatedAt  time.Time  `json:"createdAt"`
}
