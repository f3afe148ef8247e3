// Package repository declares the storage contract for orders and their
// child records. Implementations live in the memory and sqlstore packages.
//
// Lookups for a missing id return *errors.NotFoundError. Child listings are
// sorted per entity: updates newest first, comments and stakeholders oldest
// first.
package repository

import (
	"context"
	"time"

	"garmentsync/internal/domain"
)

type OrderFilter struct {
	Status domain.OrderStatus
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type UpdateRepository interface {
	CreateUpdate(ctx context.Context, update domain.Update) (*domain.Update, error)
	FindUpdateByID(ctx context.Context, id string) (*domain.Update, error)
	ListUpdatesByOrder(ctx context.Context, orderID string) ([]domain.Update, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	FindCommentByID(ctx context.Context, id string) (*domain.Comment, error)
	ListCommentsByOrder(ctx context.Context, orderID string) ([]domain.Comment, error)
}

type StakeholderRepository interface {
	CreateStakeholder(ctx context.Context, stakeholder domain.Stakeholder) (*domain.Stakeholder, error)
	FindStakeholderByID(ctx context.Context, id string) (*domain.Stakeholder, error)
	ListStakeholdersByOrder(ctx context.Context, orderID string) ([]domain.Stakeholder, error)
	UpdateStakeholderPermissions(ctx context.Context, id string, permissions domain.Permission) (*domain.Stakeholder, error)
	DeleteStakeholder(ctx context.Context, id string) (bool, error)
}

type Store interface {
	OrderRepository
	UpdateRepository
	CommentRepository
	StakeholderRepository
	Close() error
}

// Clock stamps createdAt/updatedAt. Tests replace it to control ordering.
type Clock func() time.Time

// IDGenerator produces ids for records that do not bring their own.
type IDGenerator func() string

func SystemClock() time.Time {
	return time.Now().UTC()
}
