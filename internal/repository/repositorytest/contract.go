// Package repositorytest runs the same behavioural checks against every
// repository.Store implementation.
package repositorytest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garmentsync/internal/domain"
	"garmentsync/internal/errors"
	"garmentsync/internal/repository"
)

// Factory builds an empty store that stamps records with clock and ids.
type Factory func(t *testing.T, clock repository.Clock, ids repository.IDGenerator) repository.Store

var base = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

// SequenceClock returns the given instants in order and then keeps
// advancing one second past the last one.
func SequenceClock(instants ...time.Time) repository.Clock {
	var mu sync.Mutex
	i := 0
	last := base
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		if i < len(instants) {
			last = instants[i]
			i++
			return last
		}
		last = last.Add(time.Second)
		return last
	}
}

func CounterIDs(prefix string) repository.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}

func sampleOrder(id string) domain.Order {
	return domain.Order{
		ID:                id,
		BuyerName:         "Northwind Apparel",
		StyleNumber:       "NW-TEE-22",
		Quantity:          1200,
		EstimatedDelivery: time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC),
		BuyerEmail:        "orders@northwind.com",
	}
}

func Run(t *testing.T, newStore Factory) {
	t.Run("CreateOrder_DefaultsStatusAndStampsCreatedAt", func(t *testing.T) {
		store := newStore(t, SequenceClock(base), CounterIDs("id"))
		ctx := context.Background()

		created, err := store.CreateOrder(ctx, sampleOrder("PO-1"))
		require.NoError(t, err)
		assert.Equal(t, "PO-1", created.ID)
		assert.Equal(t, domain.OrderStatusReceived, created.Status)
		assert.True(t, created.CreatedAt.Equal(base))
		assert.False(t, created.CreatedAt.IsZero())

		found, err := store.FindOrderByID(ctx, "PO-1")
		require.NoError(t, err)
		assert.Equal(t, created.BuyerName, found.BuyerName)
		assert.Equal(t, created.Quantity, found.Quantity)
		assert.True(t, created.EstimatedDelivery.Equal(found.EstimatedDelivery))
	})

	t.Run("CreateOrder_DuplicateID", func(t *testing.T) {
		store := newStore(t, repository.SystemClock, CounterIDs("id"))
		ctx := context.Background()

		_, err := store.CreateOrder(ctx, sampleOrder("PO-1"))
		require.NoError(t, err)

		_, err = store.CreateOrder(ctx, sampleOrder("PO-1"))
		_, ok := errors.IsConflictError(err)
		assert.True(t, ok, "expected ConflictError, got %v", err)
	})

	t.Run("FindOrderByID_NotFound", func(t *testing.T) {
		store := newStore(t, repository.SystemClock, CounterIDs("id"))

		order, err := store.FindOrderByID(context.Background(), "missing")
		assert.Nil(t, order)
		_, ok := errors.IsNotFoundError(err)
		assert.True(t, ok)
	})

	t.Run("ListOrders_NewestFirstWithFilter", func(t *testing.T) {
		store := newStore(t, SequenceClock(base, base.Add(2*time.Hour), base.Add(time.Hour)), CounterIDs("id"))
		ctx := context.Background()

		_, err := store.CreateOrder(ctx, sampleOrder("PO-A"))
		require.NoError(t, err)
		shipped := sampleOrder("PO-B")
		shipped.Status = domain.OrderStatusShipped
		_, err = store.CreateOrder(ctx, shipped)
		require.NoError(t, err)
		_, err = store.CreateOrder(ctx, sampleOrder("PO-C"))
		require.NoError(t, err)

		all, err := store.ListOrders(ctx, repository.OrderFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"PO-B", "PO-C", "PO-A"}, orderIDs(all))

		filtered, err := store.ListOrders(ctx, repository.OrderFilter{Status: domain.OrderStatusShipped})
		require.NoError(t, err)
		assert.Equal(t, []string{"PO-B"}, orderIDs(filtered))
	})

	t.Run("UpdateOrderStatus_AcceptsUnknownLabel", func(t *testing.T) {
		store := newStore(t, SequenceClock(base, base.Add(time.Minute)), CounterIDs("id"))
		ctx := context.Background()

		_, err := store.CreateOrder(ctx, sampleOrder("PO-1"))
		require.NoError(t, err)

		updated, err := store.UpdateOrderStatus(ctx, "PO-1", domain.OrderStatus("on_hold"))
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatus("on_hold"), updated.Status)
		assert.True(t, updated.CreatedAt.Equal(base))
		assert.True(t, updated.UpdatedAt.Equal(base.Add(time.Minute)))

		found, err := store.FindOrderByID(ctx, "PO-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatus("on_hold"), found.Status)
	})

	t.Run("UpdateOrderStatus_NotFound", func(t *testing.T) {
		store := newStore(t, repository.SystemClock, CounterIDs("id"))

		_, err := store.UpdateOrderStatus(context.Background(), "missing", domain.OrderStatusShipped)
		_, ok := errors.IsNotFoundError(err)
		assert.True(t, ok)
	})

	t.Run("ListUpdatesByOrder_NewestFirst", func(t *testing.T) {
		t1, t2, t3 := base.Add(time.Hour), base.Add(3*time.Hour), base.Add(2*time.Hour)
		store := newStore(t, SequenceClock(t1, t2, t3, base.Add(4*time.Hour)), CounterIDs("upd"))
		ctx := context.Background()

		for _, msg := range []string{"first", "second", "third"} {
			_, err := store.CreateUpdate(ctx, domain.Update{
				OrderID: "PO-1", Message: msg, AuthorName: "Li Wei", AuthorRole: domain.AuthorRoleManufacturer,
			})
			require.NoError(t, err)
		}
		_, err := store.CreateUpdate(ctx, domain.Update{OrderID: "PO-2", Message: "other order", AuthorName: "x", AuthorRole: domain.AuthorRoleBuyer})
		require.NoError(t, err)

		updates, err := store.ListUpdatesByOrder(ctx, "PO-1")
		require.NoError(t, err)
		require.Len(t, updates, 3)

		messages := []string{updates[0].Message, updates[1].Message, updates[2].Message}
		assert.Equal(t, []string{"second", "third", "first"}, messages)
		for _, u := range updates {
			assert.Equal(t, "PO-1", u.OrderID)
		}

		found, err := store.FindUpdateByID(ctx, updates[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "second", found.Message)
	})

	t.Run("ListCommentsByOrder_OldestFirst", func(t *testing.T) {
		t1, t2, t3 := base.Add(time.Hour), base.Add(3*time.Hour), base.Add(2*time.Hour)
		store := newStore(t, SequenceClock(t1, t2, t3), CounterIDs("cmt"))
		ctx := context.Background()

		for _, msg := range []string{"first", "second", "third"} {
			_, err := store.CreateComment(ctx, domain.Comment{
				OrderID: "PO-1", Message: msg, AuthorName: "Ana", AuthorRole: domain.AuthorRoleBuyer,
			})
			require.NoError(t, err)
		}

		comments, err := store.ListCommentsByOrder(ctx, "PO-1")
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, []string{"first", "third", "second"},
			[]string{comments[0].Message, comments[1].Message, comments[2].Message})

		empty, err := store.ListCommentsByOrder(ctx, "PO-404")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("FindCommentByID_NotFound", func(t *testing.T) {
		store := newStore(t, repository.SystemClock, CounterIDs("cmt"))

		_, err := store.FindCommentByID(context.Background(), "missing")
		_, ok := errors.IsNotFoundError(err)
		assert.True(t, ok)
	})

	t.Run("Stakeholders_Lifecycle", func(t *testing.T) {
		store := newStore(t, SequenceClock(base.Add(time.Hour), base, base.Add(2*time.Hour)), CounterIDs("stk"))
		ctx := context.Background()

		first, err := store.CreateStakeholder(ctx, domain.Stakeholder{OrderID: "PO-1", Name: "Jane Doe", Email: "jane.doe@x.com"})
		require.NoError(t, err)
		assert.Equal(t, "stk-001", first.ID)
		assert.Equal(t, domain.RoleBuyer, first.Role)
		assert.Equal(t, domain.PermissionRead, first.Permissions)

		second, err := store.CreateStakeholder(ctx, domain.Stakeholder{
			OrderID: "PO-1", Name: "Li Wei", Email: "li@factory.cn",
			Role: domain.RoleFactoryManager, Permissions: domain.PermissionUpdate,
		})
		require.NoError(t, err)

		list, err := store.ListStakeholdersByOrder(ctx, "PO-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID, "stakeholders are listed oldest first")
		assert.Equal(t, first.ID, list[1].ID)

		updated, err := store.UpdateStakeholderPermissions(ctx, first.ID, domain.PermissionComment)
		require.NoError(t, err)
		assert.Equal(t, domain.PermissionComment, updated.Permissions)
		assert.True(t, updated.UpdatedAt.Equal(base.Add(2*time.Hour)))

		existed, err := store.DeleteStakeholder(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, existed)

		_, err = store.FindStakeholderByID(ctx, first.ID)
		_, ok := errors.IsNotFoundError(err)
		assert.True(t, ok)
	})

	t.Run("DeleteStakeholder_Missing", func(t *testing.T) {
		store := newStore(t, repository.SystemClock, CounterIDs("stk"))

		existed, err := store.DeleteStakeholder(context.Background(), "missing")
		assert.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("UpdateStakeholderPermissions_NotFound", func(t *testing.T) {
		store := newStore(t, repository.SystemClock, CounterIDs("stk"))

		_, err := store.UpdateStakeholderPermissions(context.Background(), "missing", domain.PermissionUpdate)
		_, ok := errors.IsNotFoundError(err)
		assert.True(t, ok)
	})
}

func orderIDs(orders []domain.Order) []string {
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}
