// Package memory is the process-lifetime Store used in development and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"garmentsync/internal/domain"
	"garmentsync/internal/errors"
	"garmentsync/internal/repository"
)

type Option func(*Store)

func WithClock(clock repository.Clock) Option {
	return func(s *Store) { s.now = clock }
}

func WithIDGenerator(gen repository.IDGenerator) Option {
	return func(s *Store) { s.newID = gen }
}

// Store keeps every collection in maps keyed by id. Concurrent writers to the
// same record are serialised but not versioned: the last write wins.
type Store struct {
	mu           sync.RWMutex
	orders       map[string]domain.Order
	updates      map[string]domain.Update
	comments     map[string]domain.Comment
	stakeholders map[string]domain.Stakeholder

	// inserted breaks createdAt ties by insertion order.
	inserted map[string]uint64
	seq      uint64

	now   repository.Clock
	newID repository.IDGenerator
}

var _ repository.Store = (*Store)(nil)

func New(opts ...Option) *Store {
	s := &Store{
		orders:       make(map[string]domain.Order),
		updates:      make(map[string]domain.Update),
		comments:     make(map[string]domain.Comment),
		stakeholders: make(map[string]domain.Stakeholder),
		inserted:     make(map[string]uint64),
		now:          repository.SystemClock,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() error { return nil }

// track must be called with mu held.
func (s *Store) track(id string) {
	s.seq++
	s.inserted[id] = s.seq
}

// Orders

func (s *Store) CreateOrder(_ context.Context, order domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[order.ID]; exists {
		return nil, errors.NewConflictError(fmt.Sprintf("order with id %s already exists", order.ID))
	}

	order = order.WithDefaults()
	order.CreatedAt = s.now()
	order.UpdatedAt = order.CreatedAt
	s.orders[order.ID] = order
	s.track(order.ID)

	return &order, nil
}

func (s *Store) FindOrderByID(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	return &order, nil
}

func (s *Store) ListOrders(_ context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return s.inserted[out[i].ID] > s.inserted[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	order.Status = status
	order.UpdatedAt = s.now()
	s.orders[id] = order

	return &order, nil
}

// Updates

func (s *Store) CreateUpdate(_ context.Context, update domain.Update) (*domain.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	update.ID = s.newID()
	update.CreatedAt = s.now()
	s.updates[update.ID] = update
	s.track(update.ID)

	return &update, nil
}

func (s *Store) FindUpdateByID(_ context.Context, id string) (*domain.Update, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	update, ok := s.updates[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("update with id %s not found", id))
	}
	return &update, nil
}

func (s *Store) ListUpdatesByOrder(_ context.Context, orderID string) ([]domain.Update, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Update{}
	for _, u := range s.updates {
		if u.OrderID == orderID {
			out = append(out, u)
		}
	}
	// Activity feed: newest first.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return s.inserted[out[i].ID] > s.inserted[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Comments

func (s *Store) CreateComment(_ context.Context, comment domain.Comment) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.newID()
	comment.CreatedAt = s.now()
	s.comments[comment.ID] = comment
	s.track(comment.ID)

	return &comment, nil
}

func (s *Store) FindCommentByID(_ context.Context, id string) (*domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("comment with id %s not found", id))
	}
	return &comment, nil
}

func (s *Store) ListCommentsByOrder(_ context.Context, orderID string) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Comment{}
	for _, c := range s.comments {
		if c.OrderID == orderID {
			out = append(out, c)
		}
	}
	// Thread: reading order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return s.inserted[out[i].ID] < s.inserted[out[j].ID]
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Stakeholders

func (s *Store) CreateStakeholder(_ context.Context, stakeholder domain.Stakeholder) (*domain.Stakeholder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stakeholder = stakeholder.WithDefaults()
	stakeholder.ID = s.newID()
	stakeholder.CreatedAt = s.now()
	stakeholder.UpdatedAt = stakeholder.CreatedAt
	s.stakeholders[stakeholder.ID] = stakeholder
	s.track(stakeholder.ID)

	return &stakeholder, nil
}

func (s *Store) FindStakeholderByID(_ context.Context, id string) (*domain.Stakeholder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stakeholder, ok := s.stakeholders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("stakeholder with id %s not found", id))
	}
	return &stakeholder, nil
}

func (s *Store) ListStakeholdersByOrder(_ context.Context, orderID string) ([]domain.Stakeholder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Stakeholder{}
	for _, st := range s.stakeholders {
		if st.OrderID == orderID {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return s.inserted[out[i].ID] < s.inserted[out[j].ID]
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateStakeholderPermissions(_ context.Context, id string, permissions domain.Permission) (*domain.Stakeholder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stakeholder, ok := s.stakeholders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("stakeholder with id %s not found", id))
	}
	stakeholder.Permissions = permissions
	stakeholder.UpdatedAt = s.now()
	s.stakeholders[id] = stakeholder

	return &stakeholder, nil
}

func (s *Store) DeleteStakeholder(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stakeholders[id]; !ok {
		return false, nil
	}
	delete(s.stakeholders, id)
	delete(s.inserted, id)
	return true, nil
}
