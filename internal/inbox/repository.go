package inbox

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"garmentsync/internal/domain"
	apperrors "garmentsync/internal/errors"
)

type mailbox struct {
	mu      sync.RWMutex
	entries map[string]domain.Notification
}

func NewMailbox(seed ...domain.Notification) Repository {
	m := &mailbox{entries: make(map[string]domain.Notification, len(seed))}
	for _, n := range seed {
		m.entries[n.ID] = n
	}
	return m
}

// List returns entries newest first.
func (m *mailbox) List(_ context.Context, unreadOnly bool) ([]domain.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []domain.Notification{}
	for _, n := range m.entries {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mailbox) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.entries[id]
	if !ok {
		return nil, notFound(id)
	}
	return &n, nil
}

func (m *mailbox) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.entries[id]
	if !ok {
		return nil, notFound(id)
	}
	n.Read = true
	m.entries[id] = n
	return &n, nil
}

func notFound(id string) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("notification with id %s not found", id))
}
