package media

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"garmentsync/internal/domain"
	apperrors "garmentsync/internal/errors"
)

// catalog keeps media metadata in process memory.
type catalog struct {
	mu    sync.RWMutex
	files map[string]domain.MediaFile
	now   func() time.Time
}

func NewCatalog(seed ...domain.MediaFile) Repository {
	c := &catalog{
		files: make(map[string]domain.MediaFile, len(seed)),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, f := range seed {
		c.files[f.ID] = f
	}
	return c
}

func (c *catalog) List(_ context.Context, filter Filter) ([]domain.MediaFile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []domain.MediaFile{}
	for _, f := range c.files {
		if filter.OrderID != "" && f.OrderID != filter.OrderID {
			continue
		}
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (c *catalog) FindByID(_ context.Context, id string) (*domain.MediaFile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.files[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("media file with id %s not found", id))
	}
	return &f, nil
}

func (c *catalog) Create(_ context.Context, file domain.MediaFile) (*domain.MediaFile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	file.ID = uuid.NewString()
	file.UploadedAt = c.now()
	c.files[file.ID] = file
	return &file, nil
}

func (c *catalog) Delete(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.files[id]; !ok {
		return false, nil
	}
	delete(c.files, id)
	return true, nil
}
