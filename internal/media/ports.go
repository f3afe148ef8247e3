package media

import (
	"context"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
)

type UseCase interface {
	List(ctx context.Context, filter Filter) ([]domain.MediaFile, error)
	Get(ctx context.Context, id string) (*domain.MediaFile, error)
	Create(ctx context.Context, req dto.CreateMediaRequest) (*domain.MediaFile, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	List(ctx context.Context, filter Filter) ([]domain.MediaFile, error)
	FindByID(ctx context.Context, id string) (*domain.MediaFile, error)
	Create(ctx context.Context, file domain.MediaFile) (*domain.MediaFile, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	OrderID  string
	Category domain.MediaCategory
}
