package media

import (
	"context"
	"fmt"
	"strings"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	apperrors "garmentsync/internal/errors"
)

type useCase struct {
	repo Repository
}

func NewUseCase(repo Repository) UseCase {
	return &useCase{repo: repo}
}

func (uc *useCase) List(ctx context.Context, filter Filter) ([]domain.MediaFile, error) {
	return uc.repo.List(ctx, filter)
}

func (uc *useCase) Get(ctx context.Context, id string) (*domain.MediaFile, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *useCase) Create(ctx context.Context, req dto.CreateMediaRequest) (*domain.MediaFile, error) {
	return uc.repo.Create(ctx, domain.MediaFile{
		OrderID:    strings.TrimSpace(req.OrderID),
		Filename:   strings.TrimSpace(req.Filename),
		Size:       req.Size,
		MimeType:   req.MimeType,
		Category:   domain.MediaCategory(req.Category),
		UploadedBy: strings.TrimSpace(req.UploadedBy),
	})
}

func (uc *useCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError(fmt.Sprintf("media file with id %s not found", id))
	}
	return nil
}
