package usecase

import (
	"context"
	"time"

	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/repository"
	"mediavault/pkg/errors"
)

type MediaUseCase struct {
	mediaRepo repository.MediaRepository
}

func NewMediaUseCase(mediaRepo repository.MediaRepository) *MediaUseCase {
	return &MediaUseCase{
		mediaRepo: mediaRepo,
	}
}

type CreateMediaInput struct {
	Title       string
	Description string
	URL         string
	ObjectName  string
	Type        entity.MediaType
	UploadedBy  string
}

func (u *MediaUseCase) CreateMedia(ctx context.Context, input CreateMediaInput) (*entity.Media, error) {
	if input.Title == "" || input.Description == "" || input.URL == "" ||
		input.ObjectName == "" || input.Type == "" || input.UploadedBy == "" {
		return nil, errors.BadRequest("All fields are required", nil)
	}

	if input.Type != entity.MediaTypeVideo && input.Type != entity.MediaTypeAudio {
		return nil, errors.BadRequest("Media type must be video or audio", nil)
	}

	media := &entity.Media{
		Title:       input.Title,
		Description: input.Description,
		URL:         input.URL,
		ObjectName:  input.ObjectName,
		Type:        input.Type,
		UploadedBy:  input.UploadedBy,
		Likes:       []string{},
		CreatedAt:   time.Now(),
	}

	if err := u.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}

	return media, nil
}

func (u *MediaUseCase) GetMedia(ctx context.Context, id string) (*entity.Media, error) {
	return u.mediaRepo.GetByID(ctx, id)
}

func (u *MediaUseCase) ListMedia(ctx context.Context) ([]*entity.Media, error) {
	return u.mediaRepo.List(ctx)
}

func (u *MediaUseCase) ListMediaByUploader(ctx context.Context, userID string) ([]*entity.Media, error) {
	return u.mediaRepo.ListByUploader(ctx, userID)
}

func (u *MediaUseCase) LikeMedia(ctx context.Context, mediaID, userID string) (int, error) {
	return u.mediaRepo.AddLike(ctx, mediaID, userID)
}

func (u *MediaUseCase) UnlikeMedia(ctx context.Context, mediaID, userID string) (int, error) {
	return u.mediaRepo.RemoveLike(ctx, mediaID, userID)
}
