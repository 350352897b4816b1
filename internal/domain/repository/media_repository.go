package repository

import (
	"context"

	"mediavault/internal/domain/entity"
)

type MediaRepository interface {
	// Create persists a new media document and fills in the store-assigned ID.
	Create(ctx context.Context, media *entity.Media) error

	// GetByID returns one media document or a NotFound error.
	GetByID(ctx context.Context, id string) (*entity.Media, error)

	// List returns all media documents, newest first.
	List(ctx context.Context) ([]*entity.Media, error)

	// ListByUploader returns all media uploaded by one user, newest first.
	ListByUploader(ctx context.Context, userID string) ([]*entity.Media, error)

	// AddLike atomically adds userID to the likes set and returns the new
	// like count. Fails if the user already liked the media.
	AddLike(ctx context.Context, mediaID, userID string) (int, error)

	// RemoveLike atomically removes userID from the likes set and returns the
	// new like count. Fails if the user has not liked the media.
	RemoveLike(ctx context.Context, mediaID, userID string) (int, error)
}
