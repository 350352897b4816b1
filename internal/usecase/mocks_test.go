package usecase

import (
	"context"
	"fmt"
	"sync"

	"mediavault/internal/domain/entity"
	"mediavault/pkg/errors"
)

// memoryMediaRepository is an in-memory stand-in for the Firestore repository.
type memoryMediaRepository struct {
	mu    sync.Mutex
	seq   int
	items map[string]*entity.Media
}

func newMemoryMediaRepository() *memoryMediaRepository {
	return &memoryMediaRepository{items: make(map[string]*entity.Media)}
}

func (r *memoryMediaRepository) Create(ctx context.Context, media *entity.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	media.ID = fmt.Sprintf("media-%d", r.seq)

	stored := *media
	r.items[media.ID] = &stored
	return nil
}

func (r *memoryMediaRepository) GetByID(ctx context.Context, id string) (*entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	media, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Media", nil)
	}

	copied := *media
	copied.Likes = append([]string(nil), media.Likes...)
	return &copied, nil
}

func (r *memoryMediaRepository) List(ctx context.Context) ([]*entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var mediaList []*entity.Media
	for _, media := range r.items {
		copied := *media
		mediaList = append(mediaList, &copied)
	}
	return mediaList, nil
}

func (r *memoryMediaRepository) ListByUploader(ctx context.Context, userID string) ([]*entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var mediaList []*entity.Media
	for _, media := range r.items {
		if media.UploadedBy == userID {
			copied := *media
			mediaList = append(mediaList, &copied)
		}
	}
	return mediaList, nil
}

func (r *memoryMediaRepository) AddLike(ctx context.Context, mediaID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	media, ok := r.items[mediaID]
	if !ok {
		return 0, errors.NotFound("Media", nil)
	}
	if media.IsLikedBy(userID) {
		return 0, errors.BadRequest("You already liked this media", nil)
	}

	media.Likes = append(media.Likes, userID)
	return len(media.Likes), nil
}

func (r *memoryMediaRepository) RemoveLike(ctx context.Context, mediaID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	media, ok := r.items[mediaID]
	if !ok {
		return 0, errors.NotFound("Media", nil)
	}
	if !media.IsLikedBy(userID) {
		return 0, errors.BadRequest("You haven't liked this media", nil)
	}

	var likes []string
	for _, uid := range media.Likes {
		if uid != userID {
			likes = append(likes, uid)
		}
	}
	media.Likes = likes
	return len(media.Likes), nil
}
