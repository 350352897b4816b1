package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/repository"
	"mediavault/pkg/errors"
	"mediavault/pkg/logger"
)

const mediaCollection = "media"

type firestoreMediaRepository struct {
	client *firestore.Client
}

func NewFirestoreMediaRepository(client *firestore.Client) repository.MediaRepository {
	return &firestoreMediaRepository{
		client: client,
	}
}

func (r *firestoreMediaRepository) Create(ctx context.Context, media *entity.Media) error {
	doc := r.client.Collection(mediaCollection).NewDoc()
	media.ID = doc.ID
	if media.CreatedAt.IsZero() {
		media.CreatedAt = time.Now()
	}
	if media.Likes == nil {
		media.Likes = []string{}
	}

	_, err := doc.Create(ctx, media)
	if err != nil {
		return errors.Internal("Failed to create media", err)
	}
	return nil
}

func (r *firestoreMediaRepository) GetByID(ctx context.Context, id string) (*entity.Media, error) {
	doc, err := r.client.Collection(mediaCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Media", err)
		}
		return nil, errors.Internal("Failed to get media", err)
	}

	var media entity.Media
	if err := doc.DataTo(&media); err != nil {
		return nil, errors.Internal("Failed to parse media", err)
	}

	return &media, nil
}

func (r *firestoreMediaRepository) List(ctx context.Context) ([]*entity.Media, error) {
	query := r.client.Collection(mediaCollection).OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreMediaRepository) ListByUploader(ctx context.Context, userID string) ([]*entity.Media, error) {
	query := r.client.Collection(mediaCollection).
		Where("uploadedBy", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreMediaRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Media, error) {
	defer iter.Stop()

	var mediaList []*entity.Media
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate media", err)
		}

		var media entity.Media
		if err := doc.DataTo(&media); err != nil {
			logger.Error("Failed to parse media document %s: %v", doc.Ref.ID, err)
			continue
		}
		mediaList = append(mediaList, &media)
	}

	return mediaList, nil
}

// AddLike runs read-check-write inside a Firestore transaction so two
// concurrent likes by the same user cannot both commit.
func (r *firestoreMediaRepository) AddLike(ctx context.Context, mediaID, userID string) (int, error) {
	docRef := r.client.Collection(mediaCollection).Doc(mediaID)

	var likeCount int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Media", err)
			}
			return errors.Internal("Failed to get media", err)
		}

		var media entity.Media
		if err := doc.DataTo(&media); err != nil {
			return errors.Internal("Failed to parse media", err)
		}

		if media.IsLikedBy(userID) {
			return errors.BadRequest("You already liked this media", nil)
		}

		likeCount = media.LikeCount() + 1
		return tx.Update(docRef, []firestore.Update{
			{Path: "likes", Value: firestore.ArrayUnion(userID)},
		})
	})
	if err != nil {
		return 0, err
	}

	return likeCount, nil
}

func (r *firestoreMediaRepository) RemoveLike(ctx context.Context, mediaID, userID string) (int, error) {
	docRef := r.client.Collection(mediaCollection).Doc(mediaID)

	var likeCount int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Media", err)
			}
			return errors.Internal("Failed to get media", err)
		}

		var media entity.Media
		if err := doc.DataTo(&media); err != nil {
			return errors.Internal("Failed to parse media", err)
		}

		if !media.IsLikedBy(userID) {
			return errors.BadRequest("You haven't liked this media", nil)
		}

		likeCount = media.LikeCount() - 1
		return tx.Update(docRef, []firestore.Update{
			{Path: "likes", Value: firestore.ArrayRemove(userID)},
		})
	})
	if err != nil {
		return 0, err
	}

	return likeCount, nil
}
