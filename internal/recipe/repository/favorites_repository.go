package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tastebud/internal/recipe/domain"
)

// firestoreFavoritesRepository implements FavoritesRepository on Firestore.
// Documents live at users/{uid}/favorites/recipe-{id}; the document id keyed
// by recipe id is unique per user, so a user favorites a recipe at most once
// and two users never collide.
type firestoreFavoritesRepository struct {
	store *firestore.Client
}

// NewFavoritesRepository creates a Firestore-based FavoritesRepository
func NewFavoritesRepository(store *firestore.Client) FavoritesRepository {
	return &firestoreFavoritesRepository{store: store}
}

func (r *firestoreFavoritesRepository) collection(userID string) *firestore.CollectionRef {
	return r.store.Collection("users").Doc(userID).Collection("favorites")
}

func (r *firestoreFavoritesRepository) doc(userID string, recipeID int) *firestore.DocumentRef {
	return r.collection(userID).Doc(fmt.Sprintf("recipe-%d", recipeID))
}

func (r *firestoreFavoritesRepository) Observe(ctx context.Context, userID string) (<-chan domain.FavoritesUpdate, error) {
	if userID == "" {
		return nil, domain.ErrInvalidState
	}

	updates := make(chan domain.FavoritesUpdate, 1)
	snaps := r.collection(userID).OrderBy("addedAt", firestore.Desc).Snapshots(ctx)

	go func() {
		defer close(updates)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || ctx.Err() != nil {
					return
				}
				updates <- domain.FavoritesUpdate{Err: mapCloudErr("observing favorites", err)}
				return
			}

			records, err := readFavoriteDocs(snap.Documents)
			if err != nil {
				updates <- domain.FavoritesUpdate{Err: err}
				return
			}

			select {
			case updates <- domain.FavoritesUpdate{Records: records}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func (r *firestoreFavoritesRepository) Add(ctx context.Context, userID string, record domain.FavoriteRecord) error {
	if userID == "" {
		return domain.ErrInvalidState
	}
	record.UserID = userID
	if _, err := r.doc(userID, record.RecipeID).Set(ctx, record); err != nil {
		return mapCloudErr("saving favorite", err)
	}
	return nil
}

func (r *firestoreFavoritesRepository) Remove(ctx context.Context, userID string, recipeID int) error {
	if userID == "" {
		return domain.ErrInvalidState
	}
	// Delete of an absent document succeeds, so removal is idempotent.
	if _, err := r.doc(userID, recipeID).Delete(ctx); err != nil {
		return mapCloudErr("deleting favorite", err)
	}
	return nil
}

func (r *firestoreFavoritesRepository) IsFavorite(ctx context.Context, userID string, recipeID int) (<-chan bool, error) {
	if userID == "" {
		return nil, domain.ErrInvalidState
	}

	states := make(chan bool, 1)
	snaps := r.doc(userID, recipeID).Snapshots(ctx)

	go func() {
		defer close(states)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled && ctx.Err() == nil {
					log.Printf("[FAVORITES] isFavorite stream for user %s: %v", userID, err)
				}
				return
			}
			select {
			case states <- snap.Exists():
			case <-ctx.Done():
				return
			}
		}
	}()

	return states, nil
}

func readFavoriteDocs(docs *firestore.DocumentIterator) ([]domain.FavoriteRecord, error) {
	var records []domain.FavoriteRecord
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			return records, nil
		}
		if err != nil {
			return nil, mapCloudErr("reading favorites", err)
		}
		var record domain.FavoriteRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("decoding favorite %s: %w", doc.Ref.ID, err)
		}
		records = append(records, record)
	}
}

// mapCloudErr folds Firestore errors into the domain taxonomy. Permission
// problems are kept distinct because they signal a broken session, which the
// caller must not paper over with a retry.
func mapCloudErr(op string, err error) error {
	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %s: %v", domain.ErrPermissionDenied, op, err)
	case codes.NotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, op)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteUnavailable, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
