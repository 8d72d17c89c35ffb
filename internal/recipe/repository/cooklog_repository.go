package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"tastebud/internal/recipe/domain"
)

// firestoreCookLogRepository implements CookLogRepository on Firestore.
// Entries live at users/{uid}/cookLog/{uuid} and are ordered by the
// server-assigned cookedAt timestamp.
type firestoreCookLogRepository struct {
	store *firestore.Client
}

// NewCookLogRepository creates a Firestore-based CookLogRepository
func NewCookLogRepository(store *firestore.Client) CookLogRepository {
	return &firestoreCookLogRepository{store: store}
}

func (r *firestoreCookLogRepository) collection(userID string) *firestore.CollectionRef {
	return r.store.Collection("users").Doc(userID).Collection("cookLog")
}

func (r *firestoreCookLogRepository) LogDish(ctx context.Context, userID string, dish domain.CookedDish) (*domain.CookedDish, error) {
	if userID == "" {
		return nil, domain.ErrInvalidState
	}

	dish.ID = uuid.New().String()
	dish.UserID = userID

	if _, err := r.collection(userID).Doc(dish.ID).Set(ctx, dish); err != nil {
		return nil, mapCloudErr("saving cook log entry", err)
	}
	return &dish, nil
}

func (r *firestoreCookLogRepository) ListDishes(ctx context.Context, userID string, limit int) ([]domain.CookedDish, error) {
	if userID == "" {
		return nil, domain.ErrInvalidState
	}

	query := r.collection(userID).OrderBy("cookedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	docs := query.Documents(ctx)
	defer docs.Stop()

	var dishes []domain.CookedDish
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			return dishes, nil
		}
		if err != nil {
			return nil, mapCloudErr("reading cook log", err)
		}
		var dish domain.CookedDish
		if err := doc.DataTo(&dish); err != nil {
			return nil, mapCloudErr("decoding cook log entry", err)
		}
		dishes = append(dishes, dish)
	}
}
