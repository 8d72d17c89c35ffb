package repository

import (
	"context"

	"tastebud/internal/recipe/domain"
)

// FavoritesRepository is the per-user favorites collection in the cloud
// document store. It is the sole source of truth for favorites; nothing is
// mirrored locally. All methods take an explicit userID so the caller owns
// the decision of which identity a stream belongs to.
type FavoritesRepository interface {
	// Observe streams the user's favorites ordered by addedAt descending.
	// It emits a snapshot immediately and again on every change, and closes
	// the channel when ctx is cancelled. A stream is bound to one userID for
	// its whole life; identity changes require a new Observe call.
	Observe(ctx context.Context, userID string) (<-chan domain.FavoritesUpdate, error)
	// Add upserts a favorite record for the user
	Add(ctx context.Context, userID string, record domain.FavoriteRecord) error
	// Remove deletes a favorite; removing an absent record is a no-op
	Remove(ctx context.Context, userID string, recipeID int) error
	// IsFavorite streams whether the recipe is currently favorited
	IsFavorite(ctx context.Context, userID string, recipeID int) (<-chan bool, error)
}

// CookLogRepository is the per-user cooked-dish log collection in the cloud
// document store.
type CookLogRepository interface {
	// LogDish appends an entry to the user's cook log
	LogDish(ctx context.Context, userID string, dish domain.CookedDish) (*domain.CookedDish, error)
	// ListDishes returns the user's log ordered by cookedAt descending
	ListDishes(ctx context.Context, userID string, limit int) ([]domain.CookedDish, error)
}
