package usecase

import (
	"context"

	"tastebud/internal/recipe/domain"
)

// RecipeUsecase is the single facade the presentation layer talks to. It
// composes the remote API, the local relational cache, the cloud document
// store and the featured-recipe preference, and it alone decides which store
// is authoritative for a given read.
type RecipeUsecase interface {
	// GetRecipeByID returns the cached detail or fetches and caches it
	GetRecipeByID(ctx context.Context, id int) (*domain.RecipeDetail, error)
	// Search runs a remote search; results are never cached locally
	Search(ctx context.Context, query string, filters domain.SearchFilters, sort domain.SearchSort, page domain.SearchPage) (*domain.SearchResult, error)
	// Autocomplete returns remote title completions for a prefix
	Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error)
	// GetSuggestions returns the suggestion list for a key, refreshing it
	// over the network when its TTL has elapsed. Concurrent callers for the
	// same key share a single refresh.
	GetSuggestions(ctx context.Context, anchorID int, kind domain.CategoryKind, value string) ([]domain.SuggestionEntry, error)

	// AddFavorite favorites a recipe for the active user
	AddFavorite(ctx context.Context, recipeID int) error
	// RemoveFavorite unfavorites a recipe; removing twice is a no-op
	RemoveFavorite(ctx context.Context, recipeID int) error
	// IsFavorite streams whether the active user has favorited the recipe
	IsFavorite(ctx context.Context, recipeID int) (<-chan bool, error)
	// ObserveFavorites streams the active user's favorites and follows
	// identity transitions: each sign-in, sign-out or account switch tears
	// down the previous cloud stream and opens one for the new identity.
	ObserveFavorites(ctx context.Context) (<-chan domain.FavoritesUpdate, error)
	// GetFavorites returns a one-shot snapshot of the active user's favorites
	GetFavorites(ctx context.Context) ([]domain.FavoriteRecord, error)

	// GetFeaturedRecipeForToday returns today's featured recipe, selecting
	// and persisting a new one when no valid selection exists
	GetFeaturedRecipeForToday(ctx context.Context) (*domain.RecipeDetail, error)

	// LogCookedDish appends a recipe to the active user's cook log
	LogCookedDish(ctx context.Context, recipeID int, notes string) (*domain.CookedDish, error)
	// GetCookLog returns the active user's cook log, newest first
	GetCookLog(ctx context.Context, limit int) ([]domain.CookedDish, error)

	// ClearLocalData wipes the recipe cache, suggestion cache and featured
	// preference; cloud data is untouched
	ClearLocalData() error
}
