package repository

import (
	"context"

	"tastebud/internal/recipe/domain"
)

// RemoteRecipeClient is the stateless remote recipe API. Implemented by
// pkg/spoonacular; stubbed in tests. No caching or retry behavior is allowed
// behind this interface.
type RemoteRecipeClient interface {
	// FetchRandom fetches count random recipes, optionally tag-constrained
	FetchRandom(ctx context.Context, count int, tags []string) ([]*domain.RecipeDetail, error)
	// Search runs a remote search and returns one page plus the total count
	Search(ctx context.Context, query string, filters domain.SearchFilters, sort domain.SearchSort, page domain.SearchPage) ([]domain.RecipeSummary, int, error)
	// Autocomplete returns recipe title completions for a prefix
	Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error)
	// FetchDetail fetches the full information for a single recipe
	FetchDetail(ctx context.Context, id int, includeNutrition bool) (*domain.RecipeDetail, error)
}
