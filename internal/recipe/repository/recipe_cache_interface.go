package repository

import "tastebud/internal/recipe/domain"

// RecipeCacheRepository is the local store of fetched recipe detail
// snapshots. Entries have no TTL; they stay valid until replaced by a refetch
// or removed by an explicit clear.
type RecipeCacheRepository interface {
	// Get retrieves a cached detail by recipe id, (nil, nil) on miss
	Get(id int) (*domain.RecipeDetail, error)
	// Put upserts a detail snapshot, replacing all fields
	Put(detail *domain.RecipeDetail) error
	// Delete removes a single cached detail
	Delete(id int) error
	// Clear removes every cached detail
	Clear() error
}
