package repository

import "tastebud/internal/recipe/domain"

// FeaturedPreferenceRepository is the single-value store for today's
// featured recipe. Validity ("is this still today's pick") is computed by the
// caller with domain.IsValidForToday, not here.
type FeaturedPreferenceRepository interface {
	// Read returns the stored selection, (nil, nil) when none is stored
	Read() (*domain.DailyFeatured, error)
	// Write stores recipeID as the selection with chosenAt = now
	Write(recipeID int) error
	// Clear removes the stored selection
	Clear() error
}
