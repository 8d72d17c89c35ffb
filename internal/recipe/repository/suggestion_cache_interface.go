package repository

import (
	"time"

	"tastebud/internal/recipe/domain"
)

// SuggestionCacheRepository stores ranked suggestion lists keyed by
// (anchor recipe, category kind, category value). Lists are replaced
// atomically; readers never observe a partially written list. TTL policy is
// evaluated by the caller against FreshnessTimestamp, not here.
type SuggestionCacheRepository interface {
	// GetList returns a cached list ordered by display order, empty on miss
	GetList(anchorID int, kind domain.CategoryKind, value string) ([]domain.SuggestionEntry, error)
	// PutList replaces the list for a key in a single transaction
	PutList(anchorID int, kind domain.CategoryKind, value string, entries []domain.SuggestionEntry) error
	// FreshnessTimestamp returns when a list was cached, nil when absent
	FreshnessTimestamp(anchorID int, kind domain.CategoryKind, value string) (*time.Time, error)
	// ClearForAnchor removes every list anchored on a recipe
	ClearForAnchor(anchorID int) error
	// ClearAll removes every cached suggestion list
	ClearAll() error
}
