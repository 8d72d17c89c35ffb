package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"tastebud/internal/recipe/domain"
)

// suggestionCacheRepository implements SuggestionCacheRepository using GORM
type suggestionCacheRepository struct {
	db *gorm.DB
}

// NewSuggestionCacheRepository creates a new GORM-based SuggestionCacheRepository
func NewSuggestionCacheRepository(db *gorm.DB) SuggestionCacheRepository {
	return &suggestionCacheRepository{db: db}
}

func (r *suggestionCacheRepository) GetList(anchorID int, kind domain.CategoryKind, value string) ([]domain.SuggestionEntry, error) {
	var entries []domain.SuggestionEntry
	err := r.db.
		Where("anchor_recipe_id = ? AND category_kind = ? AND category_value = ?", anchorID, kind, value).
		Order("display_order ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return entries, nil
}

func (r *suggestionCacheRepository) PutList(anchorID int, kind domain.CategoryKind, value string, entries []domain.SuggestionEntry) error {
	now := time.Now()

	// Delete-then-insert inside one transaction so a reader never observes a
	// mix of old and new entries.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("anchor_recipe_id = ? AND category_kind = ? AND category_value = ?", anchorID, kind, value).
			Delete(&domain.SuggestionEntry{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].AnchorRecipeID = anchorID
			entries[i].CategoryKind = kind
			entries[i].CategoryValue = value
			entries[i].DisplayOrder = i
			entries[i].CachedAt = now
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}

func (r *suggestionCacheRepository) FreshnessTimestamp(anchorID int, kind domain.CategoryKind, value string) (*time.Time, error) {
	var entry domain.SuggestionEntry
	err := r.db.
		Where("anchor_recipe_id = ? AND category_kind = ? AND category_value = ?", anchorID, kind, value).
		Order("display_order ASC").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return &entry.CachedAt, nil
}

func (r *suggestionCacheRepository) ClearForAnchor(anchorID int) error {
	if err := r.db.Delete(&domain.SuggestionEntry{}, "anchor_recipe_id = ?", anchorID).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}

func (r *suggestionCacheRepository) ClearAll() error {
	if err := r.db.Where("1 = 1").Delete(&domain.SuggestionEntry{}).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}
