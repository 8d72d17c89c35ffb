package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tastebud/internal/recipe/domain"
)

// Preference is a key-value row in the local preference store
type Preference struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Preference) TableName() string {
	return "preferences"
}

const (
	prefKeyFeaturedRecipeID = "featured_recipe_id"
	prefKeyFeaturedChosenAt = "featured_chosen_at"
)

// featuredPreferenceRepository implements FeaturedPreferenceRepository on top
// of the key-value preference table
type featuredPreferenceRepository struct {
	db *gorm.DB
}

// NewFeaturedPreferenceRepository creates a new GORM-based FeaturedPreferenceRepository
func NewFeaturedPreferenceRepository(db *gorm.DB) FeaturedPreferenceRepository {
	return &featuredPreferenceRepository{db: db}
}

func (r *featuredPreferenceRepository) Read() (*domain.DailyFeatured, error) {
	recipeID, ok, err := r.readInt(prefKeyFeaturedRecipeID)
	if err != nil || !ok {
		return nil, err
	}
	chosenAtMillis, ok, err := r.readInt(prefKeyFeaturedChosenAt)
	if err != nil || !ok {
		return nil, err
	}

	return &domain.DailyFeatured{
		RecipeID: int(recipeID),
		ChosenAt: time.UnixMilli(chosenAtMillis),
	}, nil
}

func (r *featuredPreferenceRepository) Write(recipeID int) error {
	now := time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertPreference(tx, prefKeyFeaturedRecipeID, strconv.Itoa(recipeID)); err != nil {
			return err
		}
		return upsertPreference(tx, prefKeyFeaturedChosenAt, strconv.FormatInt(now.UnixMilli(), 10))
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}

func (r *featuredPreferenceRepository) Clear() error {
	err := r.db.
		Where("key IN ?", []string{prefKeyFeaturedRecipeID, prefKeyFeaturedChosenAt}).
		Delete(&Preference{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}

func (r *featuredPreferenceRepository) readInt(key string) (int64, bool, error) {
	var pref Preference
	err := r.db.Where("key = ?", key).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	value, err := strconv.ParseInt(pref.Value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: corrupt preference %s: %v", domain.ErrLocalStore, key, err)
	}
	return value, true, nil
}

func upsertPreference(tx *gorm.DB, key, value string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Preference{Key: key, Value: value}).Error
}
