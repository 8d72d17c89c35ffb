package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tastebud/internal/recipe/domain"
)

// recipeCacheRepository implements RecipeCacheRepository using GORM
type recipeCacheRepository struct {
	db *gorm.DB
}

// NewRecipeCacheRepository creates a new GORM-based RecipeCacheRepository
func NewRecipeCacheRepository(db *gorm.DB) RecipeCacheRepository {
	return &recipeCacheRepository{db: db}
}

func (r *recipeCacheRepository) Get(id int) (*domain.RecipeDetail, error) {
	var detail domain.RecipeDetail
	err := r.db.Where("id = ?", id).First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return &detail, nil
}

func (r *recipeCacheRepository) Put(detail *domain.RecipeDetail) error {
	// Full replacement on conflict: a refetched snapshot overwrites every
	// column, it is never merged with the previous one.
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(detail).Error
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}

func (r *recipeCacheRepository) Delete(id int) error {
	if err := r.db.Delete(&domain.RecipeDetail{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}

func (r *recipeCacheRepository) Clear() error {
	if err := r.db.Where("1 = 1").Delete(&domain.RecipeDetail{}).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLocalStore, err)
	}
	return nil
}
