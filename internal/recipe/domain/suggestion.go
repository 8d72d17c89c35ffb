package domain

import "time"

// CategoryKind is the dimension a suggestion list is anchored on
type CategoryKind string

const (
	CategoryKindCuisine  CategoryKind = "cuisine"
	CategoryKindDiet     CategoryKind = "diet"
	CategoryKindDishType CategoryKind = "dish_type"
)

// SuggestionEntry is one suggested recipe within an ordered suggestion list.
// A list is identified by (AnchorRecipeID, CategoryKind, CategoryValue) and is
// always replaced as a whole; DisplayOrder is unique and contiguous from zero
// within a list.
type SuggestionEntry struct {
	AnchorRecipeID    int          `json:"anchor_recipe_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryKind      CategoryKind `json:"category_kind" gorm:"primaryKey;size:32"`
	CategoryValue     string       `json:"category_value" gorm:"primaryKey;size:64"`
	SuggestedRecipeID int          `json:"suggested_recipe_id" gorm:"primaryKey;autoIncrement:false"`
	Title             string       `json:"title" gorm:"not null"`
	ImageURL          string       `json:"image_url"`
	ReadyInMinutes    int          `json:"ready_in_minutes"`
	DisplayOrder      int          `json:"display_order" gorm:"not null"`
	CachedAt          time.Time    `json:"cached_at" gorm:"index"`
}

// TableName returns the table name for GORM
func (SuggestionEntry) TableName() string {
	return "suggestion_entries"
}

// Summarize projects a suggestion entry down to the list shape
func (s *SuggestionEntry) Summarize() RecipeSummary {
	return RecipeSummary{
		ID:             s.SuggestedRecipeID,
		Title:          s.Title,
		ImageURL:       s.ImageURL,
		ReadyInMinutes: s.ReadyInMinutes,
	}
}
