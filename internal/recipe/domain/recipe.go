package domain

import "time"

// RecipeSource identifies where a recipe originally came from
type RecipeSource string

const (
	RecipeSourceSpoonacular RecipeSource = "spoonacular"
	RecipeSourceUser        RecipeSource = "user"
)

// Ingredient is a single ingredient line of a recipe
type Ingredient struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// InstructionStep is one numbered step of a recipe's instructions
type InstructionStep struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// RecipeSummary is the lightweight shape returned by search and used for lists
type RecipeSummary struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	ImageURL       string `json:"image_url"`
	ImageType      string `json:"image_type,omitempty"`
	ReadyInMinutes int    `json:"ready_in_minutes"`
}

// RecipeDetail is a full recipe snapshot cached locally after a fetch.
// It is replaced wholesale on refetch, never merged.
type RecipeDetail struct {
	ID             int               `json:"id" gorm:"primaryKey"`
	Title          string            `json:"title" gorm:"not null"`
	ImageURL       string            `json:"image_url"`
	Servings       int               `json:"servings"`
	ReadyInMinutes int               `json:"ready_in_minutes"`
	Ingredients    []Ingredient      `json:"ingredients" gorm:"serializer:json"`
	Instructions   []InstructionStep `json:"instructions" gorm:"serializer:json"`
	Cuisines       []string          `json:"cuisines" gorm:"serializer:json"`
	Diets          []string          `json:"diets" gorm:"serializer:json"`
	DishTypes      []string          `json:"dish_types" gorm:"serializer:json"`
	Summary        string            `json:"summary"`
	Source         RecipeSource      `json:"source" gorm:"default:spoonacular"`
	LastUpdated    time.Time         `json:"last_updated"`
}

// TableName returns the table name for GORM
func (RecipeDetail) TableName() string {
	return "recipe_details"
}

// Summarize projects a cached detail down to the list shape
func (r *RecipeDetail) Summarize() RecipeSummary {
	return RecipeSummary{
		ID:             r.ID,
		Title:          r.Title,
		ImageURL:       r.ImageURL,
		ReadyInMinutes: r.ReadyInMinutes,
	}
}

// SearchSort is the sort order requested from the remote search API
type SearchSort string

const (
	SearchSortPopularity SearchSort = "popularity"
	SearchSortTime       SearchSort = "time"
	SearchSortCalories   SearchSort = "calories"
)

// SearchFilters narrows a remote recipe search
type SearchFilters struct {
	Cuisine            string
	Diet               string
	Intolerances       string
	DishType           string
	IncludeIngredients []string
	ExcludeIngredients []string
	MaxReadyTime       int
}

// SearchPage addresses one page of remote search results
type SearchPage struct {
	Offset int
	Number int
}

// SearchResult is one page of search results plus the remote total
type SearchResult struct {
	Results    []RecipeSummary `json:"results"`
	TotalCount int             `json:"total_count"`
}
