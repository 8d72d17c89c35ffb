package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tastebud/internal/recipe/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.RecipeDetail{}, &domain.SuggestionEntry{}, &Preference{}))
	return db
}

func sampleDetail(id int, title string) *domain.RecipeDetail {
	return &domain.RecipeDetail{
		ID:             id,
		Title:          title,
		ImageURL:       "https://img.spoonacular.com/recipes/715538.jpg",
		ReadyInMinutes: 35,
		Servings:       4,
		Summary:        "A quick weeknight pasta.",
		Cuisines:       []string{"Italian"},
		Diets:          []string{"dairy free"},
		DishTypes:      []string{"main course"},
		Ingredients: []domain.Ingredient{
			{ID: 1, Name: "pork tenderloin", Amount: 1, Unit: "lb"},
			{ID: 2, Name: "penne", Amount: 8, Unit: "oz"},
		},
		Instructions: []domain.InstructionStep{
			{Number: 1, Text: "Season the pork."},
			{Number: 2, Text: "Cook the pasta."},
		},
		Source: domain.RecipeSourceSpoonacular,
	}
}

func TestRecipeCache_PutGetRoundtrip(t *testing.T) {
	repo := NewRecipeCacheRepository(openTestDB(t))

	require.NoError(t, repo.Put(sampleDetail(715538, "Bruschetta Style Pork & Pasta")))

	got, err := repo.Get(715538)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bruschetta Style Pork & Pasta", got.Title)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "pork tenderloin", got.Ingredients[0].Name)
	require.Len(t, got.Instructions, 2)
	assert.Equal(t, []string{"Italian"}, got.Cuisines)
}

func TestRecipeCache_GetMissingReturnsNil(t *testing.T) {
	repo := NewRecipeCacheRepository(openTestDB(t))

	got, err := repo.Get(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecipeCache_PutOverwritesWholeRow(t *testing.T) {
	repo := NewRecipeCacheRepository(openTestDB(t))

	require.NoError(t, repo.Put(sampleDetail(1, "Old Title")))

	updated := sampleDetail(1, "New Title")
	updated.Summary = ""
	updated.Ingredients = nil
	require.NoError(t, repo.Put(updated))

	got, err := repo.Get(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Title", got.Title)
	assert.Empty(t, got.Summary, "refetched snapshot replaces, never merges")
	assert.Empty(t, got.Ingredients)
}

func TestRecipeCache_DeleteAndClear(t *testing.T) {
	repo := NewRecipeCacheRepository(openTestDB(t))

	require.NoError(t, repo.Put(sampleDetail(1, "One")))
	require.NoError(t, repo.Put(sampleDetail(2, "Two")))

	require.NoError(t, repo.Delete(1))
	got, err := repo.Get(1)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Clear())
	got, err = repo.Get(2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func suggestionEntries(ids ...int) []domain.SuggestionEntry {
	entries := make([]domain.SuggestionEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, domain.SuggestionEntry{
			SuggestedRecipeID: id,
			Title:             "Recipe",
			ReadyInMinutes:    20,
		})
	}
	return entries
}

func TestSuggestionCache_PutListAssignsOrderAndTimestamp(t *testing.T) {
	repo := NewSuggestionCacheRepository(openTestDB(t))

	before := time.Now()
	require.NoError(t, repo.PutList(715538, domain.CategoryKindCuisine, "Italian", suggestionEntries(101, 102, 103)))

	list, err := repo.GetList(715538, domain.CategoryKindCuisine, "Italian")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, entry := range list {
		assert.Equal(t, i, entry.DisplayOrder)
		assert.Equal(t, 715538, entry.AnchorRecipeID)
		assert.False(t, entry.CachedAt.Before(before))
	}

	ts, err := repo.FreshnessTimestamp(715538, domain.CategoryKindCuisine, "Italian")
	require.NoError(t, err)
	require.NotNil(t, ts)
}

func TestSuggestionCache_PutListReplacesWholesale(t *testing.T) {
	repo := NewSuggestionCacheRepository(openTestDB(t))

	require.NoError(t, repo.PutList(1, domain.CategoryKindCuisine, "Italian", suggestionEntries(101, 102, 103)))
	require.NoError(t, repo.PutList(1, domain.CategoryKindCuisine, "Italian", suggestionEntries(201, 202)))

	list, err := repo.GetList(1, domain.CategoryKindCuisine, "Italian")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 201, list[0].SuggestedRecipeID)
	assert.Equal(t, 202, list[1].SuggestedRecipeID)
}

func TestSuggestionCache_KeysAreIndependent(t *testing.T) {
	repo := NewSuggestionCacheRepository(openTestDB(t))

	require.NoError(t, repo.PutList(1, domain.CategoryKindCuisine, "Italian", suggestionEntries(101)))
	require.NoError(t, repo.PutList(1, domain.CategoryKindDiet, "vegan", suggestionEntries(201)))
	require.NoError(t, repo.PutList(2, domain.CategoryKindCuisine, "Italian", suggestionEntries(301)))

	list, err := repo.GetList(1, domain.CategoryKindCuisine, "Italian")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 101, list[0].SuggestedRecipeID)

	// A recipe may appear in several lists without colliding.
	require.NoError(t, repo.PutList(2, domain.CategoryKindDiet, "vegan", suggestionEntries(101)))
	list, err = repo.GetList(2, domain.CategoryKindDiet, "vegan")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSuggestionCache_FreshnessTimestampAbsent(t *testing.T) {
	repo := NewSuggestionCacheRepository(openTestDB(t))

	ts, err := repo.FreshnessTimestamp(1, domain.CategoryKindCuisine, "Italian")
	require.NoError(t, err)
	assert.Nil(t, ts)
}

func TestSuggestionCache_ClearForAnchor(t *testing.T) {
	repo := NewSuggestionCacheRepository(openTestDB(t))

	require.NoError(t, repo.PutList(1, domain.CategoryKindCuisine, "Italian", suggestionEntries(101)))
	require.NoError(t, repo.PutList(2, domain.CategoryKindCuisine, "Italian", suggestionEntries(201)))

	require.NoError(t, repo.ClearForAnchor(1))

	list, err := repo.GetList(1, domain.CategoryKindCuisine, "Italian")
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = repo.GetList(2, domain.CategoryKindCuisine, "Italian")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFeaturedPreference_Roundtrip(t *testing.T) {
	repo := NewFeaturedPreferenceRepository(openTestDB(t))

	got, err := repo.Read()
	require.NoError(t, err)
	assert.Nil(t, got, "empty store reads as no selection")

	before := time.Now().Truncate(time.Millisecond)
	require.NoError(t, repo.Write(715538))

	got, err = repo.Read()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 715538, got.RecipeID)
	assert.False(t, got.ChosenAt.Before(before))
}

func TestFeaturedPreference_WriteReplaces(t *testing.T) {
	repo := NewFeaturedPreferenceRepository(openTestDB(t))

	require.NoError(t, repo.Write(1))
	require.NoError(t, repo.Write(2))

	got, err := repo.Read()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.RecipeID)
}

func TestFeaturedPreference_Clear(t *testing.T) {
	repo := NewFeaturedPreferenceRepository(openTestDB(t))

	require.NoError(t, repo.Write(1))
	require.NoError(t, repo.Clear())

	got, err := repo.Read()
	require.NoError(t, err)
	assert.Nil(t, got)
}
