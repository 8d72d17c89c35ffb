package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebud/internal/recipe/domain"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient("test-key", server.URL), server
}

func TestFetchDetail_MapsResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/715538/information", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "false", r.URL.Query().Get("includeNutrition"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 715538,
			"title": "Bruschetta Style Pork & Pasta",
			"image": "https://img.spoonacular.com/recipes/715538-556x370.jpg",
			"servings": 4,
			"readyInMinutes": 35,
			"cuisines": ["Mediterranean", "Italian"],
			"diets": ["dairy free"],
			"dishTypes": ["main course"],
			"summary": "Bruschetta Style Pork &amp; Pasta is a main course.",
			"extendedIngredients": [
				{"id": 10218, "name": "pork tenderloin", "amount": 1.5, "unit": "lb"},
				{"id": 11529, "name": "tomatoes", "amount": 2, "unit": ""}
			],
			"analyzedInstructions": [
				{"name": "", "steps": [
					{"number": 1, "step": "Season the pork."},
					{"number": 2, "step": "Sear on all sides."}
				]},
				{"name": "Pasta", "steps": [
					{"number": 1, "step": "Boil the penne."}
				]}
			]
		}`))
	})
	defer server.Close()

	detail, err := client.FetchDetail(context.Background(), 715538, false)
	require.NoError(t, err)

	assert.Equal(t, 715538, detail.ID)
	assert.Equal(t, "Bruschetta Style Pork & Pasta", detail.Title)
	assert.Equal(t, 4, detail.Servings)
	assert.Equal(t, domain.RecipeSourceSpoonacular, detail.Source)
	assert.Equal(t, []string{"Mediterranean", "Italian"}, detail.Cuisines)
	require.Len(t, detail.Ingredients, 2)
	assert.Equal(t, "pork tenderloin", detail.Ingredients[0].Name)
	assert.InDelta(t, 1.5, detail.Ingredients[0].Amount, 0.001)

	// Instruction blocks are flattened into one contiguous sequence.
	require.Len(t, detail.Instructions, 3)
	for i, step := range detail.Instructions {
		assert.Equal(t, i+1, step.Number)
	}
	assert.Equal(t, "Boil the penne.", detail.Instructions[2].Text)
	assert.False(t, detail.LastUpdated.IsZero())
}

func TestFetchDetail_NotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.FetchDetail(context.Background(), 999, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchDetail_ServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.FetchDetail(context.Background(), 1, false)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestFetchDetail_MalformedBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "not a number"`))
	})
	defer server.Close()

	_, err := client.FetchDetail(context.Background(), 1, false)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestFetchDetail_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient("test-key", server.URL)
	server.Close()

	_, err := client.FetchDetail(context.Background(), 1, false)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestSearch_BuildsQueryAndMapsResults(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "pasta", q.Get("query"))
		assert.Equal(t, "Italian", q.Get("cuisine"))
		assert.Equal(t, "vegetarian", q.Get("diet"))
		assert.Equal(t, "main course", q.Get("type"))
		assert.Equal(t, "tomato,basil", q.Get("includeIngredients"))
		assert.Equal(t, "45", q.Get("maxReadyTime"))
		assert.Equal(t, "popularity", q.Get("sort"))
		assert.Equal(t, "20", q.Get("offset"))
		assert.Equal(t, "10", q.Get("number"))
		assert.Equal(t, "true", q.Get("addRecipeInformation"))

		w.Write([]byte(`{
			"results": [
				{"id": 654959, "title": "Pasta With Tuna", "image": "https://img.spoonacular.com/recipes/654959-312x231.jpg", "imageType": "jpg", "readyInMinutes": 45},
				{"id": 511728, "title": "Pasta Margherita", "image": "https://img.spoonacular.com/recipes/511728-312x231.jpg", "imageType": "jpg", "readyInMinutes": 20}
			],
			"offset": 20,
			"number": 10,
			"totalResults": 223
		}`))
	})
	defer server.Close()

	filters := domain.SearchFilters{
		Cuisine:            "Italian",
		Diet:               "vegetarian",
		DishType:           "main course",
		IncludeIngredients: []string{"tomato", "basil"},
		MaxReadyTime:       45,
	}
	results, total, err := client.Search(context.Background(), "pasta", filters, domain.SearchSortPopularity, domain.SearchPage{Offset: 20, Number: 10})
	require.NoError(t, err)

	assert.Equal(t, 223, total)
	require.Len(t, results, 2)
	assert.Equal(t, 654959, results[0].ID)
	assert.Equal(t, "Pasta With Tuna", results[0].Title)
	assert.Equal(t, 45, results[0].ReadyInMinutes)
}

func TestSearch_EmptyResults(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [], "offset": 0, "number": 10, "totalResults": 0}`))
	})
	defer server.Close()

	results, total, err := client.Search(context.Background(), "xyzzy", domain.SearchFilters{}, "", domain.SearchPage{Number: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, results)
}

func TestAutocomplete(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/autocomplete", r.URL.Path)
		assert.Equal(t, "chick", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("number"))

		w.Write([]byte(`[
			{"id": 1, "title": "chicken soup"},
			{"id": 2, "title": "chicken tikka masala"}
		]`))
	})
	defer server.Close()

	titles, err := client.Autocomplete(context.Background(), "chick", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken soup", "chicken tikka masala"}, titles)
}

func TestFetchRandom(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/random", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("number"))
		assert.Equal(t, "dinner,italian", r.URL.Query().Get("include-tags"))

		w.Write([]byte(`{"recipes": [{"id": 716429, "title": "Pasta with Garlic", "readyInMinutes": 45, "servings": 2}]}`))
	})
	defer server.Close()

	details, err := client.FetchRandom(context.Background(), 1, []string{"dinner", "italian"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 716429, details[0].ID)
	assert.Equal(t, domain.RecipeSourceSpoonacular, details[0].Source)
}
