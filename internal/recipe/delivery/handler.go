package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tastebud/internal/recipe/domain"
	"tastebud/internal/recipe/usecase"
)

// RecipeHandler handles recipe-related HTTP requests
type RecipeHandler struct {
	recipeUsecase usecase.RecipeUsecase
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeUsecase usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{recipeUsecase: recipeUsecase}
}

// GetRecipeByID returns a recipe detail, from cache or the remote API
// GET /api/recipes/:id
func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	detail, err := h.recipeUsecase.GetRecipeByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Search runs a remote recipe search
// GET /api/recipes?query=pasta&cuisine=italian&sort=popularity&offset=0&number=20
func (h *RecipeHandler) Search(c *gin.Context) {
	filters := domain.SearchFilters{
		Cuisine:      c.Query("cuisine"),
		Diet:         c.Query("diet"),
		Intolerances: c.Query("intolerances"),
		DishType:     c.Query("type"),
	}
	if maxReady, err := strconv.Atoi(c.Query("maxReadyTime")); err == nil {
		filters.MaxReadyTime = maxReady
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	number, _ := strconv.Atoi(c.DefaultQuery("number", "20"))

	result, err := h.recipeUsecase.Search(
		c.Request.Context(),
		c.Query("query"),
		filters,
		domain.SearchSort(c.Query("sort")),
		domain.SearchPage{Offset: offset, Number: number},
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Autocomplete returns recipe title completions
// GET /api/search/autocomplete?prefix=chick&limit=10
func (h *RecipeHandler) Autocomplete(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	titles, err := h.recipeUsecase.Autocomplete(c.Request.Context(), c.Query("prefix"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": titles})
}

// GetSuggestions returns the suggestion list anchored on a recipe
// GET /api/recipes/:id/suggestions?kind=cuisine&value=Italian
func (h *RecipeHandler) GetSuggestions(c *gin.Context) {
	anchorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	kind := domain.CategoryKind(c.Query("kind"))
	value := c.Query("value")
	if kind == "" || value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind and value are required"})
		return
	}

	entries, err := h.recipeUsecase.GetSuggestions(c.Request.Context(), anchorID, kind, value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": entries})
}

// GetFeatured returns today's featured recipe
// GET /api/featured
func (h *RecipeHandler) GetFeatured(c *gin.Context) {
	detail, err := h.recipeUsecase.GetFeaturedRecipeForToday(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// AddFavoriteRequest is the request body for favoriting a recipe
type AddFavoriteRequest struct {
	RecipeID int `json:"recipe_id" binding:"required"`
}

// GetFavorites returns the active user's favorites
// GET /api/favorites
func (h *RecipeHandler) GetFavorites(c *gin.Context) {
	records, err := h.recipeUsecase.GetFavorites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": records})
}

// AddFavorite favorites a recipe for the active user
// POST /api/favorites
func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id is required"})
		return
	}

	if err := h.recipeUsecase.AddFavorite(c.Request.Context(), req.RecipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "favorited"})
}

// RemoveFavorite unfavorites a recipe for the active user
// DELETE /api/favorites/:id
func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeUsecase.RemoveFavorite(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// IsFavorite reports whether the active user has favorited a recipe
// GET /api/favorites/:id
func (h *RecipeHandler) IsFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	states, err := h.recipeUsecase.IsFavorite(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	select {
	case favorited := <-states:
		c.JSON(http.StatusOK, gin.H{"recipe_id": id, "favorited": favorited})
	case <-c.Request.Context().Done():
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
	}
}

// LogDishRequest is the request body for logging a cooked dish
type LogDishRequest struct {
	RecipeID int    `json:"recipe_id" binding:"required"`
	Notes    string `json:"notes"`
}

// LogCookedDish appends an entry to the active user's cook log
// POST /api/cooklog
func (h *RecipeHandler) LogCookedDish(c *gin.Context) {
	var req LogDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id is required"})
		return
	}

	dish, err := h.recipeUsecase.LogCookedDish(c.Request.Context(), req.RecipeID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// GetCookLog returns the active user's cook log
// GET /api/cooklog?limit=50
func (h *RecipeHandler) GetCookLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	dishes, err := h.recipeUsecase.GetCookLog(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": dishes})
}

// ClearLocalData wipes the local caches and the featured preference
// DELETE /api/cache
func (h *RecipeHandler) ClearLocalData(c *gin.Context) {
	if err := h.recipeUsecase.ClearLocalData(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// respondError maps the domain error taxonomy to HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, domain.ErrRemoteUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
