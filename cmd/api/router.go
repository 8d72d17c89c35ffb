package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "tastebud/internal/auth/delivery"
	authUsecase "tastebud/internal/auth/usecase"
	recipeDelivery "tastebud/internal/recipe/delivery"
	recipeUsecase "tastebud/internal/recipe/usecase"
)

func SetupRoutes(r *gin.Engine, identityUc authUsecase.IdentityUsecase, recipeUc recipeUsecase.RecipeUsecase) {
	authHandler := authDelivery.NewAuthHandler(identityUc)
	recipeHandler := recipeDelivery.NewRecipeHandler(recipeUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/session", authHandler.CreateSession)
			auth.DELETE("/session", authHandler.DeleteSession)
			auth.GET("/me", authHandler.Me)
		}

		// Recipe routes (public — reads hit the local cache first)
		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeHandler.Search)
			recipes.GET("/:id", recipeHandler.GetRecipeByID)
			recipes.GET("/:id/suggestions", recipeHandler.GetSuggestions)
		}
		api.GET("/search/autocomplete", recipeHandler.Autocomplete)
		api.GET("/featured", recipeHandler.GetFeatured)
		api.DELETE("/cache", recipeHandler.ClearLocalData)

		// Favorites routes (protected) - cloud store is the source of truth
		favorites := api.Group("/favorites")
		favorites.Use(authDelivery.AuthMiddleware(identityUc))
		{
			favorites.GET("", recipeHandler.GetFavorites)
			favorites.POST("", recipeHandler.AddFavorite)
			favorites.GET("/:id", recipeHandler.IsFavorite)
			favorites.DELETE("/:id", recipeHandler.RemoveFavorite)
		}

		// Cook log routes (protected)
		cooklog := api.Group("/cooklog")
		cooklog.Use(authDelivery.AuthMiddleware(identityUc))
		{
			cooklog.GET("", recipeHandler.GetCookLog)
			cooklog.POST("", recipeHandler.LogCookedDish)
		}
	}
}
