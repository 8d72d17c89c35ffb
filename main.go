package main

import (
	"context"
	"log"

	api "tastebud/cmd/api"
	authUsecase "tastebud/internal/auth/usecase"
	recipedomain "tastebud/internal/recipe/domain"
	recipeRepo "tastebud/internal/recipe/repository"
	recipeUsecase "tastebud/internal/recipe/usecase"
	"tastebud/pkg/config"
	"tastebud/pkg/database"
	"tastebud/pkg/firebase"
	"tastebud/pkg/spoonacular"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the local cache database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to open local database:", err)
	}

	// Auto-migrate the local cache schema
	if err := db.AutoMigrate(&recipedomain.RecipeDetail{}, &recipedomain.SuggestionEntry{}, &recipeRepo.Preference{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Firebase (cloud favorites + cook log, token verification)
	fb, err := firebase.NewClient(context.Background(), cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize Firebase:", err)
	}
	defer fb.Close()

	// Initialize the remote recipe API client
	if cfg.SpoonacularAPIKey == "" {
		log.Printf("[WARN] SPOONACULAR_API_KEY not configured, remote fetches will fail")
	}
	remoteClient := spoonacular.NewClient(cfg.SpoonacularAPIKey, cfg.SpoonacularBaseURL)

	// Initialize repositories (dependency injection)
	recipeCache := recipeRepo.NewRecipeCacheRepository(db)
	suggestionCache := recipeRepo.NewSuggestionCacheRepository(db)
	featuredPref := recipeRepo.NewFeaturedPreferenceRepository(db)
	favoritesRepo := recipeRepo.NewFavoritesRepository(fb.Store)
	cookLogRepo := recipeRepo.NewCookLogRepository(fb.Store)

	// Initialize use cases
	identityUc := authUsecase.NewIdentityUsecase(fb.Auth, cfg.JWTSecret)
	recipeUc := recipeUsecase.NewRecipeUsecase(
		remoteClient,
		recipeCache,
		suggestionCache,
		featuredPref,
		favoritesRepo,
		cookLogRepo,
		identityUc,
		cfg.SuggestionTTL,
	)

	// Initialize HTTP handler
	handler := api.NewHandler(identityUc, recipeUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
