package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "tastebud/internal/auth/usecase"
	recipeUsecase "tastebud/internal/recipe/usecase"
	"tastebud/pkg/config"
)

type Handler struct {
	engine *gin.Engine
}

func NewHandler(identityUc authUsecase.IdentityUsecase, recipeUc recipeUsecase.RecipeUsecase, cfg *config.Config) *Handler {
	engine := gin.Default()
	SetupRoutes(engine, identityUc, recipeUc)
	return &Handler{engine: engine}
}

func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
