package spoonacular

import (
	"time"

	"tastebud/internal/recipe/domain"
)

func mapSummary(s recipeSummary) domain.RecipeSummary {
	return domain.RecipeSummary{
		ID:             s.ID,
		Title:          s.Title,
		ImageURL:       s.Image,
		ImageType:      s.ImageType,
		ReadyInMinutes: s.ReadyInMinutes,
	}
}

func mapDetail(info recipeInformation, now time.Time) *domain.RecipeDetail {
	detail := &domain.RecipeDetail{
		ID:             info.ID,
		Title:          info.Title,
		ImageURL:       info.Image,
		Servings:       info.Servings,
		ReadyInMinutes: info.ReadyInMinutes,
		Cuisines:       info.Cuisines,
		Diets:          info.Diets,
		DishTypes:      info.DishTypes,
		Summary:        info.Summary,
		Source:         domain.RecipeSourceSpoonacular,
		LastUpdated:    now,
	}

	for _, ing := range info.ExtendedIngredients {
		detail.Ingredients = append(detail.Ingredients, domain.Ingredient{
			ID:     ing.ID,
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	// Spoonacular splits instructions into named blocks; flatten them into a
	// single renumbered sequence so step numbers stay contiguous.
	number := 1
	for _, block := range info.AnalyzedInstructions {
		for _, step := range block.Steps {
			detail.Instructions = append(detail.Instructions, domain.InstructionStep{
				Number: number,
				Text:   step.Step,
			})
			number++
		}
	}

	return detail
}
