package spoonacular

// Wire shapes of the Spoonacular REST API. Only the fields the app reads are
// declared; everything else in the payload is ignored.

type searchResponse struct {
	Results      []recipeSummary `json:"results"`
	Offset       int             `json:"offset"`
	Number       int             `json:"number"`
	TotalResults int             `json:"totalResults"`
}

type recipeSummary struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ImageType      string `json:"imageType"`
	ReadyInMinutes int    `json:"readyInMinutes"`
}

type randomResponse struct {
	Recipes []recipeInformation `json:"recipes"`
}

type autocompleteEntry struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type recipeInformation struct {
	ID                   int                  `json:"id"`
	Title                string               `json:"title"`
	Image                string               `json:"image"`
	Servings             int                  `json:"servings"`
	ReadyInMinutes       int                  `json:"readyInMinutes"`
	ExtendedIngredients  []extendedIngredient `json:"extendedIngredients"`
	AnalyzedInstructions []instructionBlock   `json:"analyzedInstructions"`
	Cuisines             []string             `json:"cuisines"`
	Diets                []string             `json:"diets"`
	DishTypes            []string             `json:"dishTypes"`
	Summary              string               `json:"summary"`
}

type extendedIngredient struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type instructionBlock struct {
	Name  string            `json:"name"`
	Steps []instructionStep `json:"steps"`
}

type instructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}
