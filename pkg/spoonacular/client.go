package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tastebud/internal/recipe/domain"
)

// Client is a stateless wrapper over the Spoonacular recipe API. It holds no
// cache and performs no retries; every method is a single network round trip.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Spoonacular API client.
// The free tier allows 150 points per day; the limiter keeps bursts polite
// rather than enforcing the daily quota.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

// get executes a GET request and decodes the JSON body into out.
// Transport failures, non-2xx statuses and malformed payloads all surface as
// domain.ErrRemoteUnavailable; a 404 surfaces as domain.ErrNotFound.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	params.Set("apiKey", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Tastebud/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrRemoteUnavailable, err)
	}
	return nil
}

// FetchRandom fetches count random recipes, optionally constrained by tags
// (cuisine, diet or dish-type names).
func (c *Client) FetchRandom(ctx context.Context, count int, tags []string) ([]*domain.RecipeDetail, error) {
	params := url.Values{}
	params.Set("number", strconv.Itoa(count))
	if len(tags) > 0 {
		params.Set("include-tags", strings.Join(tags, ","))
	}

	var resp randomResponse
	if err := c.get(ctx, "/recipes/random", params, &resp); err != nil {
		return nil, err
	}

	now := time.Now()
	details := make([]*domain.RecipeDetail, 0, len(resp.Recipes))
	for _, info := range resp.Recipes {
		details = append(details, mapDetail(info, now))
	}
	return details, nil
}

// Search runs a complex recipe search and returns one page of summaries plus
// the remote total count.
func (c *Client) Search(ctx context.Context, query string, filters domain.SearchFilters, sort domain.SearchSort, page domain.SearchPage) ([]domain.RecipeSummary, int, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if filters.Cuisine != "" {
		params.Set("cuisine", filters.Cuisine)
	}
	if filters.Diet != "" {
		params.Set("diet", filters.Diet)
	}
	if filters.Intolerances != "" {
		params.Set("intolerances", filters.Intolerances)
	}
	if filters.DishType != "" {
		params.Set("type", filters.DishType)
	}
	if len(filters.IncludeIngredients) > 0 {
		params.Set("includeIngredients", strings.Join(filters.IncludeIngredients, ","))
	}
	if len(filters.ExcludeIngredients) > 0 {
		params.Set("excludeIngredients", strings.Join(filters.ExcludeIngredients, ","))
	}
	if filters.MaxReadyTime > 0 {
		params.Set("maxReadyTime", strconv.Itoa(filters.MaxReadyTime))
	}
	if sort != "" {
		params.Set("sort", string(sort))
		params.Set("sortDirection", "desc")
	}
	params.Set("offset", strconv.Itoa(page.Offset))
	params.Set("number", strconv.Itoa(page.Number))
	params.Set("addRecipeInformation", "true")

	var resp searchResponse
	if err := c.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return nil, 0, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(resp.Results))
	for _, s := range resp.Results {
		summaries = append(summaries, mapSummary(s))
	}
	return summaries, resp.TotalResults, nil
}

// Autocomplete returns up to limit recipe title completions for a prefix
func (c *Client) Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("query", prefix)
	params.Set("number", strconv.Itoa(limit))

	var entries []autocompleteEntry
	if err := c.get(ctx, "/recipes/autocomplete", params, &entries); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		titles = append(titles, e.Title)
	}
	return titles, nil
}

// FetchDetail fetches the full information for a single recipe
func (c *Client) FetchDetail(ctx context.Context, id int, includeNutrition bool) (*domain.RecipeDetail, error) {
	params := url.Values{}
	params.Set("includeNutrition", strconv.FormatBool(includeNutrition))

	var info recipeInformation
	if err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", id), params, &info); err != nil {
		return nil, err
	}
	return mapDetail(info, time.Now()), nil
}
