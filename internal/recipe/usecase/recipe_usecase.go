package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/sync/singleflight"

	authusecase "tastebud/internal/auth/usecase"
	"tastebud/internal/recipe/domain"
	"tastebud/internal/recipe/repository"
)

// suggestionListSize is how many suggestions a refreshed list holds
const suggestionListSize = 10

// recipeUsecase implements RecipeUsecase
type recipeUsecase struct {
	remote          repository.RemoteRecipeClient
	recipeCache     repository.RecipeCacheRepository
	suggestionCache repository.SuggestionCacheRepository
	featuredPref    repository.FeaturedPreferenceRepository
	favorites       repository.FavoritesRepository
	cookLog         repository.CookLogRepository
	identity        authusecase.IdentityUsecase

	suggestionTTL time.Duration
	flight        singleflight.Group
	now           func() time.Time
}

// NewRecipeUsecase creates a new RecipeUsecase
func NewRecipeUsecase(
	remote repository.RemoteRecipeClient,
	recipeCache repository.RecipeCacheRepository,
	suggestionCache repository.SuggestionCacheRepository,
	featuredPref repository.FeaturedPreferenceRepository,
	favorites repository.FavoritesRepository,
	cookLog repository.CookLogRepository,
	identity authusecase.IdentityUsecase,
	suggestionTTL time.Duration,
) RecipeUsecase {
	if suggestionTTL == 0 {
		suggestionTTL = 24 * time.Hour
	}
	return &recipeUsecase{
		remote:          remote,
		recipeCache:     recipeCache,
		suggestionCache: suggestionCache,
		featuredPref:    featuredPref,
		favorites:       favorites,
		cookLog:         cookLog,
		identity:        identity,
		suggestionTTL:   suggestionTTL,
		now:             time.Now,
	}
}

func (r *recipeUsecase) GetRecipeByID(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	cached, err := r.recipeCache.Get(id)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	detail, err := r.remote.FetchDetail(ctx, id, false)
	if err != nil {
		return nil, err
	}

	// Write-through. A failed cache write does not invalidate the fetched
	// data, so the detail is returned either way.
	if err := r.recipeCache.Put(detail); err != nil {
		log.Printf("[RECIPE] Failed to cache recipe %d: %v", id, err)
	}
	return detail, nil
}

func (r *recipeUsecase) Search(ctx context.Context, query string, filters domain.SearchFilters, sort domain.SearchSort, page domain.SearchPage) (*domain.SearchResult, error) {
	if page.Number <= 0 {
		page.Number = 20
	}
	results, total, err := r.remote.Search(ctx, query, filters, sort, page)
	if err != nil {
		return nil, err
	}
	return &domain.SearchResult{Results: results, TotalCount: total}, nil
}

func (r *recipeUsecase) Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.remote.Autocomplete(ctx, prefix, limit)
}

func (r *recipeUsecase) GetSuggestions(ctx context.Context, anchorID int, kind domain.CategoryKind, value string) ([]domain.SuggestionEntry, error) {
	cachedAt, err := r.suggestionCache.FreshnessTimestamp(anchorID, kind, value)
	if err != nil {
		return nil, err
	}
	if domain.EvaluateFreshness(cachedAt, r.now(), r.suggestionTTL) == domain.FreshnessFresh {
		return r.suggestionCache.GetList(anchorID, kind, value)
	}

	// At most one in-flight refresh per key: callers arriving during the
	// fetch attach to it instead of issuing their own.
	key := fmt.Sprintf("suggestions:%d:%s:%s", anchorID, kind, value)
	result, err, _ := r.flight.Do(key, func() (interface{}, error) {
		// A refresh that completed while this caller was waiting for the
		// flight slot already did the work.
		cachedAt, err := r.suggestionCache.FreshnessTimestamp(anchorID, kind, value)
		if err != nil {
			return nil, err
		}
		if domain.EvaluateFreshness(cachedAt, r.now(), r.suggestionTTL) == domain.FreshnessFresh {
			return r.suggestionCache.GetList(anchorID, kind, value)
		}
		return r.refreshSuggestions(ctx, anchorID, kind, value)
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.SuggestionEntry), nil
}

// refreshSuggestions fetches a new list from the remote API and replaces the
// cached one atomically.
func (r *recipeUsecase) refreshSuggestions(ctx context.Context, anchorID int, kind domain.CategoryKind, value string) ([]domain.SuggestionEntry, error) {
	filters := domain.SearchFilters{}
	switch kind {
	case domain.CategoryKindCuisine:
		filters.Cuisine = value
	case domain.CategoryKindDiet:
		filters.Diet = value
	case domain.CategoryKindDishType:
		filters.DishType = value
	default:
		return nil, fmt.Errorf("unknown category kind %q", kind)
	}

	// Fetch one extra so the anchor itself can be dropped from its own list.
	summaries, _, err := r.remote.Search(ctx, "", filters, domain.SearchSortPopularity, domain.SearchPage{Number: suggestionListSize + 1})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SuggestionEntry, 0, suggestionListSize)
	for _, s := range summaries {
		if s.ID == anchorID {
			continue
		}
		if len(entries) == suggestionListSize {
			break
		}
		entries = append(entries, domain.SuggestionEntry{
			SuggestedRecipeID: s.ID,
			Title:             s.Title,
			ImageURL:          s.ImageURL,
			ReadyInMinutes:    s.ReadyInMinutes,
		})
	}

	// PutList assigns key columns, contiguous display order and the
	// freshness timestamp inside a single transaction.
	if err := r.suggestionCache.PutList(anchorID, kind, value, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *recipeUsecase) AddFavorite(ctx context.Context, recipeID int) error {
	userID, err := r.requireUser()
	if err != nil {
		return err
	}

	detail, err := r.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return err
	}

	return r.favorites.Add(ctx, userID, domain.FavoriteRecord{
		RecipeID:       detail.ID,
		Title:          detail.Title,
		ImageURL:       detail.ImageURL,
		ReadyInMinutes: detail.ReadyInMinutes,
		Source:         detail.Source,
	})
}

func (r *recipeUsecase) RemoveFavorite(ctx context.Context, recipeID int) error {
	userID, err := r.requireUser()
	if err != nil {
		return err
	}
	return r.favorites.Remove(ctx, userID, recipeID)
}

func (r *recipeUsecase) IsFavorite(ctx context.Context, recipeID int) (<-chan bool, error) {
	userID, err := r.requireUser()
	if err != nil {
		return nil, err
	}
	return r.favorites.IsFavorite(ctx, userID, recipeID)
}

func (r *recipeUsecase) ObserveFavorites(ctx context.Context) (<-chan domain.FavoritesUpdate, error) {
	out := make(chan domain.FavoritesUpdate, 1)
	identities := r.identity.Subscribe(ctx)

	go func() {
		defer close(out)

		var stream <-chan domain.FavoritesUpdate
		var stopStream context.CancelFunc
		defer func() {
			if stopStream != nil {
				stopStream()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case user, ok := <-identities:
				if !ok {
					return
				}
				// The previous identity's stream is cancelled before the
				// new one opens; an abandoned stream can never deliver
				// records into the new user's view.
				if stopStream != nil {
					stopStream()
					stopStream = nil
					stream = nil
				}
				if user == nil {
					select {
					case out <- domain.FavoritesUpdate{}:
					case <-ctx.Done():
						return
					}
					continue
				}
				streamCtx, cancel := context.WithCancel(ctx)
				s, err := r.favorites.Observe(streamCtx, user.ID)
				if err != nil {
					cancel()
					select {
					case out <- domain.FavoritesUpdate{Err: err}:
					case <-ctx.Done():
						return
					}
					continue
				}
				stream = s
				stopStream = cancel

			case update, ok := <-stream:
				if !ok {
					stream = nil
					continue
				}
				select {
				case out <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (r *recipeUsecase) GetFavorites(ctx context.Context) ([]domain.FavoriteRecord, error) {
	userID, err := r.requireUser()
	if err != nil {
		return nil, err
	}

	snapCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates, err := r.favorites.Observe(snapCtx, userID)
	if err != nil {
		return nil, err
	}

	select {
	case update, ok := <-updates:
		if !ok {
			return nil, ctx.Err()
		}
		if update.Err != nil {
			return nil, update.Err
		}
		return update.Records, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *recipeUsecase) GetFeaturedRecipeForToday(ctx context.Context) (*domain.RecipeDetail, error) {
	pref, err := r.featuredPref.Read()
	if err != nil {
		return nil, err
	}
	if pref != nil && domain.IsValidForToday(pref.ChosenAt, r.now()) {
		return r.GetRecipeByID(ctx, pref.RecipeID)
	}

	// Concurrent first loads of the day share one selection.
	result, err, _ := r.flight.Do("featured", func() (interface{}, error) {
		pref, err := r.featuredPref.Read()
		if err != nil {
			return nil, err
		}
		if pref != nil && domain.IsValidForToday(pref.ChosenAt, r.now()) {
			return r.GetRecipeByID(ctx, pref.RecipeID)
		}
		return r.selectFeatured(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.RecipeDetail), nil
}

// selectFeatured picks a new featured recipe and persists the selection
func (r *recipeUsecase) selectFeatured(ctx context.Context) (*domain.RecipeDetail, error) {
	fetch := func() (*domain.RecipeDetail, error) {
		details, err := r.remote.FetchRandom(ctx, 1, nil)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if len(details) == 0 {
			return nil, backoff.Permanent(fmt.Errorf("%w: empty random batch", domain.ErrRemoteUnavailable))
		}
		return details[0], nil
	}

	detail, err := backoff.Retry(ctx, fetch,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3),
	)
	if err != nil {
		return nil, err
	}

	if err := r.recipeCache.Put(detail); err != nil {
		log.Printf("[RECIPE] Failed to cache featured recipe %d: %v", detail.ID, err)
	}
	if err := r.featuredPref.Write(detail.ID); err != nil {
		return nil, err
	}
	log.Printf("[RECIPE] Featured recipe for today: %d (%s)", detail.ID, detail.Title)
	return detail, nil
}

func (r *recipeUsecase) LogCookedDish(ctx context.Context, recipeID int, notes string) (*domain.CookedDish, error) {
	userID, err := r.requireUser()
	if err != nil {
		return nil, err
	}

	detail, err := r.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return r.cookLog.LogDish(ctx, userID, domain.CookedDish{
		RecipeID: detail.ID,
		Title:    detail.Title,
		ImageURL: detail.ImageURL,
		Notes:    notes,
	})
}

func (r *recipeUsecase) GetCookLog(ctx context.Context, limit int) ([]domain.CookedDish, error) {
	userID, err := r.requireUser()
	if err != nil {
		return nil, err
	}
	return r.cookLog.ListDishes(ctx, userID, limit)
}

func (r *recipeUsecase) ClearLocalData() error {
	if err := r.recipeCache.Clear(); err != nil {
		return err
	}
	if err := r.suggestionCache.ClearAll(); err != nil {
		return err
	}
	return r.featuredPref.Clear()
}

func (r *recipeUsecase) requireUser() (string, error) {
	user := r.identity.Current()
	if user == nil {
		return "", domain.ErrInvalidState
	}
	return user.ID, nil
}
