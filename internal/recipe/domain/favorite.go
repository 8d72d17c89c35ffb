package domain

import "time"

// FavoriteRecord is a user's favorited recipe as stored in Firestore under
// users/{uid}/favorites. The cloud document is the source of truth; there is
// no local mirror. Display fields are denormalized so favorite lists never
// join against the recipe cache.
type FavoriteRecord struct {
	UserID         string       `json:"user_id" firestore:"userId"`
	RecipeID       int          `json:"recipe_id" firestore:"recipeId"`
	Title          string       `json:"title" firestore:"title"`
	ImageURL       string       `json:"image_url" firestore:"imageUrl"`
	ReadyInMinutes int          `json:"ready_in_minutes" firestore:"readyInMinutes"`
	Source         RecipeSource `json:"source" firestore:"source"`
	AddedAt        time.Time    `json:"added_at" firestore:"addedAt,serverTimestamp"`
}

// FavoritesUpdate is one emission of a favorites observation stream: either a
// full snapshot of the user's favorites ordered by AddedAt descending, or the
// error that terminated the stream.
type FavoritesUpdate struct {
	Records []FavoriteRecord
	Err     error
}

// CookedDish is one entry of a user's cooked-dish log, stored in Firestore
// under users/{uid}/cookLog.
type CookedDish struct {
	ID       string    `json:"id" firestore:"id"`
	UserID   string    `json:"user_id" firestore:"userId"`
	RecipeID int       `json:"recipe_id" firestore:"recipeId"`
	Title    string    `json:"title" firestore:"title"`
	ImageURL string    `json:"image_url" firestore:"imageUrl"`
	Notes    string    `json:"notes,omitempty" firestore:"notes"`
	CookedAt time.Time `json:"cooked_at" firestore:"cookedAt,serverTimestamp"`
}
