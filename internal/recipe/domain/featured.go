package domain

import "time"

// DailyFeatured is the single "featured recipe of the day" selection
type DailyFeatured struct {
	RecipeID int       `json:"recipe_id"`
	ChosenAt time.Time `json:"chosen_at"`
}

// IsValidForToday reports whether a selection made at chosenAt still counts as
// today's pick when evaluated at now. Validity is calendar-day identity in the
// local timezone, not elapsed duration: a pick made at 23:59:59 expires one
// second later at midnight.
func IsValidForToday(chosenAt, now time.Time) bool {
	chosenAt = chosenAt.Local()
	now = now.Local()
	return chosenAt.Year() == now.Year() && chosenAt.YearDay() == now.YearDay()
}
