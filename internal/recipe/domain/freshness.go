package domain

import "time"

// Freshness tags a cached value's validity relative to a TTL window
type Freshness int

const (
	// FreshnessAbsent means nothing is cached for the key
	FreshnessAbsent Freshness = iota
	// FreshnessStale means a value is cached but its TTL has elapsed
	FreshnessStale
	// FreshnessFresh means the cached value is within its TTL
	FreshnessFresh
)

func (f Freshness) String() string {
	switch f {
	case FreshnessFresh:
		return "fresh"
	case FreshnessStale:
		return "stale"
	default:
		return "absent"
	}
}

// EvaluateFreshness classifies a cache entry's timestamp against a TTL.
// cachedAt == nil means nothing is cached. The boundary is exclusive: an
// entry exactly ttl old is still fresh, one second past is stale.
func EvaluateFreshness(cachedAt *time.Time, now time.Time, ttl time.Duration) Freshness {
	if cachedAt == nil {
		return FreshnessAbsent
	}
	if now.Sub(*cachedAt) > ttl {
		return FreshnessStale
	}
	return FreshnessFresh
}
