package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	SpoonacularAPIKey   string
	SpoonacularBaseURL  string
	DBDriver            string
	DBDSN               string
	FirebaseCredentials string
	JWTSecret           string
	SuggestionTTL       time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	suggestionTTL := 24 * time.Hour
	if ttl := os.Getenv("SUGGESTION_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			suggestionTTL = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		SpoonacularAPIKey:   getEnv("SPOONACULAR_API_KEY", ""),
		SpoonacularBaseURL:  getEnv("SPOONACULAR_BASE_URL", "https://api.spoonacular.com"),
		DBDriver:            getEnv("DB_DRIVER", "sqlite"),
		DBDSN:               getEnv("DB_DSN", "tastebud.db"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		SuggestionTTL:       suggestionTTL,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
