package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rohanthewiz/serr"
)

// Config holds all runtime settings. Everything comes from the environment,
// with a .env file honored for local development.
type Config struct {
	PexelsAPIKey    string
	PexelsBaseURL   string
	ServerAddress   string
	RequestTimeout  time.Duration
	DefaultPerPage  int
	MaxPerPage      int
	CacheDB         string
	CacheTTL        time.Duration
	RateLimitPerMin int
	LogLevel        string
}

// Load reads configuration from the environment. The Pexels API key is the one
// hard requirement - the app cannot do anything useful without it, so we refuse
// to start rather than fail on the first search.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, serr.Wrap(err, "error loading .env file")
	}

	apiKey := strings.TrimSpace(os.Getenv("PEXELS_API_KEY"))
	if apiKey == "" {
		return nil, serr.New("a PEXELS_API_KEY environment variable is required to run this application")
	}

	cfg := &Config{
		PexelsAPIKey:    apiKey,
		PexelsBaseURL:   getEnv("PEXELS_BASE_URL", "https://api.pexels.com/v1/search"),
		ServerAddress:   getEnv("SERVER_ADDRESS", ":8080"),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		DefaultPerPage:  getEnvInt("DEFAULT_PER_PAGE", 15),
		MaxPerPage:      getEnvInt("MAX_PER_PAGE", 80),
		CacheDB:         getEnvAllowEmpty("CACHE_DB", "./data/photosearch.ddb"),
		CacheTTL:        getEnvDuration("CACHE_TTL", 24*time.Hour),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DefaultPerPage < 1 {
		cfg.DefaultPerPage = 15
	}
	if cfg.MaxPerPage < cfg.DefaultPerPage {
		cfg.MaxPerPage = cfg.DefaultPerPage
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAllowEmpty differs from getEnv in that an explicitly-set empty value
// is honored. Setting CACHE_DB= to empty disables caching.
func getEnvAllowEmpty(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
