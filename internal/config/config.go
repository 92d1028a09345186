package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

// DefaultPromotedCategories are the catalog categories advertised as banners
// until an operator replaces them through the API.
var DefaultPromotedCategories = []int{5, 8, 9, 6, 10, 7}

// Config holds environment-driven configuration for both binaries.
type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	PromotedCategories []int

	WebAddr      string
	APIBaseURL   string
	FetchTimeout time.Duration
}

// Load reads configuration from environment variables. A `.env` file in the
// working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("STOREFRONT_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		PromotedCategories: parseIDs(os.Getenv("PROMOTED_CATEGORIES")),
		WebAddr:            getEnv("WEB_ADDR", ":3000"),
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		FetchTimeout:       parseDuration(os.Getenv("FETCH_TIMEOUT"), 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseIDs turns "5, 8,9" into []int{5, 8, 9}. Invalid entries are skipped;
// the defaults apply when nothing valid is left.
func parseIDs(raw string) []int {
	if strings.TrimSpace(raw) == "" {
		return defaultPromoted()
	}
	out := make([]int, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			log.Warnf("config: ignoring promoted category %q", part)
			continue
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		log.Warnf("config: PROMOTED_CATEGORIES %q has no valid ids, using defaults", raw)
		return defaultPromoted()
	}
	return out
}

func defaultPromoted() []int {
	out := make([]int, len(DefaultPromotedCategories))
	copy(out, DefaultPromotedCategories)
	return out
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Warnf("config: invalid FETCH_TIMEOUT %q, using %s", raw, fallback)
		return fallback
	}
	return d
}
