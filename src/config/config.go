package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	Env     string

	MongoURI string
	MongoDB  string

	// RedisURI is optional. Without it the published-form cache is disabled
	// and form deletion purges responses inline instead of via the queue.
	RedisURI     string
	FormCacheTTL time.Duration

	CORSOrigins string
	LogLevel    string
	BodyLimitMB int

	// PublicBaseURL is where respondents open forms; share links and QR
	// codes point at PublicBaseURL/form/<slug>.
	PublicBaseURL string
	SeedDemo      bool
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		AppPort:      envOr("APP_PORT", "8888"),
		Env:          envOr("ENV", "development"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      envOr("MONGO_DB", "FormBuilderDB"),
		RedisURI:     os.Getenv("REDIS_URI"),
		FormCacheTTL: envDuration("FORM_CACHE_TTL", 10*time.Minute),
		CORSOrigins:  envOr("CORS_ORIGINS", "*"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		BodyLimitMB:  envInt("BODY_LIMIT_MB", 10),

		PublicBaseURL: envOr("PUBLIC_BASE_URL", "http://localhost:3000"),
		SeedDemo:      envBool("SEED_DEMO"),
	}
	if cfg.MongoURI == "" {
		return cfg, errors.New("MONGO_URI environment variable not set")
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d < 0 {
		return def
	}
	return d
}

func envBool(k string) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	return err == nil && b
}
