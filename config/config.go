package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string
	// MongoDB Configuration
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration
	MongoMaxPoolSize    uint64
	MongoMinPoolSize    uint64
	// Token Configuration
	JWTSecretKey      string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Login Throttling Configuration
	FailedLoginBlockMinutes int
	FailedLoginMaxAttempts  int
	// Pagination
	PaginationMaxLimit int
	// HTTP
	CORSAllowedOrigins     []string
	AuthRateLimitPerMinute int
	ShutdownTimeout        time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                strings.TrimSpace(getEnv("PORT", "8080")),
		AppEnv:              strings.ToLower(getEnv("APP_ENV", "development")),
		MongoURI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:       getEnv("MONGODB_DATABASE", "jobsearch"),
		MongoConnectTimeout: getEnvSeconds("MONGODB_CONNECT_TIMEOUT_SECONDS", 10),
		MongoMaxPoolSize:    uint64(getEnvInt("MONGODB_MAX_POOL_SIZE", 25)),
		MongoMinPoolSize:    uint64(getEnvInt("MONGODB_MIN_POOL_SIZE", 5)),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		JWTAccessTokenTTL:   getEnvSeconds("JWT_ACCESS_TOKEN_EXPIRES_SECONDS", 3600),
		BcryptCost:          getEnvInt("BCRYPT_COST", 10),
		RedisURL:            getEnv("REDIS_URL", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		// Login throttling (with sensible defaults)
		FailedLoginBlockMinutes: getEnvInt("FAILED_LOGIN_BLOCK_MINUTES", 15),
		FailedLoginMaxAttempts:  getEnvInt("FAILED_LOGIN_MAX_ATTEMPTS", 5),
		PaginationMaxLimit:      getEnvInt("PAGINATION_MAX_LIMIT", 100),
		CORSAllowedOrigins:      getEnvList("CORS_ALLOWED_ORIGINS"),
		AuthRateLimitPerMinute:  getEnvInt("AUTH_RATE_LIMIT_PER_MINUTE", 10),
		ShutdownTimeout:         getEnvSeconds("SHUTDOWN_TIMEOUT_SECONDS", 5),
	}

	if os.Getenv("MONGODB_URI") == "" {
		log.Println("WARNING: MONGODB_URI is missing. Falling back to mongodb://localhost:27017.")
	}

	if cfg.JWTSecretKey == "" {
		log.Println("WARNING: JWT_SECRET_KEY is missing. Tokens cannot be issued.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Failed-login throttling is disabled.")
	}

	return cfg, nil
}

// IsProduction controls whether internal error details reach clients.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvSeconds reads a whole number of seconds as a duration
func getEnvSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Second
}

// getEnvList splits a comma-separated variable, dropping empty entries.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
