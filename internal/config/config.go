package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the pipeline and the API.
type Config struct {
	App    AppConfig
	Linear LinearConfig
	Redis  RedisConfig
	Logger LoggerConfig
	Output OutputConfig
}

// AppConfig controls API server behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LinearConfig holds upstream tracker access values.
type LinearConfig struct {
	APIKey         string
	APIURL         string
	TeamID         string
	PageSize       int
	MaxPages       int
	WindowDays     int
	RequestTimeout time.Duration
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// OutputConfig controls where run artifacts are written.
type OutputConfig struct {
	Dir string
}

// Load reads configuration from environment variables, applying defaults
// where possible. The upstream API key has no default; its absence is a
// startup failure.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("LINEAR_API_KEY")
	if apiKey == "" {
		return nil, errors.New("LINEAR_API_KEY environment variable not set")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "feedback-insights"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Linear: LinearConfig{
			APIKey:         apiKey,
			APIURL:         getEnv("LINEAR_API_URL", "https://api.linear.app/graphql"),
			TeamID:         getEnv("LINEAR_TEAM_ID", "fb28fcfd-dce3-42ce-87d3-57d084be9e97"),
			PageSize:       getEnvAsInt("LINEAR_PAGE_SIZE", 250),
			MaxPages:       getEnvAsInt("LINEAR_MAX_PAGES", 20),
			WindowDays:     getEnvAsInt("FETCH_WINDOW_DAYS", 90),
			RequestTimeout: time.Duration(getEnvAsInt("LINEAR_REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "data"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Window returns the creation-time lower bound for the fetch filter.
func (l LinearConfig) Window(now time.Time) time.Time {
	days := l.WindowDays
	if days <= 0 {
		days = 90
	}
	return now.AddDate(0, 0, -days)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
