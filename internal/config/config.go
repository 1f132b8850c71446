package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Environment string
	Server      ServerConfig
	Mongo       MongoConfig
	Steam       SteamConfig
	AI          AIConfig
	Report      ReportConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type SteamConfig struct {
	BaseURL  string
	Language string
	PageSize int
	Timeout  time.Duration
}

// AIConfig configures the optional LLM summarizer. An empty APIKey disables
// the AI path entirely; report generation then always uses the rule-based
// fallback.
type AIConfig struct {
	APIURL       string
	APIKey       string
	Model        string
	Timeout      time.Duration
	MaxRetryTime time.Duration
}

type ReportConfig struct {
	CacheTTL   time.Duration
	Retention  time.Duration
	MaxReviews int
	GameLimit  int
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Environment: getEnv("ENVIRONMENT", "local"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "steam_reviews"),
			ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Steam: SteamConfig{
			BaseURL:  getEnv("STEAM_BASE_URL", "https://store.steampowered.com"),
			Language: getEnv("STEAM_REVIEW_LANGUAGE", "schinese"),
			PageSize: getEnvAsInt("STEAM_REVIEW_PAGE_SIZE", 100),
			Timeout:  getEnvAsDuration("STEAM_TIMEOUT", 12*time.Second),
		},
		AI: AIConfig{
			APIURL:       getEnv("AI_API_URL", "https://api.deepseek.com/chat/completions"),
			APIKey:       getEnv("AI_API_KEY", ""),
			Model:        getEnv("AI_MODEL", "deepseek-chat"),
			Timeout:      getEnvAsDuration("AI_TIMEOUT", 25*time.Second),
			MaxRetryTime: getEnvAsDuration("AI_MAX_RETRY_TIME", 45*time.Second),
		},
		Report: ReportConfig{
			CacheTTL:   getEnvAsDuration("REPORT_CACHE_TTL", time.Hour),
			Retention:  getEnvAsDuration("REPORT_RETENTION", 30*24*time.Hour),
			MaxReviews: getEnvAsInt("REPORT_MAX_REVIEWS", 100),
			GameLimit:  getEnvAsInt("GAME_LIMIT", 5),
		},
	}

	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI must not be empty")
	}
	if cfg.Report.MaxReviews <= 0 {
		return fmt.Errorf("REPORT_MAX_REVIEWS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	return strings.Split(value, ",")
}
