package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	PlanSourceContent = "content"
	PlanSourceMySQL   = "mysql"
)

type Config struct {
	App               AppConfig
	HTTP              ServerConfig
	GRPC              ServerConfig
	MySQL             MySQLConfig
	Redis             RedisConfig
	Log               LogConfig
	InternalEndpoints InternalEndpointsConfig
	Site              SiteConfig
	Contact           ContactConfig
	Jobs              JobsConfig
}

type AppConfig struct {
	ServiceName string
	APIKey      string
}

type ServerConfig struct {
	Host string
	Port string
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c MySQLConfig) Enabled() bool {
	return c.DSN != ""
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type LogConfig struct {
	Level string
}

type InternalEndpointsConfig struct {
	AuthGRPCAddr string
}

type SiteConfig struct {
	ContentPath         string
	PlanSource          string
	TestimonialRotation time.Duration
}

type ContactConfig struct {
	RateLimit       int
	RateLimitWindow time.Duration
	Retention       time.Duration
}

type JobsConfig struct {
	ContactPurgeInterval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "website-service"),
			APIKey:      getEnv("APP_API_KEY", ""),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: ServerConfig{
			Host: getEnv("GRPC_HOST", "0.0.0.0"),
			Port: getEnv("GRPC_PORT", "9090"),
		},
		MySQL: MySQLConfig{
			DSN:             os.Getenv("MYSQL_DSN"),
			MaxOpenConns:    getIntEnv("MYSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("MYSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("MYSQL_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Log: LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		InternalEndpoints: InternalEndpointsConfig{
			AuthGRPCAddr: os.Getenv("AUTH_SERVICE_GRPC_ADDR"),
		},
		Site: SiteConfig{
			ContentPath:         os.Getenv("SITE_CONTENT_PATH"),
			PlanSource:          strings.ToLower(getEnv("PLAN_SOURCE", PlanSourceContent)),
			TestimonialRotation: getSecondsEnv("TESTIMONIAL_ROTATION_SECONDS", 6*time.Second),
		},
		Contact: ContactConfig{
			RateLimit:       getIntEnv("CONTACT_RATE_LIMIT", 5),
			RateLimitWindow: getDurationEnv("CONTACT_RATE_WINDOW_MINUTES", 60*time.Minute),
			Retention:       time.Duration(getIntEnv("CONTACT_RETENTION_DAYS", 180)) * 24 * time.Hour,
		},
		Jobs: JobsConfig{
			ContactPurgeInterval: getDurationEnv("CONTACT_PURGE_INTERVAL_MINUTES", 1440*time.Minute),
		},
	}

	switch cfg.Site.PlanSource {
	case PlanSourceContent:
	case PlanSourceMySQL:
		if !cfg.MySQL.Enabled() {
			return nil, errors.New("MYSQL_DSN environment variable is required when PLAN_SOURCE=mysql")
		}
	default:
		return nil, fmt.Errorf("unknown PLAN_SOURCE %q", cfg.Site.PlanSource)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
