package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Banner   BannerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
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

// AuthConfig defines session and credential parameters.
type AuthConfig struct {
	JWTSecret              string
	JWTIssuer              string
	AccessTokenTTLMinutes  int
	StaffRefreshTTLDays    int
	CustomerRefreshTTLDays int
	BcryptCost             int
	CookieSecure           bool
	RefreshDenylist        bool
}

// BannerConfig controls the banner schedule worker.
type BannerConfig struct {
	SchedulerEnabled         bool
	SchedulerIntervalSeconds int
}

const devSecret = "dev-secret"

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "furniro-api"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:              getEnv("AUTH_JWT_SECRET", devSecret),
			JWTIssuer:              getEnv("AUTH_JWT_ISSUER", "furniro"),
			AccessTokenTTLMinutes:  getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 15),
			StaffRefreshTTLDays:    getEnvAsInt("AUTH_STAFF_REFRESH_TTL_DAYS", 30),
			CustomerRefreshTTLDays: getEnvAsInt("AUTH_CUSTOMER_REFRESH_TTL_DAYS", 7),
			BcryptCost:             getEnvAsInt("AUTH_BCRYPT_COST", 12),
			CookieSecure:           getEnvAsBool("AUTH_COOKIE_SECURE", env != "development"),
			RefreshDenylist:        getEnvAsBool("AUTH_REFRESH_DENYLIST", false),
		},
		Banner: BannerConfig{
			SchedulerEnabled:         getEnvAsBool("BANNER_SCHEDULER_ENABLED", true),
			SchedulerIntervalSeconds: getEnvAsInt("BANNER_SCHEDULER_INTERVAL_SECONDS", 300),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.App.Env == "production" && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == devSecret) {
		return errors.New("AUTH_JWT_SECRET must be set in production")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET must not be empty")
	}
	return nil
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

// AccessTTL returns the access token lifetime.
func (a AuthConfig) AccessTTL() time.Duration {
	if a.AccessTokenTTLMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(a.AccessTokenTTLMinutes) * time.Minute
}

// StaffRefreshTTL returns the staff refresh token lifetime.
func (a AuthConfig) StaffRefreshTTL() time.Duration {
	return days(a.StaffRefreshTTLDays, 30)
}

// CustomerRefreshTTL returns the customer refresh token lifetime.
func (a AuthConfig) CustomerRefreshTTL() time.Duration {
	return days(a.CustomerRefreshTTLDays, 7)
}

// SchedulerInterval returns how often banner windows are re-evaluated.
func (b BannerConfig) SchedulerInterval() time.Duration {
	if b.SchedulerIntervalSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(b.SchedulerIntervalSeconds) * time.Second
}

func days(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * 24 * time.Hour
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

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
