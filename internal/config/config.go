package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Learning LearningConfig
	Auth     AuthConfig
	Security SecurityConfig
	AMQP     AMQPConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
	MigrationsPath  string
	SeedsPath       string
}

// CacheConfig sizes the in-process merchant mapping cache.
type CacheConfig struct {
	TTL           time.Duration
	MaxSize       int
	SweepInterval time.Duration
}

// LearningConfig tunes how learned mappings are applied and how the store is
// protected when it misbehaves.
type LearningConfig struct {
	ConfidenceBoost     int
	StoreMaxFailures    int
	StoreResetTimeout   time.Duration
	StoreHalfOpenProbes int
	SuggestionLimit     int
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// AMQPConfig configures cross-instance cache invalidation. An empty URL
// disables it.
type AMQPConfig struct {
	URL      string
	Exchange string
	Queue    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "receipts_user"),
			Password:        getEnv("DB_PASSWORD", "receipts_password"),
			Name:            getEnv("DB_NAME", "receipts_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		Cache: CacheConfig{
			TTL:           getDurationEnv("CACHE_TTL", 30*time.Minute),
			MaxSize:       getIntEnv("CACHE_MAX_SIZE", 1000),
			SweepInterval: getDurationEnv("CACHE_SWEEP_INTERVAL", 5*time.Minute),
		},
		Learning: LearningConfig{
			ConfidenceBoost:     getIntEnv("LEARNING_CONFIDENCE_BOOST", 15),
			StoreMaxFailures:    getIntEnv("LEARNING_STORE_MAX_FAILURES", 5),
			StoreResetTimeout:   getDurationEnv("LEARNING_STORE_RESET_TIMEOUT", 30*time.Second),
			StoreHalfOpenProbes: getIntEnv("LEARNING_STORE_HALF_OPEN_PROBES", 3),
			SuggestionLimit:     getIntEnv("LEARNING_SUGGESTION_LIMIT", 5),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			Issuer:    getEnv("JWT_ISSUER", "receipt-tracker"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		AMQP: AMQPConfig{
			URL:      os.Getenv("AMQP_URL"),
			Exchange: getEnv("AMQP_EXCHANGE", "merchant-mappings"),
			Queue:    os.Getenv("AMQP_QUEUE"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.Auth.JWTSecret == "" && !config.IsProduction() {
		log.Println("JWT_SECRET not set, using an insecure development secret")
		config.Auth.JWTSecret = "development-only-secret"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set in production environments"))
	}
	if c.Cache.TTL <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be positive, got %s", c.Cache.TTL))
	}
	if c.Cache.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_MAX_SIZE must be positive, got %d", c.Cache.MaxSize))
	}
	if c.Cache.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_SWEEP_INTERVAL must be positive, got %s", c.Cache.SweepInterval))
	}
	if c.Learning.ConfidenceBoost < 0 || c.Learning.ConfidenceBoost > 100 {
		errs = append(errs, fmt.Errorf("LEARNING_CONFIDENCE_BOOST must be between 0 and 100, got %d", c.Learning.ConfidenceBoost))
	}
	if c.Learning.StoreMaxFailures <= 0 {
		errs = append(errs, fmt.Errorf("LEARNING_STORE_MAX_FAILURES must be positive, got %d", c.Learning.StoreMaxFailures))
	}
	if c.Security.RateLimitPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %d", c.Security.RateLimitPerSecond))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Enabled reports whether cross-instance invalidation is configured.
func (c *AMQPConfig) Enabled() bool {
	return c.URL != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins reads a comma-separated origin list, defaulting to all origins
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
