package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Registration RegistrationConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds token validation configuration. Tokens are issued by the
// external auth collaborator; this service only verifies them.
type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// RegistrationConfig holds the join-workflow policy knobs
type RegistrationConfig struct {
	// MaxAttempts bounds the read-validate-write retry loop on version
	// conflicts.
	MaxAttempts int
	// UniqueTeamNames rejects a second team with the same name on one event.
	UniqueTeamNames bool
	// SingleTeamPerEvent rejects joining a team when the actor is already
	// on another team of the same event.
	SingleTeamPerEvent bool
	// RosterCacheTTL is how long assembled rosters may be served from cache.
	RosterCacheTTL time.Duration
	// CloseInterval is how often the deadline sweep runs.
	CloseInterval time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "campushub"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
		},
		Registration: RegistrationConfig{
			MaxAttempts:        getEnvAsInt("REGISTRATION_MAX_ATTEMPTS", 3),
			UniqueTeamNames:    getEnvAsBool("REGISTRATION_UNIQUE_TEAM_NAMES", true),
			SingleTeamPerEvent: getEnvAsBool("REGISTRATION_SINGLE_TEAM_PER_EVENT", true),
			RosterCacheTTL:     getEnvAsDuration("ROSTER_CACHE_TTL", 15*time.Second),
			CloseInterval:      getEnvAsDuration("EVENT_CLOSE_INTERVAL", time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
