package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration. Values come from the environment
// (a .env file is loaded by godotenv at startup) and optionally from a
// config.yaml next to the binary; the environment wins.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Quotes   QuotesConfig   `mapstructure:"quotes"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin_mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type PostgresConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type DynamoDBConfig struct {
	Region             string `mapstructure:"region"`
	AccessKeyID        string `mapstructure:"access_key_id"`
	SecretAccessKey    string `mapstructure:"secret_access_key"`
	Endpoint           string `mapstructure:"endpoint"`
	NotificationsTable string `mapstructure:"notifications_table"`
}

type AuthConfig struct {
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	VerificationTTL time.Duration `mapstructure:"verification_ttl"`
	// PublicURL prefixes the verification links handed to users.
	PublicURL string `mapstructure:"public_url"`
	// AdminEmail and AdminPassword seed the first admin account on migrate.
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type QuotesConfig struct {
	ReferenceMaxAttempts int `mapstructure:"reference_max_attempts"`
}

// envBindings maps config keys to the environment variable names the
// deployment uses.
var envBindings = map[string]string{
	"server.port":                   "PORT",
	"server.gin_mode":               "GIN_MODE",
	"server.shutdown_timeout":       "SHUTDOWN_TIMEOUT",
	"log.level":                     "LOG_LEVEL",
	"log.format":                    "LOG_FORMAT",
	"postgres.url":                  "DATABASE_URL",
	"postgres.max_conns":            "DATABASE_MAX_CONNS",
	"redis.addr":                    "REDIS_ADDR",
	"redis.password":                "REDIS_PASSWORD",
	"redis.db":                      "REDIS_DB",
	"redis.cache_ttl":               "SESSION_CACHE_TTL",
	"dynamodb.region":               "AWS_REGION",
	"dynamodb.access_key_id":        "AWS_ACCESS_KEY_ID",
	"dynamodb.secret_access_key":    "AWS_SECRET_ACCESS_KEY",
	"dynamodb.endpoint":             "DYNAMODB_ENDPOINT",
	"dynamodb.notifications_table":  "NOTIFICATIONS_TABLE",
	"auth.session_ttl":              "SESSION_TTL",
	"auth.verification_ttl":         "VERIFICATION_TTL",
	"auth.public_url":               "PUBLIC_URL",
	"auth.admin_email":              "ADMIN_EMAIL",
	"auth.admin_password":           "ADMIN_PASSWORD",
	"quotes.reference_max_attempts": "REFERENCE_MAX_ATTEMPTS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 5*time.Minute)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.notifications_table", "notifications")
	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
	v.SetDefault("auth.verification_ttl", 24*time.Hour)
	v.SetDefault("auth.public_url", "http://localhost:8080")
	v.SetDefault("quotes.reference_max_attempts", 5)
}

// Load reads the configuration. configFile may be empty; a missing file is
// not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Postgres.URL) == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Server.Port)
	}
	if c.Postgres.MaxConns <= 0 {
		return fmt.Errorf("config: DATABASE_MAX_CONNS must be positive, got %d", c.Postgres.MaxConns)
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	if c.Auth.VerificationTTL <= 0 {
		return errors.New("config: VERIFICATION_TTL must be positive")
	}
	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPassword == "") {
		return errors.New("config: ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	if c.Quotes.ReferenceMaxAttempts <= 0 {
		return errors.New("config: REFERENCE_MAX_ATTEMPTS must be positive")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// RedisEnabled reports whether a session cache is configured.
func (c *Config) RedisEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}
