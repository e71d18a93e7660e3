package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Argon2      Argon2Config
	RateLimit   RateLimitConfig
	Lockout     LockoutConfig
	Notify      NotifyConfig
	Storage     StorageConfig
	Suggestions SuggestionsConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// IsDevelopment reports whether ENV selects development mode.
func (s ServerConfig) IsDevelopment() bool {
	return s.Env == "" || s.Env == "development"
}

// DatabaseConfig selects persistence. An empty URL runs on in-memory repositories.
type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	PrivateKeyPath string
	Issuer         string
	Audience       string
	AccessExpiry   int64 // seconds
}

type Argon2Config struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
}

type RateLimitConfig struct {
	RatePerIP   string // e.g. "100-M"
	RatePerUser string
}

type LockoutConfig struct {
	MaxAttempts     int
	CooldownSeconds int
}

// NotifyConfig selects the outbound notification channels; empty disables one.
type NotifyConfig struct {
	WebhookURL string
	AMQPURL    string
}

type StorageConfig struct {
	UploadDir string
	GCSBucket string
}

type SuggestionsConfig struct {
	Limit          int
	MentorCacheTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_ISSUER", "mentorship")
	v.SetDefault("JWT_AUDIENCE", "mentorship")
	v.SetDefault("JWT_ACCESS_EXPIRY", 86400)
	v.SetDefault("ARGON2_MEMORY", 64*1024)
	v.SetDefault("ARGON2_ITERATIONS", 3)
	v.SetDefault("ARGON2_PARALLELISM", 2)
	v.SetDefault("RATE_LIMIT_IP", "300-M")
	v.SetDefault("RATE_LIMIT_USER", "120-M")
	v.SetDefault("LOCKOUT_MAX_ATTEMPTS", 5)
	v.SetDefault("LOCKOUT_COOLDOWN_SECONDS", 900)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("SUGGESTION_LIMIT", 10)
	v.SetDefault("MENTOR_CACHE_TTL", "5m")
}

// Load reads .env (if present), then CONFIG_FILE (if set), then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			Env:         strings.ToLower(v.GetString("ENV")),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{URL: v.GetString("DATABASE_URL")},
		Redis:    RedisConfig{URL: v.GetString("REDIS_URL")},
		JWT: JWTConfig{
			PrivateKeyPath: v.GetString("JWT_PRIVATE_KEY_PATH"),
			Issuer:         v.GetString("JWT_ISSUER"),
			Audience:       v.GetString("JWT_AUDIENCE"),
			AccessExpiry:   v.GetInt64("JWT_ACCESS_EXPIRY"),
		},
		Argon2: Argon2Config{
			Memory:      uint32(v.GetInt("ARGON2_MEMORY")),
			Iterations:  uint32(v.GetInt("ARGON2_ITERATIONS")),
			Parallelism: uint8(v.GetInt("ARGON2_PARALLELISM")),
		},
		RateLimit: RateLimitConfig{
			RatePerIP:   v.GetString("RATE_LIMIT_IP"),
			RatePerUser: v.GetString("RATE_LIMIT_USER"),
		},
		Lockout: LockoutConfig{
			MaxAttempts:     v.GetInt("LOCKOUT_MAX_ATTEMPTS"),
			CooldownSeconds: v.GetInt("LOCKOUT_COOLDOWN_SECONDS"),
		},
		Notify: NotifyConfig{
			WebhookURL: v.GetString("WEBHOOK_URL"),
			AMQPURL:    v.GetString("AMQP_URL"),
		},
		Storage: StorageConfig{
			UploadDir: v.GetString("UPLOAD_DIR"),
			GCSBucket: v.GetString("GCS_BUCKET"),
		},
		Suggestions: SuggestionsConfig{
			Limit:          v.GetInt("SUGGESTION_LIMIT"),
			MentorCacheTTL: v.GetDuration("MENTOR_CACHE_TTL"),
		},
	}
	if cfg.JWT.AccessExpiry <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}
	if cfg.Argon2.Memory == 0 || cfg.Argon2.Iterations == 0 || cfg.Argon2.Parallelism == 0 {
		return nil, fmt.Errorf("ARGON2_* parameters must be positive")
	}
	if cfg.Suggestions.Limit <= 0 {
		return nil, fmt.Errorf("SUGGESTION_LIMIT must be positive")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadJWTPrivateKey reads the PEM file and returns its contents. With no
// path configured it returns nil, and the caller generates an ephemeral key.
func (c *Config) LoadJWTPrivateKey() ([]byte, error) {
	if c.JWT.PrivateKeyPath == "" {
		return nil, nil
	}
	return os.ReadFile(c.JWT.PrivateKeyPath)
}
