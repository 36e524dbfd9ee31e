package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mirak10/PeopleIQ/internal/events"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates application settings sourced from the environment.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type HTTPConfig struct {
	Port               string        `mapstructure:"port"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout"`
	CORSAllowedOrigins string        `mapstructure:"cors_allowed_origins"`
}

// AllowedOrigins splits the comma separated CORS origin list.
func (h HTTPConfig) AllowedOrigins() []string {
	var out []string
	for _, origin := range strings.Split(h.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

type DatabaseConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// DSN builds a libpq style connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Enabled is false when no address is configured; caching is then skipped.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

type KafkaConfig struct {
	Broker             string        `mapstructure:"broker"`
	PredictionTopic    string        `mapstructure:"prediction_topic"`
	PredictionGroupID  string        `mapstructure:"prediction_group_id"`
	OutboxPollInterval time.Duration `mapstructure:"outbox_poll_interval"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", "5000")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.cors_allowed_origins", "*")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "peopleiq")
	v.SetDefault("database.name", "peopleiq")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_retries", 5)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.cache_ttl", 5*time.Minute)
	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.prediction_topic", events.PredictionFeedTopic)
	v.SetDefault("kafka.prediction_group_id", "peopleiq-prediction-feed")
	v.SetDefault("kafka.outbox_poll_interval", 3*time.Second)
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"app.env":                    "APP_ENV",
		"http.port":                  "PORT",
		"http.read_timeout":          "HTTP_READ_TIMEOUT",
		"http.write_timeout":         "HTTP_WRITE_TIMEOUT",
		"http.idle_timeout":          "HTTP_IDLE_TIMEOUT",
		"http.cors_allowed_origins":  "CORS_ALLOWED_ORIGINS",
		"database.host":              "DB_HOST",
		"database.port":              "DB_PORT",
		"database.user":              "DB_USER",
		"database.password":          "DB_PASSWORD",
		"database.name":              "DB_NAME",
		"database.sslmode":           "DB_SSLMODE",
		"database.max_retries":       "DB_MAX_RETRIES",
		"redis.addr":                 "REDIS_ADDR",
		"redis.cache_ttl":            "REDIS_CACHE_TTL",
		"kafka.broker":               "KAFKA_BROKER",
		"kafka.prediction_topic":     "KAFKA_PREDICTION_TOPIC",
		"kafka.prediction_group_id":  "KAFKA_PREDICTION_GROUP_ID",
		"kafka.outbox_poll_interval": "KAFKA_OUTBOX_POLL_INTERVAL",
		"auth.jwt_secret":            "JWT_SECRET",
		"auth.token_ttl":             "JWT_TTL",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.HTTP.Port) == "" {
		errs = append(errs, "http port is required")
	}
	if c.Database.Host == "" {
		errs = append(errs, "database host is required")
	}
	if c.Database.Name == "" {
		errs = append(errs, "database name is required")
	}
	if c.Database.MaxRetries < 1 {
		errs = append(errs, "database max_retries must be at least 1")
	}
	if len(c.Auth.JWTSecret) < 16 {
		errs = append(errs, "JWT_SECRET must be at least 16 characters")
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, "token ttl must be positive")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
