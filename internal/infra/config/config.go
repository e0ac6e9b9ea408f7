package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Weather  WeatherConfig  `yaml:"weather"`
	ImageGen ImageGenConfig `yaml:"imageGen"`
	Storage  StorageConfig  `yaml:"storage"`
	Delivery DeliveryConfig `yaml:"delivery"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	MaxBodyBytes   int64           `yaml:"maxBodyBytes"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	AdminToken     string          `yaml:"adminToken"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// WeatherConfig controls the OpenWeatherMap adapter and its cache.
type WeatherConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	APIKey     string        `yaml:"apiKey"`
	CacheTTL   time.Duration `yaml:"cacheTtl"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for cache storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// ImageGenConfig contains Gemini settings and the retry/pacing policy.
type ImageGenConfig struct {
	APIKey         string        `yaml:"apiKey"`
	BaseURL        string        `yaml:"baseUrl"`
	PrimaryModel   string        `yaml:"primaryModel"`
	SecondaryModel string        `yaml:"secondaryModel"`
	MaxRetries     int           `yaml:"maxRetries"`
	BackoffStep    time.Duration `yaml:"backoffStep"`
	Stagger        time.Duration `yaml:"stagger"`
	BatchDeadline  time.Duration `yaml:"batchDeadline"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// StorageConfig points at the R2 bucket holding photos and looks.
type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"accessKey"`
	SecretKey     string `yaml:"secretKey"`
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	PublicBaseURL string `yaml:"publicBaseUrl"`
}

// Enabled reports whether enough R2 settings are present to use it.
func (s StorageConfig) Enabled() bool {
	return strings.TrimSpace(s.Endpoint) != "" && strings.TrimSpace(s.Bucket) != ""
}

// DeliveryConfig drives the daily run.
type DeliveryConfig struct {
	Postgres           PostgresConfig `yaml:"postgres"`
	Workers            int            `yaml:"workers"`
	SubscriberDeadline time.Duration  `yaml:"subscriberDeadline"`
	PersistTimeout     time.Duration  `yaml:"persistTimeout"`
	DefaultLocale      string         `yaml:"defaultLocale"`
	MaxPhotoBytes      int64          `yaml:"maxPhotoBytes"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString("HTTP_ADDRESS", &cfg.HTTP.Address)
	setString("HTTP_ADMIN_TOKEN", &cfg.HTTP.AdminToken)
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	setBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	setInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	setInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)

	setString("WEATHER_API_BASE_URL", &cfg.Weather.APIBaseURL)
	setString("WEATHER_API_KEY", &cfg.Weather.APIKey)
	setDuration("WEATHER_CACHE_TTL", &cfg.Weather.CacheTTL)
	setBool("WEATHER_REDIS_ENABLED", &cfg.Weather.Redis.Enabled)
	setString("WEATHER_REDIS_ADDR", &cfg.Weather.Redis.Addr)

	setString("GEMINI_API_KEY", &cfg.ImageGen.APIKey)
	setString("GEMINI_BASE_URL", &cfg.ImageGen.BaseURL)
	setString("IMAGE_PRIMARY_MODEL", &cfg.ImageGen.PrimaryModel)
	setString("IMAGE_SECONDARY_MODEL", &cfg.ImageGen.SecondaryModel)
	setInt("IMAGE_MAX_RETRIES", &cfg.ImageGen.MaxRetries)
	setDuration("IMAGE_BACKOFF_STEP", &cfg.ImageGen.BackoffStep)
	setDuration("IMAGE_STAGGER", &cfg.ImageGen.Stagger)
	setDuration("IMAGE_BATCH_DEADLINE", &cfg.ImageGen.BatchDeadline)
	setDuration("IMAGE_REQUEST_TIMEOUT", &cfg.ImageGen.RequestTimeout)

	setString("R2_ENDPOINT", &cfg.Storage.Endpoint)
	setString("R2_ACCESS_KEY", &cfg.Storage.AccessKey)
	setString("R2_SECRET_KEY", &cfg.Storage.SecretKey)
	setString("R2_BUCKET", &cfg.Storage.Bucket)
	setString("R2_REGION", &cfg.Storage.Region)
	setString("R2_PUBLIC_BASE_URL", &cfg.Storage.PublicBaseURL)

	setString("DELIVERY_POSTGRES_DSN", &cfg.Delivery.Postgres.DSN)
	if v := os.Getenv("DELIVERY_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Delivery.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("DELIVERY_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Delivery.Postgres.MinConns = int32(parsed)
		}
	}
	setInt("DELIVERY_WORKERS", &cfg.Delivery.Workers)
	setDuration("DELIVERY_SUBSCRIBER_DEADLINE", &cfg.Delivery.SubscriberDeadline)
	setDuration("DELIVERY_PERSIST_TIMEOUT", &cfg.Delivery.PersistTimeout)
	setString("DELIVERY_DEFAULT_LOCALE", &cfg.Delivery.DefaultLocale)
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   5 * time.Minute,
			MaxBodyBytes:   15 << 20,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				Burst:             10,
			},
		},
		Weather: WeatherConfig{
			APIBaseURL: "https://api.openweathermap.org/data/2.5/weather",
			CacheTTL:   30 * time.Minute,
		},
		ImageGen: ImageGenConfig{
			BaseURL:        "https://generativelanguage.googleapis.com/v1beta",
			PrimaryModel:   "gemini-2.5-flash-image",
			SecondaryModel: "gemini-2.0-flash-preview-image-generation",
			MaxRetries:     2,
			BackoffStep:    2 * time.Second,
			Stagger:        time.Second,
			BatchDeadline:  3 * time.Minute,
			RequestTimeout: 90 * time.Second,
		},
		Storage: StorageConfig{
			Region: "auto",
		},
		Delivery: DeliveryConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
			Workers:            4,
			SubscriberDeadline: 5 * time.Minute,
			PersistTimeout:     30 * time.Second,
			DefaultLocale:      "ko",
			MaxPhotoBytes:      10 << 20,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}
	if c.Weather.Redis.Enabled && strings.TrimSpace(c.Weather.Redis.Addr) == "" {
		return errors.New("weather.redis.addr cannot be empty when redis cache is enabled")
	}
	if strings.TrimSpace(c.ImageGen.PrimaryModel) == "" {
		return errors.New("imageGen.primaryModel cannot be empty")
	}
	if c.ImageGen.MaxRetries < 0 {
		return errors.New("imageGen.maxRetries cannot be negative")
	}
	if c.ImageGen.BackoffStep < 0 || c.ImageGen.Stagger < 0 {
		return errors.New("imageGen.backoffStep and imageGen.stagger cannot be negative")
	}
	if c.ImageGen.BatchDeadline < 0 {
		return errors.New("imageGen.batchDeadline cannot be negative")
	}
	if c.Storage.Enabled() {
		if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			return errors.New("storage.accessKey and storage.secretKey are required when storage.endpoint is set")
		}
		if strings.TrimSpace(c.Storage.PublicBaseURL) == "" {
			return errors.New("storage.publicBaseUrl cannot be empty when storage is enabled")
		}
	}
	if c.Delivery.Workers <= 0 {
		return errors.New("delivery.workers must be positive")
	}
	if c.Delivery.SubscriberDeadline < 0 {
		return errors.New("delivery.subscriberDeadline cannot be negative")
	}
	if c.Delivery.PersistTimeout < 0 {
		return errors.New("delivery.persistTimeout cannot be negative")
	}
	switch c.Delivery.DefaultLocale {
	case "ko", "en", "ja", "zh", "es":
	default:
		return fmt.Errorf("delivery.defaultLocale %q is not supported", c.Delivery.DefaultLocale)
	}
	return nil
}
