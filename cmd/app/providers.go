package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/domain/imagegen"
	"github.com/yanqian/daily-look/internal/domain/outfit"
	"github.com/yanqian/daily-look/internal/domain/weather"
	"github.com/yanqian/daily-look/internal/infra/config"
	"github.com/yanqian/daily-look/internal/infra/llm/gemini"
	"github.com/yanqian/daily-look/internal/infra/storage"
	"github.com/yanqian/daily-look/internal/infra/subscriberrepo"
	"github.com/yanqian/daily-look/internal/infra/weather/openweather"
	"github.com/yanqian/daily-look/internal/infra/weathercache"
)

// subscriberStore is satisfied by both repository backends.
type subscriberStore interface {
	dailylook.SubscriberRepository
	dailylook.DeliveryRepository
}

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{CacheTTL: cfg.Weather.CacheTTL}
}

func provideWeatherClient(cfg *config.Config, logger *slog.Logger) *openweather.Client {
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		logger.Warn("weather api key not set, every request will use the default weather")
	}
	return openweather.NewClient(cfg.Weather.APIBaseURL, cfg.Weather.APIKey)
}

func provideWeatherCache(cfg *config.Config, logger *slog.Logger) weather.Cache {
	if cfg.Weather.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg.Weather.Redis.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return weathercache.NewMemoryCache()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return weathercache.NewMemoryCache()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
			client.Close()
		} else {
			logger.Info("weather valkey cache enabled", "addr", cfg.Weather.Redis.Addr)
			return weathercache.NewValkeyCache(client, "weather")
		}
	}
	return weathercache.NewMemoryCache()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideImageGenConfig(cfg *config.Config) imagegen.Config {
	return imagegen.Config{
		PrimaryModel:   cfg.ImageGen.PrimaryModel,
		SecondaryModel: cfg.ImageGen.SecondaryModel,
		MaxRetries:     cfg.ImageGen.MaxRetries,
		BackoffStep:    cfg.ImageGen.BackoffStep,
		Stagger:        cfg.ImageGen.Stagger,
		BatchDeadline:  cfg.ImageGen.BatchDeadline,
	}
}

func provideGeminiClient(cfg *config.Config) (*gemini.Client, error) {
	return gemini.NewClient(cfg.ImageGen.APIKey, cfg.ImageGen.BaseURL, cfg.ImageGen.RequestTimeout)
}

func provideObjectStorage(cfg *config.Config, logger *slog.Logger) (dailylook.ObjectStorage, error) {
	if !cfg.Storage.Enabled() {
		logger.Info("r2 storage not configured, using memory storage")
		return storage.NewMemoryStorage(cfg.Storage.PublicBaseURL), nil
	}
	r2, err := storage.NewR2Storage(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		cfg.Storage.PublicBaseURL,
		logger,
	)
	if err != nil {
		return nil, err
	}
	logger.Info("r2 storage enabled", "bucket", cfg.Storage.Bucket)
	return r2, nil
}

func provideSubscriberStore(cfg *config.Config, logger *slog.Logger) subscriberStore {
	fallback := subscriberrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Delivery.Postgres.DSN)
	if dsn == "" {
		logger.Info("delivery postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Delivery.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Delivery.Postgres.MaxConns
	}
	if cfg.Delivery.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Delivery.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("delivery postgres repository enabled")
	return subscriberrepo.NewPostgresRepository(pool)
}

func provideSubscriberRepository(store subscriberStore) dailylook.SubscriberRepository {
	return store
}

func provideDeliveryRepository(store subscriberStore) dailylook.DeliveryRepository {
	return store
}

func provideDailyLookConfig(cfg *config.Config) dailylook.Config {
	return dailylook.Config{
		Workers:            cfg.Delivery.Workers,
		SubscriberDeadline: cfg.Delivery.SubscriberDeadline,
		PersistTimeout:     cfg.Delivery.PersistTimeout,
		DefaultLocale:      outfit.ParseLocale(cfg.Delivery.DefaultLocale, outfit.DefaultLocale),
		MaxPhotoBytes:      cfg.Delivery.MaxPhotoBytes,
	}
}
