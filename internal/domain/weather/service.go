package weather

import (
	"context"
	"fmt"
	"log/slog"
)

// Service resolves the conditions used to pick outfits. It never fails:
// upstream absence degrades to Default().
type Service struct {
	cfg      Config
	provider Provider
	cache    Cache
	logger   *slog.Logger
}

// NewService wires the weather adapter.
func NewService(cfg Config, provider Provider, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		logger:   logger.With("component", "weather.service"),
	}
}

// Current returns live conditions for coords, a cached copy, or the default snapshot.
func (s *Service) Current(ctx context.Context, coords Coordinates) Snapshot {
	if !coords.Valid() {
		s.logger.Warn("invalid coordinates, using default weather", "lat", coords.Latitude, "lon", coords.Longitude)
		return Default()
	}

	key := cacheKey(coords)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("weather cache read failed", "key", key, "error", err)
		} else if ok {
			return cached
		}
	}

	if s.provider == nil {
		return Default()
	}
	snapshot, err := s.provider.Current(ctx, coords)
	if err != nil {
		s.logger.Warn("weather fetch failed, using default", "key", key, "error", err)
		return Default()
	}
	s.logger.Info("weather fetched", "key", key, "condition", snapshot.Condition, "temp", snapshot.Temp)

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if err := s.cache.Set(ctx, key, snapshot, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("weather cache write failed", "key", key, "error", err)
		}
	}
	return snapshot
}

// cacheKey buckets coordinates to two decimals (~1km) so nearby subscribers share entries.
func cacheKey(c Coordinates) string {
	return fmt.Sprintf("%.2f,%.2f", c.Latitude, c.Longitude)
}
