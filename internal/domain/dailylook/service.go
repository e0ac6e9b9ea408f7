package dailylook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/yanqian/daily-look/internal/domain/imagegen"
	"github.com/yanqian/daily-look/internal/domain/outfit"
	"github.com/yanqian/daily-look/internal/domain/weather"
	apperrors "github.com/yanqian/daily-look/pkg/errors"
)

const (
	defaultMaxPhotoBytes  = 10 << 20
	defaultPersistTimeout = 30 * time.Second
)

// Service produces daily looks for subscribers and interactive previews.
type Service struct {
	cfg         Config
	subscribers SubscriberRepository
	deliveries  DeliveryRepository
	storage     ObjectStorage
	weather     WeatherSource
	looks       LookGenerator
	logger      *slog.Logger
	now         Clock
}

// NewService constructs a Service.
func NewService(cfg Config, subscribers SubscriberRepository, deliveries DeliveryRepository, storage ObjectStorage, weather WeatherSource, looks LookGenerator, logger *slog.Logger) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxPhotoBytes <= 0 {
		cfg.MaxPhotoBytes = defaultMaxPhotoBytes
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = outfit.DefaultLocale
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = defaultPersistTimeout
	}
	return &Service{
		cfg:         cfg,
		subscribers: subscribers,
		deliveries:  deliveries,
		storage:     storage,
		weather:     weather,
		looks:       looks,
		logger:      logger.With("component", "dailylook.service"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Scenarios returns today's weather and prompts without generating images.
func (s *Service) Scenarios(ctx context.Context, req ScenarioRequest) (ScenarioResponse, error) {
	now := s.now()
	snap := weather.Default()
	if req.Latitude != nil && req.Longitude != nil {
		snap = s.weather.Current(ctx, weather.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude})
	}
	locale := outfit.ParseLocale(req.Locale, s.cfg.DefaultLocale)
	scenarios := outfit.Localize(outfit.DailyScenarios(now, snap, outfit.ParseGender(req.Gender)), locale)
	return ScenarioResponse{
		Day:       outfit.DayIndex(now),
		Weather:   snap,
		Scenarios: scenarios,
	}, nil
}

// Preview generates today's looks for an uploaded photo.
func (s *Service) Preview(ctx context.Context, req PreviewRequest) (LooksResponse, error) {
	if _, err := imagegen.ParsePhoto(req.Photo); err != nil {
		return LooksResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "photo must be a base64 image data uri", err)
	}
	scen, err := s.Scenarios(ctx, ScenarioRequest{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Gender:    req.Gender,
		Locale:    req.Locale,
	})
	if err != nil {
		return LooksResponse{}, err
	}
	requestID := uuid.NewString()
	logger := s.logger.With("request_id", requestID)
	logger.Info("generating preview", "day", scen.Day, "condition", scen.Weather.Condition, "temp", scen.Weather.Temp)

	looks, err := s.looks.Generate(ctx, req.Photo, outfit.ParseGender(req.Gender), imagegen.EditClothing, scen.Scenarios)
	if err != nil {
		return LooksResponse{}, err
	}
	snap := scen.Weather
	return LooksResponse{
		RequestID: requestID,
		Day:       scen.Day,
		Weather:   &snap,
		Looks:     looks,
		Requested: len(scen.Scenarios),
	}, nil
}

// TryHairstyles renders the requested hairstyles, or the whole catalog when none are named.
func (s *Service) TryHairstyles(ctx context.Context, req HairstyleRequest) (LooksResponse, error) {
	if _, err := imagegen.ParsePhoto(req.Photo); err != nil {
		return LooksResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "photo must be a base64 image data uri", err)
	}
	gender := outfit.ParseGender(req.Gender)
	locale := outfit.ParseLocale(req.Locale, s.cfg.DefaultLocale)
	scenarios, err := outfit.HairstyleScenarios(gender, req.StyleIDs, locale)
	if err != nil {
		return LooksResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "unknown hairstyle", err)
	}
	requestID := uuid.NewString()
	s.logger.Info("generating hairstyles", "request_id", requestID, "styles", len(scenarios))

	looks, err := s.looks.Generate(ctx, req.Photo, gender, imagegen.EditHairstyle, scenarios)
	if err != nil {
		return LooksResponse{}, err
	}
	return LooksResponse{RequestID: requestID, Looks: looks, Requested: len(scenarios)}, nil
}

// GenerateForSubscriber produces and records the looks of sub for the day of
// now. An existing delivery for that day is returned unchanged.
func (s *Service) GenerateForSubscriber(ctx context.Context, sub Subscriber, now time.Time, runID string) (Delivery, bool, error) {
	day := outfit.DayIndex(now)
	logger := s.logger.With("subscriber", sub.ID, "day", day, "run_id", runID)

	existing, ok, err := s.deliveries.Find(ctx, sub.ID, day)
	if err != nil {
		return Delivery{}, false, apperrors.Wrap(apperrors.CodeStorage, "failed to load delivery", err)
	}
	if ok {
		logger.Info("delivery already recorded")
		return existing, false, nil
	}

	photoURI, err := s.loadPhoto(ctx, sub.PhotoKey)
	if err != nil {
		logger.Error("source photo unavailable", "photo_key", sub.PhotoKey, "error", err)
		return Delivery{}, false, apperrors.Wrap(apperrors.CodePhotoUnavailable, "source photo unavailable", err)
	}

	snap := s.weather.Current(ctx, weather.Coordinates{Latitude: sub.Latitude, Longitude: sub.Longitude})
	locale := outfit.ParseLocale(string(sub.Locale), s.cfg.DefaultLocale)
	gender := outfit.ParseGender(string(sub.Gender))
	scenarios := outfit.Localize(outfit.ScenariosForDay(day, snap, gender), locale)

	looks, err := s.looks.Generate(ctx, photoURI, gender, imagegen.EditClothing, scenarios)
	if err != nil {
		return Delivery{}, false, err
	}

	// Looks finished before a deadline or cancellation are still published.
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PersistTimeout)
	defer cancel()
	published := s.publishLooks(persistCtx, logger, sub.ID, day, looks)

	if ctxErr := ctx.Err(); ctxErr != nil {
		if len(published) == 0 {
			logger.Warn("delivery interrupted before any look was produced", "error", ctxErr)
			return Delivery{}, false, apperrors.Wrap(apperrors.CodeGenerationFailed, "delivery interrupted", ctxErr)
		}
		logger.Warn("delivery interrupted, recording partial looks", "looks", len(published), "requested", len(scenarios), "error", ctxErr)
	}

	delivery, created, err := s.deliveries.Record(persistCtx, Delivery{
		SubscriberID: sub.ID,
		Day:          day,
		RunID:        runID,
		Locale:       locale,
		Weather:      snap,
		Looks:        published,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return Delivery{}, false, apperrors.Wrap(apperrors.CodeStorage, "failed to record delivery", err)
	}
	logger.Info("delivery recorded", "looks", len(delivery.Looks), "created", created, "fallback_weather", snap.Fallback)
	return delivery, created, nil
}

// RunDaily serves every active subscriber on a bounded worker pool. Failures
// of one subscriber never stop the run.
func (s *Service) RunDaily(ctx context.Context) (RunSummary, error) {
	started := s.now()
	summary := RunSummary{RunID: uuid.NewString(), Day: outfit.DayIndex(started), StartedAt: started}
	logger := s.logger.With("run_id", summary.RunID, "day", summary.Day)

	subs, err := s.subscribers.ListActive(ctx)
	if err != nil {
		return RunSummary{}, apperrors.Wrap(apperrors.CodeStorage, "failed to list subscribers", err)
	}
	summary.Subscribers = len(subs)

	var delivered, skipped, failed atomic.Int64
	pool, err := ants.NewPool(s.cfg.Workers, ants.WithPanicHandler(func(p any) {
		failed.Add(1)
		logger.Error("delivery worker panic recovered", "panic", fmt.Sprint(p))
	}))
	if err != nil {
		return RunSummary{}, fmt.Errorf("create delivery pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, sub := range subs {
		sub := sub // per-iteration copy; go directive is below 1.22
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				failed.Add(1)
				logger.Warn("run cancelled before subscriber started", "subscriber", sub.ID, "error", err)
				return
			}
			subCtx := ctx
			if s.cfg.SubscriberDeadline > 0 {
				var cancel context.CancelFunc
				subCtx, cancel = context.WithTimeout(ctx, s.cfg.SubscriberDeadline)
				defer cancel()
			}
			_, created, err := s.GenerateForSubscriber(subCtx, sub, started, summary.RunID)
			switch {
			case err != nil:
				failed.Add(1)
				logger.Error("subscriber delivery failed", "subscriber", sub.ID, "code", apperrors.CodeOf(err), "error", err)
			case created:
				delivered.Add(1)
			default:
				skipped.Add(1)
			}
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
			logger.Error("failed to schedule subscriber", "subscriber", sub.ID, "error", submitErr)
		}
	}
	wg.Wait()

	summary.Delivered = int(delivered.Load())
	summary.Skipped = int(skipped.Load())
	summary.Failed = int(failed.Load())
	summary.FinishedAt = s.now()
	logger.Info("daily run finished",
		"subscribers", summary.Subscribers,
		"delivered", summary.Delivered,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"duration_ms", summary.FinishedAt.Sub(started).Milliseconds(),
	)
	return summary, nil
}

// DeliverSubscriber runs GenerateForSubscriber for one subscriber outside a daily run.
func (s *Service) DeliverSubscriber(ctx context.Context, subscriberID string) (Delivery, error) {
	sub, ok, err := s.subscribers.Get(ctx, subscriberID)
	if err != nil {
		return Delivery{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load subscriber", err)
	}
	if !ok || !sub.Active {
		return Delivery{}, apperrors.Wrap(apperrors.CodeNotFound, "subscriber not found", nil)
	}
	delivery, _, err := s.GenerateForSubscriber(ctx, sub, s.now(), uuid.NewString())
	return delivery, err
}

func (s *Service) loadPhoto(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("subscriber has no photo")
	}
	body, err := s.storage.Get(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(io.LimitReader(body, s.cfg.MaxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("photo is empty")
	}
	if int64(len(data)) > s.cfg.MaxPhotoBytes {
		return "", fmt.Errorf("photo exceeds %d bytes", s.cfg.MaxPhotoBytes)
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("photo has content type %s", mimeType)
	}
	return imagegen.EncodeDataURI(mimeType, data), nil
}

// publishLooks moves generated images into storage and swaps the data URI for
// a public URL. Looks that fail to upload are dropped.
func (s *Service) publishLooks(ctx context.Context, logger *slog.Logger, subscriberID string, day int64, looks []imagegen.Look) []imagegen.Look {
	out := make([]imagegen.Look, 0, len(looks))
	for _, look := range looks {
		img, err := imagegen.ParsePhoto(look.URL)
		if err != nil {
			logger.Warn("generated look is not an image", "scenario", look.ID, "error", err)
			continue
		}
		key := lookKey(subscriberID, day, look.ID, img.MimeType)
		if _, err := s.storage.Put(ctx, key, img.Data, img.MimeType); err != nil {
			logger.Warn("failed to store look", "scenario", look.ID, "key", key, "error", err)
			continue
		}
		look.URL = s.storage.PublicURL(key)
		out = append(out, look)
	}
	return out
}

func lookKey(subscriberID string, day int64, scenarioID, mimeType string) string {
	return fmt.Sprintf("looks/%s/%d/%s.%s", subscriberID, day, scenarioID, imagegen.Extension(mimeType))
}
