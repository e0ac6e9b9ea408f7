package imagegen

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/daily-look/internal/domain/outfit"
	apperrors "github.com/yanqian/daily-look/pkg/errors"
	"github.com/yanqian/daily-look/pkg/util"
)

// Generator edits one scenario; *Orchestrator satisfies it.
type Generator interface {
	EditPhoto(ctx context.Context, photoURI string, sc outfit.Scenario, gender outfit.Gender, kind EditKind) (Result, error)
}

// Batch runs scenarios one after another with a stagger between requests.
type Batch struct {
	cfg       Config
	generator Generator
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewBatch wires the batch coordinator.
func NewBatch(cfg Config, generator Generator, logger *slog.Logger) *Batch {
	return &Batch{
		cfg:       cfg,
		generator: generator,
		logger:    logger.With("component", "imagegen.batch"),
		sleep:     util.Sleep,
	}
}

// Generate edits photoURI once per scenario. Individual failures are logged and
// skipped; only a malformed source photo aborts the batch. When the batch
// deadline passes the looks produced so far are returned without error.
func (b *Batch) Generate(ctx context.Context, photoURI string, gender outfit.Gender, kind EditKind, scenarios []outfit.Scenario) ([]Look, error) {
	if _, err := ParsePhoto(photoURI); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid source photo", err)
	}
	if b.cfg.BatchDeadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.BatchDeadline)
		defer cancel()
	}

	looks := make([]Look, 0, len(scenarios))
	seen := make(map[string]struct{}, len(scenarios))
	issued := 0
	for _, sc := range scenarios {
		if _, dup := seen[sc.ID]; dup {
			b.logger.Warn("skipping duplicate scenario", "scenario", sc.ID)
			continue
		}
		seen[sc.ID] = struct{}{}

		if issued > 0 {
			if err := b.sleep(ctx, b.cfg.Stagger); err != nil {
				b.logger.Warn("batch deadline reached", "produced", len(looks), "requested", len(scenarios), "error", err)
				break
			}
		}
		issued++

		res, err := b.generator.EditPhoto(ctx, photoURI, sc, gender, kind)
		if err != nil {
			b.logger.Warn("scenario failed, continuing", "scenario", sc.ID, "error", err)
			if ctx.Err() != nil {
				b.logger.Warn("batch deadline reached", "produced", len(looks), "requested", len(scenarios))
				break
			}
			continue
		}
		looks = append(looks, Look{ID: sc.ID, Label: sc.Label, URL: res.DataURI, Model: res.Model})
	}

	b.logger.Info("batch complete", "produced", len(looks), "requested", len(scenarios))
	return looks, nil
}
