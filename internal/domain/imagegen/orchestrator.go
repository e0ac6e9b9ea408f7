package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yanqian/daily-look/internal/domain/outfit"
	apperrors "github.com/yanqian/daily-look/pkg/errors"
	"github.com/yanqian/daily-look/pkg/metrics"
	"github.com/yanqian/daily-look/pkg/util"
)

// Orchestrator turns a source photo and a scenario into an edited photo.
type Orchestrator struct {
	cfg    Config
	editor Editor
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewOrchestrator wires the model fallback chain.
func NewOrchestrator(cfg Config, editor Editor, logger *slog.Logger) *Orchestrator {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &Orchestrator{
		cfg:    cfg,
		editor: editor,
		logger: logger.With("component", "imagegen.orchestrator"),
		sleep:  util.Sleep,
	}
}

// EditPhoto runs the primary model, then the secondary on failure. When both
// fail, or a reply carries no image, the pair is retried up to MaxRetries
// times waiting attempt*BackoffStep before each retry.
func (o *Orchestrator) EditPhoto(ctx context.Context, photoURI string, sc outfit.Scenario, gender outfit.Gender, kind EditKind) (Result, error) {
	photo, err := ParsePhoto(photoURI)
	if err != nil {
		o.logger.Error("rejecting malformed source photo", "scenario", sc.ID, "error", err)
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid source photo", err)
	}
	models := o.cfg.Models()
	if len(models) == 0 {
		return Result{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "no image models configured", ErrNoImage)
	}

	instruction := BuildEditInstruction(kind, gender, sc.Prompt)
	var (
		usage   metrics.TokenUsage
		lastErr error
	)
	for attempt := 0; attempt <= o.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * o.cfg.BackoffStep
			o.logger.Warn("retrying image generation", "scenario", sc.ID, "attempt", attempt+1, "delay_ms", delay.Milliseconds(), "error", lastErr)
			if err := o.sleep(ctx, delay); err != nil {
				return Result{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "image generation interrupted", err)
			}
		}

		img, model, attemptUsage, err := o.tryModels(ctx, models, photo, instruction, sc.ID, attempt+1)
		usage = usage.Add(attemptUsage)
		if err == nil {
			o.logger.Info("image generated", "scenario", sc.ID, "model", model, "attempt", attempt+1, "total_tokens", usage.TotalTokens)
			return Result{
				ScenarioID: sc.ID,
				DataURI:    EncodeDataURI(img.MimeType, img.Data),
				Model:      model,
				Attempts:   attempt + 1,
				Usage:      usage,
			}, nil
		}
		lastErr = err
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "image generation interrupted", ctxErr)
		}
	}

	o.logger.Error("image generation exhausted", "scenario", sc.ID, "attempts", o.cfg.MaxRetries+1, "error", lastErr)
	return Result{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "image generation failed", errors.Join(ErrNoImage, lastErr))
}

// tryModels walks the chain once. A transport or status error moves on to the
// next model; a successful reply without an image ends the walk.
func (o *Orchestrator) tryModels(ctx context.Context, models []string, photo Photo, instruction, scenarioID string, attempt int) (InlineImage, string, metrics.TokenUsage, error) {
	var (
		usage   metrics.TokenUsage
		lastErr error
	)
	for _, model := range models {
		resp, err := o.editor.Edit(ctx, EditRequest{
			Model:       model,
			Image:       photo.Data,
			MimeType:    photo.MimeType,
			Instruction: instruction,
		})
		if err != nil {
			o.logger.Warn("image model failed", "scenario", scenarioID, "model", model, "attempt", attempt, "error", err)
			lastErr = fmt.Errorf("model %s: %w", model, err)
			if ctx.Err() != nil {
				return InlineImage{}, "", usage, lastErr
			}
			continue
		}
		usage = usage.Add(resp.Usage)
		img, ok := extractImage(resp)
		if !ok {
			o.logger.Warn("image model returned no image", "scenario", scenarioID, "model", model, "attempt", attempt)
			return InlineImage{}, "", usage, fmt.Errorf("model %s: %w", model, ErrNoImage)
		}
		return img, model, usage, nil
	}
	return InlineImage{}, "", usage, fmt.Errorf("all models failed: %w", lastErr)
}

func extractImage(resp EditResponse) (InlineImage, bool) {
	for _, part := range resp.Parts {
		if part.Image == nil || len(part.Image.Data) == 0 {
			continue
		}
		img := *part.Image
		if img.MimeType == "" {
			img.MimeType = "image/png"
		}
		return img, true
	}
	return InlineImage{}, false
}
