package imagegen

import (
	"context"
	"errors"
	"time"

	"github.com/yanqian/daily-look/pkg/metrics"
)

// EditKind selects which invariance rules the edit instruction carries.
type EditKind string

const (
	EditClothing  EditKind = "clothing"
	EditHairstyle EditKind = "hairstyle"
)

var (
	// ErrInvalidPhoto marks input that is not a base64 image data URI. Never retried.
	ErrInvalidPhoto = errors.New("photo must be a base64 image data uri")
	// ErrNoImage is returned once every model and retry has been exhausted.
	ErrNoImage = errors.New("no image produced")
)

// EditRequest is what the orchestrator hands to an image-capable model.
type EditRequest struct {
	Model       string
	Image       []byte
	MimeType    string
	Instruction string
}

// EditResponse is the provider-agnostic shape of a model reply.
type EditResponse struct {
	Parts []Part
	Usage metrics.TokenUsage
}

// Part is one content part of a reply; at most one of Text and Image is set.
type Part struct {
	Text  string
	Image *InlineImage
}

// InlineImage carries raw image bytes returned by a model.
type InlineImage struct {
	MimeType string
	Data     []byte
}

// Editor calls one image model. Any non-2xx reply must surface as an error.
type Editor interface {
	Edit(ctx context.Context, req EditRequest) (EditResponse, error)
}

// Result is a successful edit.
type Result struct {
	ScenarioID string             `json:"scenarioId"`
	DataURI    string             `json:"dataUri"`
	Model      string             `json:"model"`
	Attempts   int                `json:"attempts"`
	Usage      metrics.TokenUsage `json:"usage"`
}

// Look is one entry of a batch result handed to the delivery collaborator.
type Look struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Model string `json:"model,omitempty"`
}

// Config wires the generation pipeline.
type Config struct {
	PrimaryModel   string
	SecondaryModel string
	MaxRetries     int
	BackoffStep    time.Duration
	Stagger        time.Duration
	BatchDeadline  time.Duration
}

// DefaultConfig returns the production retry and pacing values.
func DefaultConfig() Config {
	return Config{
		PrimaryModel:   "gemini-2.5-flash-image",
		SecondaryModel: "gemini-2.0-flash-preview-image-generation",
		MaxRetries:     2,
		BackoffStep:    2 * time.Second,
		Stagger:        time.Second,
		BatchDeadline:  3 * time.Minute,
	}
}

// Models returns the ordered fallback chain; never more than two entries.
func (c Config) Models() []string {
	models := make([]string, 0, 2)
	for _, m := range []string{c.PrimaryModel, c.SecondaryModel} {
		if m != "" {
			models = append(models, m)
		}
	}
	return models
}
