package dailylook

import (
	"time"

	"github.com/yanqian/daily-look/internal/domain/imagegen"
	"github.com/yanqian/daily-look/internal/domain/outfit"
	"github.com/yanqian/daily-look/internal/domain/weather"
)

// Config drives the delivery run.
type Config struct {
	Workers            int
	SubscriberDeadline time.Duration
	// PersistTimeout bounds uploading and recording looks once generation has
	// stopped, independent of the subscriber deadline.
	PersistTimeout time.Duration
	DefaultLocale  outfit.Locale
	MaxPhotoBytes  int64
}

// Subscriber is one recipient of the daily look email.
type Subscriber struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Gender    outfit.Gender `json:"gender"`
	Locale    outfit.Locale `json:"locale"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	PhotoKey  string        `json:"photoKey"`
	Active    bool          `json:"active"`
}

// Delivery is the set of looks produced for a subscriber on one day.
type Delivery struct {
	SubscriberID string           `json:"subscriberId"`
	Day          int64            `json:"day"`
	RunID        string           `json:"runId"`
	Locale       outfit.Locale    `json:"locale"`
	Weather      weather.Snapshot `json:"weather"`
	Looks        []imagegen.Look  `json:"looks"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// RunSummary reports the outcome of one daily run.
type RunSummary struct {
	RunID       string    `json:"runId"`
	Day         int64     `json:"day"`
	Subscribers int       `json:"subscribers"`
	Delivered   int       `json:"delivered"`
	Skipped     int       `json:"skipped"`
	Failed      int       `json:"failed"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
}

// ScenarioRequest asks for today's prompts without generating images. A
// request without coordinates uses the default weather.
type ScenarioRequest struct {
	Latitude  *float64
	Longitude *float64
	Gender    string
	Locale    string
}

// ScenarioResponse is the weather and the two daily scenarios.
type ScenarioResponse struct {
	Day       int64             `json:"day"`
	Weather   weather.Snapshot  `json:"weather"`
	Scenarios []outfit.Scenario `json:"scenarios"`
}

// PreviewRequest is an interactive daily look generation.
type PreviewRequest struct {
	Photo     string
	Latitude  *float64
	Longitude *float64
	Gender    string
	Locale    string
}

// HairstyleRequest is an interactive hairstyle try-on.
type HairstyleRequest struct {
	Photo    string
	Gender   string
	Locale   string
	StyleIDs []string
}

// LooksResponse carries looks as data URIs; nothing is persisted.
type LooksResponse struct {
	RequestID string            `json:"requestId"`
	Day       int64             `json:"day,omitempty"`
	Weather   *weather.Snapshot `json:"weather,omitempty"`
	Looks     []imagegen.Look   `json:"looks"`
	Requested int               `json:"requested"`
}
