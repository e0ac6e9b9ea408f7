package dailylook

import (
	"context"
	"io"
	"time"

	"github.com/yanqian/daily-look/internal/domain/imagegen"
	"github.com/yanqian/daily-look/internal/domain/outfit"
	"github.com/yanqian/daily-look/internal/domain/weather"
)

// ObjectStorage abstracts blob storage holding source photos and generated looks.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// StoredObject captures persisted blob metadata.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}

// SubscriberRepository lists the people who receive a daily look.
type SubscriberRepository interface {
	ListActive(ctx context.Context) ([]Subscriber, error)
	Get(ctx context.Context, id string) (Subscriber, bool, error)
}

// DeliveryRepository remembers which subscribers were served on which day.
// Record reports false when a delivery for the same subscriber and day
// already exists, and returns the stored one.
type DeliveryRepository interface {
	Find(ctx context.Context, subscriberID string, day int64) (Delivery, bool, error)
	Record(ctx context.Context, delivery Delivery) (Delivery, bool, error)
}

// WeatherSource resolves a snapshot; it never fails.
type WeatherSource interface {
	Current(ctx context.Context, coords weather.Coordinates) weather.Snapshot
}

// LookGenerator runs a batch of scenarios against one photo.
type LookGenerator interface {
	Generate(ctx context.Context, photoURI string, gender outfit.Gender, kind imagegen.EditKind, scenarios []outfit.Scenario) ([]imagegen.Look, error)
}

// Clock returns the current time.
type Clock func() time.Time
