package weather

import (
	"context"
	"errors"
	"time"
)

// Condition is the upstream "main" weather group.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionRain         Condition = "Rain"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionSnow         Condition = "Snow"
	ConditionMist         Condition = "Mist"
	ConditionFog          Condition = "Fog"
	ConditionHaze         Condition = "Haze"
	ConditionSmoke        Condition = "Smoke"
	ConditionDust         Condition = "Dust"
)

// Conditions lists every condition the service knows how to classify.
var Conditions = []Condition{
	ConditionClear,
	ConditionClouds,
	ConditionRain,
	ConditionDrizzle,
	ConditionThunderstorm,
	ConditionSnow,
	ConditionMist,
	ConditionFog,
	ConditionHaze,
	ConditionSmoke,
	ConditionDust,
}

// IsWet reports whether the condition calls for rain gear.
func (c Condition) IsWet() bool {
	switch c {
	case ConditionRain, ConditionDrizzle, ConditionThunderstorm:
		return true
	default:
		return false
	}
}

// ErrUnavailable signals that the provider has no conditions for the location.
var ErrUnavailable = errors.New("weather unavailable")

// Snapshot is the normalized current-conditions record. Temperatures are °C.
type Snapshot struct {
	Temp        int       `json:"temp"`
	FeelsLike   int       `json:"feelsLike"`
	Humidity    int       `json:"humidity"`
	Condition   Condition `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	WindSpeed   float64   `json:"windSpeed"`
	Fallback    bool      `json:"fallback,omitempty"`
}

// Default is served whenever live conditions cannot be fetched.
func Default() Snapshot {
	return Snapshot{
		Temp:        20,
		FeelsLike:   20,
		Humidity:    50,
		Condition:   ConditionClear,
		Description: "clear sky",
		Icon:        "01d",
		WindSpeed:   2,
		Fallback:    true,
	}
}

// Coordinates identify the location a snapshot was requested for.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the pair lies within WGS84 bounds.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Provider fetches current conditions from an upstream API.
type Provider interface {
	Current(ctx context.Context, coords Coordinates) (Snapshot, error)
}

// Cache stores recently fetched snapshots keyed by location.
type Cache interface {
	Get(ctx context.Context, key string) (Snapshot, bool, error)
	Set(ctx context.Context, key string, snapshot Snapshot, ttl time.Duration) error
}

// Config wires runtime knobs for the weather service.
type Config struct {
	CacheTTL time.Duration
}
