package weathercache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-look/internal/domain/weather"
)

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	snap := weather.Snapshot{Temp: 12, Condition: weather.ConditionClouds}
	require.NoError(t, cache.Set(context.Background(), "1.35,103.82", snap, 30*time.Minute))

	got, ok, err := cache.Get(context.Background(), "1.35,103.82")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, snap, got)

	now = now.Add(31 * time.Minute)
	_, ok, err = cache.Get(context.Background(), "1.35,103.82")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheMiss(t *testing.T) {
	_, ok, err := NewMemoryCache().Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
}
