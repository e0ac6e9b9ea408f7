package subscriberrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/domain/imagegen"
)

func TestMemoryRepositoryListActive(t *testing.T) {
	repo := NewMemoryRepository(
		dailylook.Subscriber{ID: "b", Active: true},
		dailylook.Subscriber{ID: "c", Active: false},
		dailylook.Subscriber{ID: "a", Active: true},
	)
	subs, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "a", subs[0].ID)
	require.Equal(t, "b", subs[1].ID)

	repo.Upsert(dailylook.Subscriber{ID: "c", Active: true})
	subs, err = repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 3)

	_, ok, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryRepositoryRecordIsOncePerDay(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, created, err := repo.Record(ctx, dailylook.Delivery{SubscriberID: "s", Day: 19792, RunID: "run-1", Looks: []imagegen.Look{{ID: "dressy"}}})
	require.NoError(t, err)
	require.True(t, created)
	require.False(t, first.CreatedAt.IsZero())

	second, created, err := repo.Record(ctx, dailylook.Delivery{SubscriberID: "s", Day: 19792, RunID: "run-2"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "run-1", second.RunID)
	require.Len(t, second.Looks, 1)

	_, created, err = repo.Record(ctx, dailylook.Delivery{SubscriberID: "s", Day: 19793, RunID: "run-3"})
	require.NoError(t, err)
	require.True(t, created)

	found, ok, err := repo.Find(ctx, "s", 19792)
	require.NoError(t, err)
	require.True(t, ok)
	found.Looks[0].ID = "mutated"
	again, _, _ := repo.Find(ctx, "s", 19792)
	require.Equal(t, "dressy", again.Looks[0].ID)
}
