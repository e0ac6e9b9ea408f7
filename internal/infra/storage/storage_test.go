package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	store := NewMemoryStorage("https://looks.example.com/")
	ctx := context.Background()

	obj, err := store.Put(ctx, "looks/sub-1/19792/dressy.png", []byte("png"), "image/png")
	require.NoError(t, err)
	require.Equal(t, int64(3), obj.Size)
	require.NotEmpty(t, obj.ETag)

	body, err := store.Get(ctx, obj.Key)
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, []byte("png"), data)

	require.NoError(t, store.Delete(ctx, obj.Key))
	_, err = store.Get(ctx, obj.Key)
	require.Error(t, err)
}

func TestPublicURL(t *testing.T) {
	require.Equal(t, "https://cdn.example.com/looks/a%20b/1/dressy.png", publicURL("https://cdn.example.com/", "/looks/a b/1/dressy.png"))
	require.Equal(t, "memory://looks/x.png", NewMemoryStorage("").PublicURL("x.png"))
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "acct.r2.cloudflarestorage.com", sanitizeEndpoint(" https://acct.r2.cloudflarestorage.com/bucket "))
	require.Equal(t, "localhost:9000", sanitizeEndpoint("http://localhost:9000"))
	require.Equal(t, "", sanitizeEndpoint(""))
}

func TestR2StorageRetriesBucketCheckAfterFailure(t *testing.T) {
	var hits, bucketChecks atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method == http.MethodHead && r.URL.Path == "/looks" {
			bucketChecks.Add(1)
		}
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewR2Storage(srv.URL, "key", "secret", "looks", "auto", "https://cdn.test", nil)
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Put(cancelled, "looks/sub-1/19792/dressy.png", []byte("png"), "image/png")
	require.ErrorIs(t, err, context.Canceled)

	_, err = store.Put(context.Background(), "looks/sub-1/19792/dressy.png", []byte("png"), "image/png")
	require.NoError(t, err)
	require.Positive(t, hits.Load())

	_, err = store.Put(context.Background(), "looks/sub-1/19792/casual.png", []byte("png"), "image/png")
	require.NoError(t, err)
	require.Equal(t, int64(1), bucketChecks.Load())
}
