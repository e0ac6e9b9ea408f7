package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-look/internal/domain/weather"
)

func TestClientCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "37.5665", r.URL.Query().Get("lat"))
		require.Equal(t, "126.9780", r.URL.Query().Get("lon"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		require.Equal(t, "secret", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather":[{"main":"Snow","description":"light snow","icon":"13d"}],"main":{"temp":-2.6,"feels_like":-7.4,"humidity":86},"wind":{"speed":4.1}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	snap, err := client.Current(context.Background(), weather.Coordinates{Latitude: 37.5665, Longitude: 126.978})
	require.NoError(t, err)
	require.Equal(t, weather.Snapshot{
		Temp:        -3,
		FeelsLike:   -7,
		Humidity:    86,
		Condition:   weather.ConditionSnow,
		Description: "light snow",
		Icon:        "13d",
		WindSpeed:   4.1,
	}, snap)
}

func TestClientCurrentUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "bad").Current(context.Background(), weather.Coordinates{})
	require.ErrorIs(t, err, weather.ErrUnavailable)
}

func TestClientCurrentWithoutKey(t *testing.T) {
	_, err := NewClient("", "").Current(context.Background(), weather.Coordinates{})
	require.ErrorIs(t, err, weather.ErrUnavailable)
}

func TestNormalizeEmptyConditions(t *testing.T) {
	_, err := normalize(apiResponse{})
	require.ErrorIs(t, err, weather.ErrUnavailable)
}
