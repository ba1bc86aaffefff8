package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientCurrent(t *testing.T) {
	var query map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"London","main":{"temp":12.5},"weather":[{"description":"light rain"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	obs, err := client.Current(context.Background(), " London,uk ")
	require.NoError(t, err)
	require.Equal(t, "London", obs.Location)
	require.Equal(t, "light rain", obs.Description)
	require.Equal(t, 12.5, obs.TemperatureC)
	require.Equal(t, map[string]string{"q": "London,uk", "appid": "secret", "units": "metric"}, query)
}

func TestClientCurrentDefaultsDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"main":{"temp":-3},"weather":[]}`))
	}))
	defer server.Close()

	obs, err := NewClient(server.URL, "k").Current(context.Background(), "Oslo")
	require.NoError(t, err)
	require.Equal(t, "No description available", obs.Description)
	require.Equal(t, "Oslo", obs.Location)
	require.Equal(t, -3.0, obs.TemperatureC)
}

func TestClientCurrentErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Nowhere" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}` + strings.Repeat("x", 2000)))
			return
		}
		_, _ = w.Write([]byte(`{"weather":[{"description":"clear sky"}]}`))
	}))
	defer server.Close()
	client := NewClient(server.URL, "k")

	_, err := client.Current(context.Background(), "Nowhere")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=404")
	require.Contains(t, err.Error(), "city not found")
	require.Less(t, len(err.Error()), 700)

	_, err = client.Current(context.Background(), "Paris")
	require.ErrorContains(t, err, "missing temperature")

	_, err = client.Current(context.Background(), "  ")
	require.Error(t, err)
}
