package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusnav/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okResponse = `{
  "code": "Ok",
  "routes": [{
    "distance": 1520.4,
    "duration": 1086.0,
    "geometry": {"type": "LineString", "coordinates": [[-82.9988, 39.9612], [-83.0050, 39.9800], [-83.0150, 40.0060]]},
    "legs": [{
      "steps": [
        {"distance": 800.2, "duration": 571.6, "name": "High Street", "maneuver": {"type": "depart", "modifier": "north"}},
        {"distance": 720.2, "duration": 514.4, "name": "Woodruff Avenue", "maneuver": {"type": "turn", "modifier": "left"}},
        {"distance": 0, "duration": 0, "name": "", "maneuver": {"type": "arrive"}}
      ]
    }]
  }]
}`

func TestClient_Route(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okResponse))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/"}, nil)
	origin := orb.Point{-82.9988, 39.9612}
	destination := orb.Point{-83.0150, 40.0060}

	route, err := client.Route(context.Background(), origin, destination, entity.TravelModeWalk)
	require.NoError(t, err)

	assert.Equal(t, "/route/v1/foot/-82.998800,39.961200;-83.015000,40.006000", gotPath)
	assert.Contains(t, gotQuery, "geometries=geojson")
	assert.Contains(t, gotQuery, "steps=true")

	assert.InDelta(t, 1520.4, route.Distance, 1e-9)
	assert.InDelta(t, 1086.0, route.Duration, 1e-9)
	require.Len(t, route.Coordinates, 3)
	assert.Equal(t, origin, route.Coordinates[0])

	require.Len(t, route.Steps, 3)
	assert.Equal(t, "Head north on High Street", route.Steps[0].Instruction)
	assert.Equal(t, "Turn left onto Woodruff Avenue", route.Steps[1].Instruction)
	assert.Equal(t, "Arrive at your destination", route.Steps[2].Instruction)
	assert.Equal(t, entity.StepOriginID, route.Steps[0].FromID)
	assert.Equal(t, entity.StepDestinationID, route.Steps[0].ToID)
}

func TestClient_Route_BikeProfile(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(okResponse))
	}))
	defer server.Close()

	client := NewClient(Config{
		BaseURL:  server.URL,
		Profiles: map[entity.TravelMode]string{entity.TravelModeBike: "cycling"},
	}, nil)

	_, err := client.Route(context.Background(), orb.Point{1, 2}, orb.Point{3, 4}, entity.TravelModeBike)
	require.NoError(t, err)
	assert.Equal(t, "/route/v1/cycling/1.000000,2.000000;3.000000,4.000000", gotPath)
}

func TestClient_Route_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		expectErr string
	}{
		{
			name:      "server error",
			status:    http.StatusServiceUnavailable,
			body:      "overloaded",
			expectErr: "status 503",
		},
		{
			name:      "osrm error payload",
			status:    http.StatusBadRequest,
			body:      `{"code":"InvalidQuery","message":"Query string malformed"}`,
			expectErr: "InvalidQuery",
		},
		{
			name:      "no route code",
			status:    http.StatusOK,
			body:      `{"code":"NoRoute","message":"Impossible route","routes":[]}`,
			expectErr: "NoRoute",
		},
		{
			name:      "empty routes",
			status:    http.StatusOK,
			body:      `{"code":"Ok","routes":[]}`,
			expectErr: ErrNoRoute.Error(),
		},
		{
			name:      "malformed json",
			status:    http.StatusOK,
			body:      `{"code":`,
			expectErr: "failed to decode",
		},
		{
			name:      "point geometry",
			status:    http.StatusOK,
			body:      `{"code":"Ok","routes":[{"distance":1,"duration":1,"geometry":{"type":"Point","coordinates":[1,2]},"legs":[]}]}`,
			expectErr: "want a LineString",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL}, nil)
			route, err := client.Route(context.Background(), orb.Point{1, 2}, orb.Point{3, 4}, entity.TravelModeWalk)
			require.Error(t, err)
			assert.Nil(t, route)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestClient_Route_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Route(ctx, orb.Point{1, 2}, orb.Point{3, 4}, entity.TravelModeWalk)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Route_NotConfigured(t *testing.T) {
	client := NewClient(Config{}, nil)

	_, err := client.Route(context.Background(), orb.Point{1, 2}, orb.Point{3, 4}, entity.TravelModeWalk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base url")

	client = NewClient(Config{BaseURL: "http://localhost"}, nil)
	_, err = client.Route(context.Background(), orb.Point{1, 2}, orb.Point{3, 4}, "scooter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no osrm profile")
}
