// Package osrm implements the external street router on top of the OSRM HTTP route service.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campusnav/internal/domain/entity"
	"campusnav/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// ErrNoRoute is returned when OSRM answers without any route
var ErrNoRoute = errors.New("osrm returned no route")

// Config holds the settings of the OSRM client
type Config struct {
	BaseURL  string                       // e.g. https://router.project-osrm.org
	Timeout  time.Duration                // per-request timeout
	Profiles map[entity.TravelMode]string // travel mode to OSRM profile name
}

// DefaultProfiles maps travel modes to the standard OSRM profile names
func DefaultProfiles() map[entity.TravelMode]string {
	return map[entity.TravelMode]string{
		entity.TravelModeWalk: "foot",
		entity.TravelModeBike: "bike",
	}
}

// Client calls the OSRM route service
type Client struct {
	baseURL    string
	profiles   map[entity.TravelMode]string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ service.ExternalRouter = (*Client)(nil)

// NewClient creates a new OSRM client
func NewClient(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	profiles := DefaultProfiles()
	for mode, profile := range config.Profiles {
		profiles[mode] = profile
	}

	return &Client{
		baseURL:  strings.TrimRight(config.BaseURL, "/"),
		profiles: profiles,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// routeResponse is the subset of the OSRM route response the client reads
type routeResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message,omitempty"`
	Routes  []route `json:"routes"`
}

type route struct {
	Distance float64          `json:"distance"`
	Duration float64          `json:"duration"`
	Geometry geojson.Geometry `json:"geometry"`
	Legs     []leg            `json:"legs"`
}

type leg struct {
	Steps []step `json:"steps"`
}

type step struct {
	Distance float64  `json:"distance"`
	Duration float64  `json:"duration"`
	Name     string   `json:"name"`
	Maneuver maneuver `json:"maneuver"`
}

type maneuver struct {
	Type     string `json:"type"`
	Modifier string `json:"modifier,omitempty"`
}

// Route requests a route between origin and destination with the profile mapped from mode
func (c *Client) Route(ctx context.Context, origin, destination orb.Point, mode entity.TravelMode) (*service.ExternalRoute, error) {
	endpoint, err := c.routeURL(origin, destination, mode)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Requesting OSRM route", slog.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "osrm request failed")
	}
	defer resp.Body.Close()

	var body routeResponse
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(raw, &body) == nil && body.Code != "" {
			return nil, errors.Errorf("osrm returned status %d: %s %s", resp.StatusCode, body.Code, body.Message)
		}

		return nil, errors.Errorf("osrm returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode osrm response")
	}
	if body.Code != "Ok" {
		return nil, errors.Errorf("osrm response error: %s %s", body.Code, body.Message)
	}
	if len(body.Routes) == 0 {
		return nil, errors.WithStack(ErrNoRoute)
	}

	return convertRoute(body.Routes[0])
}

func (c *Client) routeURL(origin, destination orb.Point, mode entity.TravelMode) (string, error) {
	if c.baseURL == "" {
		return "", errors.New("osrm base url is not configured")
	}
	profile, ok := c.profiles[mode]
	if !ok {
		return "", errors.Errorf("no osrm profile for travel mode %q", mode)
	}

	coords := fmt.Sprintf("%s;%s", formatPoint(origin), formatPoint(destination))
	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "geojson")
	query.Set("steps", "true")

	return fmt.Sprintf("%s/route/v1/%s/%s?%s", c.baseURL, url.PathEscape(profile), coords, query.Encode()), nil
}

// formatPoint renders a point in OSRM's lng,lat order
func formatPoint(p orb.Point) string {
	return fmt.Sprintf("%.6f,%.6f", p.Lon(), p.Lat())
}

func convertRoute(r route) (*service.ExternalRoute, error) {
	line, ok := r.Geometry.Coordinates.(orb.LineString)
	if !ok {
		return nil, errors.Errorf("osrm geometry is %T, want a LineString", r.Geometry.Coordinates)
	}

	result := &service.ExternalRoute{
		Coordinates: []orb.Point(line),
		Distance:    r.Distance,
		Duration:    r.Duration,
	}

	for _, l := range r.Legs {
		for _, s := range l.Steps {
			result.Steps = append(result.Steps, entity.RouteStep{
				Instruction: instruction(s),
				Distance:    s.Distance,
				Duration:    s.Duration,
				FromID:      entity.StepOriginID,
				ToID:        entity.StepDestinationID,
			})
		}
	}

	return result, nil
}

// instruction renders a readable sentence from an OSRM maneuver
func instruction(s step) string {
	onto := ""
	if s.Name != "" {
		onto = " onto " + s.Name
	}

	switch s.Maneuver.Type {
	case "depart":
		if s.Maneuver.Modifier != "" {
			return fmt.Sprintf("Head %s%s", s.Maneuver.Modifier, on(s.Name))
		}

		return "Depart" + on(s.Name)
	case "arrive":
		return "Arrive at your destination"
	case "turn", "end of road", "fork":
		if s.Maneuver.Modifier != "" {
			return fmt.Sprintf("Turn %s%s", s.Maneuver.Modifier, onto)
		}
	case "roundabout", "rotary":
		return "Enter the roundabout" + onto
	}

	if s.Name != "" {
		return "Continue on " + s.Name
	}

	return "Continue"
}

func on(name string) string {
	if name == "" {
		return ""
	}

	return " on " + name
}
