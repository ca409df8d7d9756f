package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"sportmeet-api/config"
	"sportmeet-api/internal/application/ports"
)

var nonDigitsRe = regexp.MustCompile(`\D`)

type (
	// BrasilAPI v2 serializes coordinates as strings.
	brasilAPIResponse struct {
		Location struct {
			Coordinates struct {
				Latitude  string `json:"latitude"`
				Longitude string `json:"longitude"`
			} `json:"coordinates"`
		} `json:"location"`
	}
	openCageResponse struct {
		Results []struct {
			Geometry struct {
				Latitude  *float64 `json:"lat"`
				Longitude *float64 `json:"lng"`
			} `json:"geometry"`
		} `json:"results"`
	}
)

// Resolver turns a CEP into coordinates using BrasilAPI first and OpenCage
// as fallback. Only when both providers fail the CEP is reported as
// unresolvable (nil, nil).
type Resolver struct {
	cfg    config.Geo
	log    *zap.Logger
	client *http.Client
}

func New(cfg config.Geo, logger *zap.Logger) ports.Geocoder {
	return &Resolver{
		cfg: cfg,
		log: logger,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (r *Resolver) Coordinates(ctx context.Context, cep string) (*ports.Coordenadas, error) {
	cleaned := nonDigitsRe.ReplaceAllString(cep, "")
	if len(cleaned) != 8 {
		return nil, nil
	}

	coords, err := r.fromBrasilAPI(ctx, cleaned)
	if err != nil {
		r.log.Warn("brasilapi lookup failed, falling back to opencage",
			zap.String("cep", cleaned),
			zap.Error(err),
		)
	}
	if coords != nil {
		return coords, nil
	}

	coords, err = r.fromOpenCage(ctx, cleaned)
	if err != nil {
		r.log.Warn("opencage lookup failed",
			zap.String("cep", cleaned),
			zap.Error(err),
		)
	}

	return coords, nil
}

func (r *Resolver) fromBrasilAPI(ctx context.Context, cep string) (*ports.Coordenadas, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BrasilAPIURL+"/"+cep, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brasilapi returned status %d", resp.StatusCode)
	}

	var body brasilAPIResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	if body.Location.Coordinates.Latitude == "" || body.Location.Coordinates.Longitude == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(body.Location.Coordinates.Latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("brasilapi latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(body.Location.Coordinates.Longitude, 64)
	if err != nil {
		return nil, fmt.Errorf("brasilapi longitude: %w", err)
	}

	return &ports.Coordenadas{Latitude: lat, Longitude: lon}, nil
}

func (r *Resolver) fromOpenCage(ctx context.Context, cep string) (*ports.Coordenadas, error) {
	q := url.Values{}
	q.Set("q", cep+", Brasil")
	q.Set("key", r.cfg.OpenCageAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.OpenCageURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opencage returned status %d", resp.StatusCode)
	}

	var body openCageResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	if len(body.Results) == 0 {
		return nil, nil
	}
	geo := body.Results[0].Geometry
	if geo.Latitude == nil || geo.Longitude == nil {
		return nil, nil
	}

	return &ports.Coordenadas{Latitude: *geo.Latitude, Longitude: *geo.Longitude}, nil
}
