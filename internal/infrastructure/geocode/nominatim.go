// Package geocode resolves addresses and coordinates against a
// Nominatim-compatible HTTP endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/service"
)

type nominatimClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatimClient(baseURL string) service.Geocoder {
	return &nominatimClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
}

// Geocode resolves an address to coordinates. No match is a nil result.
func (c *nominatimClient) Geocode(ctx context.Context, address string) (*entity.Location, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	var results []searchResult
	if err := c.get(ctx, "/search", query, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned malformed latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned malformed longitude: %w", err)
	}
	return &entity.Location{Latitude: lat, Longitude: lon}, nil
}

// ReverseGeocode resolves coordinates to a display name. No match is an empty
// string.
func (c *nominatimClient) ReverseGeocode(ctx context.Context, location entity.Location) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	query.Set("format", "json")

	var result reverseResult
	if err := c.get(ctx, "/reverse", query, &result); err != nil {
		return "", err
	}
	return result.DisplayName, nil
}

func (c *nominatimClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "marketdz/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
