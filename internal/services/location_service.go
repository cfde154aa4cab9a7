package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"holiday-api/internal/models/db_models"
	mem "holiday-api/pkg/memcache"
	"holiday-api/pkg/utils"
)

type LocationValidator interface {
	// IsAddressValid reports whether the geocoder resolves the address.
	// Transport or decode failures return utils.ErrLocationServiceUnavailable.
	IsAddressValid(ctx context.Context, formattedAddress string) (bool, error)
}

// -------------- Google Geocoding client ---------------

type GeocodingClient struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	Cache      mem.Store[bool]
	DefaultTTL time.Duration
}

func NewGeocodingClient(apiKey, baseURL string, cache mem.Store[bool], ttl time.Duration) *GeocodingClient {
	return &GeocodingClient{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Cache:      cache,
		DefaultTTL: ttl,
	}
}

func (c *GeocodingClient) IsAddressValid(ctx context.Context, formattedAddress string) (bool, error) {
	key := strings.ToLower(strings.TrimSpace(formattedAddress))
	if key == "" {
		return false, nil
	}
	if c.Cache != nil {
		if v, ok := c.Cache.Get(key); ok {
			return v, nil
		}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return false, fmt.Errorf("%w: base url: %v", utils.ErrLocationServiceUnavailable, err)
	}
	q := u.Query()
	q.Set("address", formattedAddress)
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrLocationServiceUnavailable, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: geocoding http error: %v", utils.ErrLocationServiceUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return false, fmt.Errorf("%w: geocoding bad status: %s", utils.ErrLocationServiceUnavailable, resp.Status)
	}

	var payload struct {
		Status  string            `json:"status"`
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("%w: geocoding decode: %v", utils.ErrLocationServiceUnavailable, err)
	}

	valid := payload.Status == "OK" && len(payload.Results) > 0
	if c.Cache != nil {
		c.Cache.Set(key, valid, c.DefaultTTL)
	}
	return valid, nil
}

// AcceptAllValidator is used when geocoding is disabled.
type AcceptAllValidator struct{}

func (AcceptAllValidator) IsAddressValid(context.Context, string) (bool, error) {
	return true, nil
}

// validateLocation turns the validator answer into the location error kinds.
func validateLocation(ctx context.Context, v LocationValidator, loc db_models.Location) error {
	address := loc.FormattedAddress()
	ok, err := v.IsAddressValid(ctx, address)
	if err != nil {
		log.Warn().Err(err).Str("address", address).Msg("Address validation failed")
		return utils.ErrLocationServiceUnavailable
	}
	if !ok {
		return utils.ErrInvalidAddress
	}
	return nil
}
