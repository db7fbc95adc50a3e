// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package google provides a geo.Geocoder which resolves addresses using
// the Google Maps Geocoding API. The first result of a successful
// response is used. A ZERO_RESULTS status means that the address is
// unresolvable, while transport failures, non-200 HTTP statuses, and
// other API statuses (e.g., REQUEST_DENIED) are network failures.
package google

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/places/pkg/core/geo"
	"github.com/momeni/places/pkg/core/log"
	"github.com/momeni/places/pkg/core/model"
)

// DefaultEndpoint is the JSON output endpoint of the Geocoding API.
const DefaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// DefaultTimeout bounds each Resolve call unless another value is
// passed to New.
const DefaultTimeout = 10 * time.Second

// maxBodySize bounds the size of a decoded response body.
const maxBodySize = 1 << 20

// Geocoder is a Google Geocoding API client.
// It is safe for concurrent use.
type Geocoder struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// New instantiates a Geocoder which sends its requests to endpoint
// (or DefaultEndpoint if it is empty) using the apiKey key.
// A non-positive timeout is replaced by DefaultTimeout.
func New(endpoint, apiKey string, timeout time.Duration) (*Geocoder, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("parsing endpoint %q: %w", endpoint, err)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("google geocoder needs an api key")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Geocoder{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type response struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve asks the Geocoding API for the address coordinate.
func (g *Geocoder) Resolve(
	ctx context.Context, address string,
) (model.Coordinate, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.apiKey)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil,
	)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf(
			"%w: creating request: %w", geo.ErrNetworkFailure, err,
		)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		// The url.Error message contains the api key.
		return model.Coordinate{}, fmt.Errorf(
			"%w: %s", geo.ErrNetworkFailure, redact(err, g.apiKey),
		)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Coordinate{}, fmt.Errorf(
			"%w: unexpected HTTP status %d",
			geo.ErrNetworkFailure, resp.StatusCode,
		)
	}
	var r response
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize))
	if err := dec.Decode(&r); err != nil {
		return model.Coordinate{}, fmt.Errorf(
			"%w: decoding response: %w", geo.ErrNetworkFailure, err,
		)
	}
	switch r.Status {
	case "OK":
		if len(r.Results) == 0 {
			break
		}
		loc := r.Results[0].Geometry.Location
		c := model.Coordinate{Lat: loc.Lat, Lng: loc.Lng}
		log.Debug(
			ctx, "address is geocoded",
			slog.String("address", address), log.Valuer("location", c),
		)
		return c, nil
	case "ZERO_RESULTS":
	default:
		return model.Coordinate{}, fmt.Errorf(
			"%w: status %s: %s",
			geo.ErrNetworkFailure, r.Status, r.ErrorMessage,
		)
	}
	return model.Coordinate{}, fmt.Errorf(
		"%w: %q", geo.ErrUnresolvableAddress, address,
	)
}
