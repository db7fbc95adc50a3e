// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/places/pkg/adapter/config/settings"
	"github.com/momeni/places/pkg/adapter/geocoding/google"
	"github.com/momeni/places/pkg/adapter/geocoding/static"
	"github.com/momeni/places/pkg/core/geo"
	"github.com/momeni/places/pkg/core/log"
	"github.com/momeni/places/pkg/core/model"
)

// Supported values of the geocoder.provider setting.
const (
	ProviderGoogle = "google"
	ProviderStatic = "static"
)

// Boundary values of the geocoder.timeout setting.
var (
	minGeocoderTimeout = settings.Duration(time.Second)
	maxGeocoderTimeout = settings.Duration(time.Minute)
)

// Geocoder contains the address resolution settings.
type Geocoder struct {
	Provider string
	Endpoint string
	APIKey   string `yaml:"api-key"`
	Timeout  *settings.Duration

	// Addresses is the table of the static provider. When it is
	// empty, the development places addresses are used.
	Addresses map[string]Coordinate
}

// Coordinate is a geographic point, as written in the static
// geocoder addresses table.
type Coordinate struct {
	Lat float64
	Lng float64
}

// ValidateAndNormalize checks the provider name and ensures that the
// google provider has an API key. The timeout is clamped between one
// second and one minute.
func (g *Geocoder) ValidateAndNormalize() error {
	switch g.Provider {
	case "":
		g.Provider = ProviderStatic
	case ProviderStatic:
	case ProviderGoogle:
		if g.APIKey == "" {
			return fmt.Errorf(
				"google geocoder needs an api-key (or %s env var)",
				EnvGeocoderAPIKey,
			)
		}
	default:
		return fmt.Errorf("unknown geocoder provider: %q", g.Provider)
	}
	if g.Endpoint == "" {
		g.Endpoint = google.DefaultEndpoint
	}
	settings.Nil2Default(&g.Timeout, settings.Duration(google.DefaultTimeout))
	err := settings.VerifyRange(
		&g.Timeout, &minGeocoderTimeout, &maxGeocoderTimeout,
	)
	if err != nil {
		log.Warn(
			context.Background(), "geocoder.timeout was clamped",
			log.Err("err", err), log.Valuer("timeout", g.Timeout),
		)
	}
	return nil
}

// NewGeocoder instantiates the configured geocoder.
func (c *Config) NewGeocoder() (geo.Geocoder, error) {
	g := c.Geocoder
	switch g.Provider {
	case ProviderGoogle:
		gg, err := google.New(
			g.Endpoint, g.APIKey, time.Duration(*g.Timeout),
		)
		if err != nil {
			return nil, fmt.Errorf("google.New: %w", err)
		}
		return gg, nil
	case ProviderStatic:
		if len(g.Addresses) == 0 {
			return static.NewDev(), nil
		}
		table := make(map[string]model.Coordinate, len(g.Addresses))
		for addr, loc := range g.Addresses {
			table[addr] = model.Coordinate{Lat: loc.Lat, Lng: loc.Lng}
		}
		return static.New(table), nil
	default:
		return nil, fmt.Errorf(
			"unknown geocoder provider: %q", g.Provider,
		)
	}
}
