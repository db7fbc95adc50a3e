// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package geo specifies the geocoding expectations of the use cases
// layer. A Geocoder converts a free-text postal address to a geographic
// coordinate. Implementations live in the adapter layer, so the use
// cases may resolve addresses without depending on a specific provider.
package geo

import (
	"context"
	"errors"

	"github.com/momeni/places/pkg/core/model"
)

// ErrUnresolvableAddress indicates that the geocoding provider was
// reachable, but it could not find any location for the given address.
// Implementations should wrap it, so callers may use errors.Is.
var ErrUnresolvableAddress = errors.New(
	"could not find location for the specified address",
)

// ErrNetworkFailure indicates that the geocoding provider could not be
// reached or answered with an unexpected response.
var ErrNetworkFailure = errors.New("geocoding service is unavailable")

// Geocoder resolves postal addresses to coordinates.
type Geocoder interface {
	// Resolve returns the coordinate of the given address. Failures
	// wrap either ErrUnresolvableAddress or ErrNetworkFailure.
	// No retry is attempted by the callers, so an implementation may
	// decide about its own retry policy.
	Resolve(ctx context.Context, address string) (model.Coordinate, error)
}
