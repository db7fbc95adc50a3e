// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "log/slog"

// Coordinate represents a geographical location with a latitude and
// longitude. It is computed by a geocoder from a postal address and is
// embedded in the Place struct, so it may be flattened into lat and lng
// columns by the database adapters.
type Coordinate struct {
	Lat float64 // latitude of the geo-location
	Lng float64 // longitude of the geo-location
}

// LogValue implements slog.LogValuer, so a Coordinate may be logged
// as a group with lat and lng keys.
func (c Coordinate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("lat", c.Lat),
		slog.Float64("lng", c.Lng),
	)
}
