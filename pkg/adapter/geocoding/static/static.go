// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package static provides a geo.Geocoder which resolves addresses
// using a fixed table. It is used for development instances which
// should not call a real geocoding provider and for tests.
// Addresses are normalized before lookup, so their case and extra
// white spaces are ignored.
package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/momeni/places/pkg/core/geo"
	"github.com/momeni/places/pkg/core/model"
)

// Geocoder resolves addresses from a fixed table.
// It is safe for concurrent use since the table is never modified
// after instantiation.
type Geocoder struct {
	table map[string]model.Coordinate
}

// New instantiates a Geocoder with the given address to coordinate
// table. The table is copied, so caller may modify it afterwards.
func New(table map[string]model.Coordinate) *Geocoder {
	g := &Geocoder{table: make(map[string]model.Coordinate, len(table))}
	for addr, c := range table {
		g.table[normalize(addr)] = c
	}
	return g
}

// NewDev instantiates a Geocoder which knows the addresses of the
// model.DevPlaces development places.
func NewDev() *Geocoder {
	pp := model.DevPlaces("")
	table := make(map[string]model.Coordinate, len(pp))
	for _, p := range pp {
		table[p.Address] = p.Location
	}
	return New(table)
}

// Resolve returns the coordinate of address from the table or wraps
// geo.ErrUnresolvableAddress if it is unknown.
func (g *Geocoder) Resolve(
	ctx context.Context, address string,
) (model.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return model.Coordinate{}, fmt.Errorf(
			"%w: %w", geo.ErrNetworkFailure, err,
		)
	}
	c, found := g.table[normalize(address)]
	if !found {
		return model.Coordinate{}, fmt.Errorf(
			"%w: %q", geo.ErrUnresolvableAddress, address,
		)
	}
	return c, nil
}

func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
