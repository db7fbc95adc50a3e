// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package static_test

import (
	"context"
	"testing"

	"github.com/momeni/places/pkg/adapter/geocoding/static"
	"github.com/momeni/places/pkg/core/geo"
	"github.com/momeni/places/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ geo.Geocoder = (*static.Geocoder)(nil)

func TestResolve(t *testing.T) {
	ctx := context.Background()
	g := static.NewDev()

	c, err := g.Resolve(ctx, "941 Progress Ave, Scarborough, ON M1G 3T8")
	require.NoError(t, err)
	assert.Equal(t, model.Coordinate{Lat: 43.7852043, Lng: -79.230744}, c)

	c, err = g.Resolve(ctx, "  15 provost dr,   North York, ON M2K 2X9 ")
	require.NoError(t, err)
	assert.Equal(t, model.Coordinate{Lat: 43.7672862, Lng: -79.373602}, c)

	_, err = g.Resolve(ctx, "nowhere")
	assert.ErrorIs(t, err, geo.ErrUnresolvableAddress)
}

func TestResolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := static.NewDev().Resolve(ctx, "941 Progress Ave, Scarborough, ON M1G 3T8")
	assert.ErrorIs(t, err, geo.ErrNetworkFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCopiesTable(t *testing.T) {
	table := map[string]model.Coordinate{"Here": {Lat: 1, Lng: 2}}
	g := static.New(table)
	delete(table, "Here")
	c, err := g.Resolve(context.Background(), "here")
	require.NoError(t, err)
	assert.Equal(t, model.Coordinate{Lat: 1, Lng: 2}, c)
}
