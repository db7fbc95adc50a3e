// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"fmt"

	"github.com/momeni/places/pkg/adapter/config/settings"
	"github.com/momeni/places/pkg/core/geo"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/momeni/places/pkg/core/usecase/placesuc"
)

// Usecases contains the use cases configuration settings.
type Usecases struct {
	Places Places // places use case settings
}

// Places contains the places use case configuration settings.
type Places struct {
	DefaultImage string `yaml:"default-image"`

	// AllowEmptyCreatorListing makes the listing of a creator without
	// any place succeed with an empty list, instead of a not-found
	// error.
	AllowEmptyCreatorListing *bool `yaml:"allow-empty-creator-listing"`
}

// ValidateAndNormalize fills the nil settings and checks the default
// image (if any) using the placesuc.WithDefaultImage option.
func (p *Places) ValidateAndNormalize() error {
	settings.Nil2Default(&p.AllowEmptyCreatorListing, false)
	if p.DefaultImage == "" {
		return nil
	}
	if err := placesuc.WithDefaultImage(p.DefaultImage)(
		&placesuc.UseCase{},
	); err != nil {
		return fmt.Errorf("default-image: %w", err)
	}
	return nil
}

// DevImage returns the image which is used by the development places.
func (p Places) DevImage() string {
	if p.DefaultImage == "" {
		return placesuc.DefaultImage
	}
	return p.DefaultImage
}

// NewUseCase instantiates a new places use case.
func (p Places) NewUseCase(
	places repo.Places, g geo.Geocoder,
) (*placesuc.UseCase, error) {
	var opts []placesuc.Option
	if p.DefaultImage != "" {
		opts = append(opts, placesuc.WithDefaultImage(p.DefaultImage))
	}
	if *p.AllowEmptyCreatorListing {
		opts = append(opts, placesuc.WithEmptyCreatorListing())
	}
	return placesuc.New(places, g, opts...)
}
