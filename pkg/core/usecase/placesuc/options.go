// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesuc

import (
	"errors"
	"fmt"
	"net/url"
)

// Option is a functional option for the places use case.
type Option func(uc *UseCase) error

// WithDefaultImage option configures a places UseCase instance
// in order to store the given absolute http(s) URL as the image of
// places which are created without an image.
// This option may be passed to the New() function.
func WithDefaultImage(image string) Option {
	return func(uc *UseCase) error {
		u, err := url.Parse(image)
		if err != nil {
			return fmt.Errorf("parsing default image URL: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("default image (%q) is not a web URL", image)
		}
		if uc.defaultImage != "" {
			return errors.New("default image is already configured")
		}
		uc.defaultImage = image
		return nil
	}
}

// WithEmptyCreatorListing option configures a places UseCase instance
// in order to report an empty list (instead of a not-found error) when
// a creator has no places.
func WithEmptyCreatorListing() Option {
	return func(uc *UseCase) error {
		if uc.allowEmptyListing {
			return errors.New("empty creator listing is already allowed")
		}
		uc.allowEmptyListing = true
		return nil
	}
}
