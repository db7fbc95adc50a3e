// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/momeni/places/pkg/core/cerr"
	"github.com/momeni/places/pkg/core/geo"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("no such place")
	for _, tc := range []struct {
		name   string
		err    error
		kind   cerr.Kind
		status int
	}{
		{"validation", cerr.Validation(base), cerr.KindValidation, http.StatusBadRequest},
		{"not found", cerr.NotFound(base), cerr.KindNotFound, http.StatusNotFound},
		{"geocoding", cerr.Geocoding(base), cerr.KindGeocoding, 500},
		{"unavailable", cerr.StoreUnavailable(base), cerr.KindStoreUnavailable, 500},
		{"persistence", cerr.Persistence(base), cerr.KindPersistence, 500},
	} {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tc.err)
			assert.Equal(t, tc.kind, cerr.KindOf(wrapped))
			var ce *cerr.Error
			if assert.ErrorAs(t, wrapped, &ce) {
				assert.Equal(t, tc.status, ce.HTTPStatusCode)
				assert.Equal(t, "no such place", ce.Message())
			}
			assert.ErrorIs(t, wrapped, base)
		})
	}
	assert.Equal(t, cerr.KindUnknown, cerr.KindOf(base))
	assert.Equal(t, cerr.KindUnknown, cerr.KindOf(nil))
}

func TestGeocodingStatus(t *testing.T) {
	err := cerr.Geocoding(fmt.Errorf("resolving %q: %w", "nowhere", geo.ErrUnresolvableAddress))
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatusCode)
	err = cerr.Geocoding(fmt.Errorf("calling provider: %w", geo.ErrNetworkFailure))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatusCode)
	assert.ErrorIs(t, err, geo.ErrNetworkFailure)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not-found", cerr.KindNotFound.String())
	assert.Equal(t, "kind(42)", cerr.Kind(42).String())
}
