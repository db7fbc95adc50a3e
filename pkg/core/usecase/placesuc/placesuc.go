// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesuc contains the places UseCase which supports the
// places directory use cases. Currently, five uses cases are supported:
//  1. Fetching a place by its ID,
//  2. Listing places of a creator,
//  3. Creating a place (geocoding its address),
//  4. Updating title and description of a place,
//  5. Deleting a place.
//
// All failures are reported as *cerr.Error instances, so the adapters
// may choose their response status codes uniformly.
package placesuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/momeni/places/pkg/core/cerr"
	"github.com/momeni/places/pkg/core/geo"
	"github.com/momeni/places/pkg/core/log"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
)

// DefaultImage is the image URL which is stored for places which are
// created without an image, unless WithDefaultImage overrides it.
const DefaultImage = "https://placehold.co/600x400?text=Place"

// UseCase represents a places use case. It holds the places store and
// the geocoder, in addition to the places use case specific settings.
// It keeps no other state between calls, so it may be used by many
// concurrent requests.
type UseCase struct {
	places   repo.Places
	geocoder geo.Geocoder

	defaultImage      string
	allowEmptyListing bool
}

// New instantiates a places use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	places repo.Places, g geo.Geocoder, opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{places: places, geocoder: g}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.defaultImage == "" {
		uc.defaultImage = DefaultImage
	}
	return uc, nil
}

// Place fetches the pid place. A missing place is reported as a
// not-found error, while store failures are reported as a
// store-unavailable error.
func (places *UseCase) Place(
	ctx context.Context, pid uuid.UUID,
) (*model.Place, error) {
	return places.find(ctx, pid)
}

// PlacesByCreator lists all places which were created by the creator
// user, in the store-native order. An empty list is reported as a
// not-found error, unless WithEmptyCreatorListing option was used.
func (places *UseCase) PlacesByCreator(
	ctx context.Context, creator string,
) ([]model.Place, error) {
	if strings.TrimSpace(creator) == "" {
		return nil, cerr.Validation(errors.New("creator must be non-empty"))
	}
	pp, err := places.places.FindByCreator(ctx, creator)
	if err != nil {
		log.Warn(
			ctx, "listing places of creator failed",
			slog.String("creator", creator), log.Err("err", err),
		)
		return nil, cerr.StoreUnavailable(
			fmt.Errorf("fetching places of %q: %w", creator, err),
		)
	}
	if len(pp) == 0 && !places.allowEmptyListing {
		return nil, cerr.NotFound(errors.New(
			"could not find places for the provided user id",
		))
	}
	return pp, nil
}

// Create validates the d draft, resolves its address to a location,
// and stores it as a new place. Validation takes place before any
// geocoding and geocoding takes place before any write, so a rejected
// draft never reaches the geocoder and a place is never stored without
// a resolved location.
// The created place, including its assigned ID, is returned.
func (places *UseCase) Create(
	ctx context.Context, d model.PlaceDraft,
) (*model.Place, error) {
	err := requireText(
		"title", d.Title,
		"description", d.Description,
		"address", d.Address,
		"creator", d.Creator,
	)
	if err != nil {
		return nil, cerr.Validation(err)
	}
	loc, err := places.geocoder.Resolve(ctx, d.Address)
	if err != nil {
		log.Info(
			ctx, "geocoding failed",
			slog.String("address", d.Address), log.Err("err", err),
		)
		return nil, cerr.Geocoding(err)
	}
	p := &model.Place{
		Title:       d.Title,
		Description: d.Description,
		Address:     d.Address,
		Location:    loc,
		Creator:     d.Creator,
		Image:       d.Image,
	}
	if strings.TrimSpace(p.Image) == "" {
		p.Image = places.defaultImage
	}
	if _, err = places.places.Insert(ctx, p); err != nil {
		log.Error(
			ctx, "inserting place failed",
			log.Valuer("place", p), log.Err("err", err),
		)
		return nil, cerr.Persistence(
			fmt.Errorf("creating place failed, please try again: %w", err),
		)
	}
	log.Info(ctx, "place is created", log.Valuer("place", p))
	return p, nil
}

// Update changes the title and description of the pid place and
// returns the updated place. Other fields are left untouched; in
// particular, the location is not recomputed.
func (places *UseCase) Update(
	ctx context.Context, pid uuid.UUID, title, description string,
) (*model.Place, error) {
	err := requireText("title", title, "description", description)
	if err != nil {
		return nil, cerr.Validation(err)
	}
	p, err := places.find(ctx, pid)
	if err != nil {
		return nil, err
	}
	p.Title = title
	p.Description = description
	switch err = places.places.Save(ctx, p); {
	case errors.Is(err, repo.ErrNotFound):
		return nil, notFound(pid)
	case err != nil:
		log.Error(
			ctx, "saving place failed",
			log.Valuer("place", p), log.Err("err", err),
		)
		return nil, cerr.Persistence(
			fmt.Errorf("could not update place: %w", err),
		)
	}
	log.Info(ctx, "place is updated", log.Valuer("place", p))
	return p, nil
}

// Delete removes the pid place. Deleting a missing place (including a
// place which was deleted before) is reported as a not-found error.
func (places *UseCase) Delete(ctx context.Context, pid uuid.UUID) error {
	if _, err := places.find(ctx, pid); err != nil {
		return err
	}
	switch err := places.places.Delete(ctx, pid); {
	case errors.Is(err, repo.ErrNotFound):
		return notFound(pid)
	case err != nil:
		log.Error(
			ctx, "deleting place failed",
			log.UUID("pid", pid), log.Err("err", err),
		)
		return cerr.Persistence(
			fmt.Errorf("could not delete place: %w", err),
		)
	}
	log.Info(ctx, "place is deleted", log.UUID("pid", pid))
	return nil
}

func (places *UseCase) find(
	ctx context.Context, pid uuid.UUID,
) (*model.Place, error) {
	p, err := places.places.FindByID(ctx, pid)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil, notFound(pid)
	case err != nil:
		log.Warn(
			ctx, "fetching place failed",
			log.UUID("pid", pid), log.Err("err", err),
		)
		return nil, cerr.StoreUnavailable(
			fmt.Errorf("fetching place %s: %w", pid, err),
		)
	}
	return p, nil
}

func notFound(pid uuid.UUID) *cerr.Error {
	return cerr.NotFound(fmt.Errorf(
		"could not find a place for the provided id %s", pid,
	))
}

// requireText takes name/value pairs and reports all names which
// their values are empty or only contain white spaces.
func requireText(nameValues ...string) error {
	var missing []string
	for i := 0; i+1 < len(nameValues); i += 2 {
		if strings.TrimSpace(nameValues[i+1]) == "" {
			missing = append(missing, nameValues[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf(
		"invalid inputs passed, %s must be non-empty",
		strings.Join(missing, ", "),
	)
}
