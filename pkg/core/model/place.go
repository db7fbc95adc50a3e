// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by ORM
// libraries) since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication.
package model

import (
	"log/slog"

	"github.com/google/uuid"
)

// Place models a directory entry which may be persisted in a store.
// The ID is assigned by the store when a place is inserted and never
// changes afterwards. The Location is computed from the Address once,
// at creation time, and is not recomputed when a place is updated.
// Only the Title and Description fields may be changed after creation.
type Place struct {
	ID          uuid.UUID  // store assigned identifier
	Title       string     // short name of the place
	Description string     // free text description
	Address     string     // postal address, the geocoding input
	Location    Coordinate // geocoded location of the Address
	Creator     string     // identifier of the owning user
	Image       string     // URL of the place picture
}

// PlaceDraft contains the client provided fields of a place which is
// going to be created. Its Image may be left empty, so the default
// image URL may be used instead.
type PlaceDraft struct {
	Title       string
	Description string
	Address     string
	Creator     string
	Image       string
}

// LogValue implements slog.LogValuer and reports the identifying
// fields of a place. The description is omitted since it may be long.
func (p *Place) LogValue() slog.Value {
	if p == nil {
		return slog.StringValue("nil-place")
	}
	return slog.GroupValue(
		slog.String("id", p.ID.String()),
		slog.String("title", p.Title),
		slog.String("creator", p.Creator),
		slog.Any("location", p.Location),
	)
}
