// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrp

import (
	"time"

	"github.com/google/uuid"
	"github.com/momeni/places/pkg/core/model"
	"github.com/olivere/elastic/v7"
)

// Mapping is the index mapping which EnsureIndex uses. The creator is
// a keyword, so it can be matched exactly by a term query, and the
// location is a geo_point.
const Mapping = `{
  "mappings": {
    "properties": {
      "title":       {"type": "text"},
      "description": {"type": "text"},
      "address":     {"type": "text"},
      "location":    {"type": "geo_point"},
      "creator":     {"type": "keyword"},
      "image":       {"type": "keyword", "index": false},
      "created":     {"type": "date"}
    }
  }
}`

// document is the stored source of one place. Its ID is kept as the
// Elasticsearch document _id.
type document struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Location    elastic.GeoPoint `json:"location"`
	Creator     string           `json:"creator"`
	Image       string           `json:"image"`
	Created     time.Time        `json:"created"`
}

func fromModel(p *model.Place, created time.Time) *document {
	return &document{
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location: elastic.GeoPoint{
			Lat: p.Location.Lat,
			Lon: p.Location.Lng,
		},
		Creator: p.Creator,
		Image:   p.Image,
		Created: created,
	}
}

func (d *document) Model(id uuid.UUID) *model.Place {
	return &model.Place{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Address:     d.Address,
		Location: model.Coordinate{
			Lat: d.Location.Lat,
			Lng: d.Location.Lon,
		},
		Creator: d.Creator,
		Image:   d.Image,
	}
}
