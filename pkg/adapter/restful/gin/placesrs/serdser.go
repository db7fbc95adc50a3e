// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/momeni/places/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/places/pkg/core/model"
)

// MsgPlaceNotFound is returned for malformed place ids, so they are
// indistinguishable from well-formed but missing ids.
const MsgPlaceNotFound = "Could not find a place for the provided id."

// Place is the JSON representation of a model.Place.
type Place struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Location    Coordinate `json:"location"`
	Creator     string     `json:"creator"`
	Image       string     `json:"image"`
}

// Coordinate is the JSON representation of a model.Coordinate.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func SerPlace(p *model.Place) *Place {
	return &Place{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    Coordinate{Lat: p.Location.Lat, Lng: p.Location.Lng},
		Creator:     p.Creator,
		Image:       p.Image,
	}
}

func SerPlaces(pp []model.Place) []*Place {
	ss := make([]*Place, 0, len(pp))
	for i := range pp {
		ss = append(ss, SerPlace(&pp[i]))
	}
	return ss
}

type placeIDReq struct {
	PlaceID string `uri:"pid"`
}

// DserPlaceID parses the pid path param. A malformed id is answered
// with 404 and false is returned.
func (rs *resource) DserPlaceID(c *gin.Context) (uuid.UUID, bool) {
	req := &placeIDReq{}
	if ok := serdser.BindURI(c, req); !ok {
		return uuid.Nil, false
	}
	pid, err := uuid.Parse(req.PlaceID)
	if err != nil {
		serdser.Message(c, http.StatusNotFound, MsgPlaceNotFound)
		return uuid.Nil, false
	}
	return pid, true
}

type creatorReq struct {
	Creator string `uri:"uid" binding:"max=200"`
}

func (rs *resource) DserCreatorReq(c *gin.Context) *creatorReq {
	req := &creatorReq{}
	if ok := serdser.BindURI(c, req); !ok {
		return nil
	}
	return req
}

// Fields are not marked as required, so empty values reach the use
// case which reports all of them in one validation message.
type createPlaceReq struct {
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=5000"`
	Address     string `json:"address" binding:"max=500"`
	Creator     string `json:"creator" binding:"max=200"`
	Image       string `json:"image" binding:"omitempty,url"`
}

func (rs *resource) DserCreatePlaceReq(c *gin.Context) *model.PlaceDraft {
	req := &createPlaceReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.PlaceDraft{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Creator:     req.Creator,
		Image:       req.Image,
	}
}

type updatePlaceReq struct {
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=5000"`
}

func (rs *resource) DserUpdatePlaceReq(c *gin.Context) *updatePlaceReq {
	req := &updatePlaceReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
