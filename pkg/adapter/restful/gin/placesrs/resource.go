// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesrs realizes the places resource, allowing the places
// REST APIs to be accepted and delegated to the places use case.
package placesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/places/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/places/pkg/core/usecase/placesuc"
)

type resource struct {
	places *placesuc.UseCase
}

// Register instantiates a resource adapting the places use case
// instance with the relevant REST APIs including:
//  1. GET request to /places/:pid in order to fetch a place,
//  2. GET request to /places/user/:uid in order to list the places
//     of a creator,
//  3. POST request to /places in order to create a place,
//  4. PATCH request to /places/:pid in order to change the title and
//     description of a place,
//  5. DELETE request to /places/:pid in order to delete a place.
//
// These paths are relative to the r router group.
func Register(r *gin.RouterGroup, places *placesuc.UseCase) {
	rs := &resource{places: places}
	r.GET("places/:pid", rs.GetPlace)
	r.GET("places/user/:uid", rs.GetPlacesByCreator)
	r.POST("places", rs.CreatePlace)
	r.PATCH("places/:pid", rs.UpdatePlace)
	r.DELETE("places/:pid", rs.DeletePlace)
}

func (rs *resource) GetPlace(c *gin.Context) {
	pid, ok := rs.DserPlaceID(c)
	if !ok {
		return
	}
	p, err := rs.places.Place(c, pid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"place": SerPlace(p)})
}

func (rs *resource) GetPlacesByCreator(c *gin.Context) {
	req := rs.DserCreatorReq(c)
	if req == nil {
		return
	}
	pp, err := rs.places.PlacesByCreator(c, req.Creator)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": SerPlaces(pp)})
}

func (rs *resource) CreatePlace(c *gin.Context) {
	d := rs.DserCreatePlaceReq(c)
	if d == nil {
		return
	}
	p, err := rs.places.Create(c, *d)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"place": SerPlace(p)})
}

func (rs *resource) UpdatePlace(c *gin.Context) {
	pid, ok := rs.DserPlaceID(c)
	if !ok {
		return
	}
	req := rs.DserUpdatePlaceReq(c)
	if req == nil {
		return
	}
	p, err := rs.places.Update(c, pid, req.Title, req.Description)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"place": SerPlace(p)})
}

func (rs *resource) DeletePlace(c *gin.Context) {
	pid, ok := rs.DserPlaceID(c)
	if !ok {
		return
	}
	if err := rs.places.Delete(c, pid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Message(c, http.StatusOK, "Deleted place.")
}
