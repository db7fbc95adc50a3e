// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// registration of them on a gin-gonic engine.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/momeni/places/pkg/adapter/restful/gin/placesrs"
	"github.com/momeni/places/pkg/core/usecase/placesuc"
)

// Prefix is the path prefix of all REST APIs.
const Prefix = "/api"

// Register registers the places resource on the e gin-gonic engine,
// under the Prefix path. Instantiation of the store, geocoder, and use
// case is delegated to the configuration settings, so Register only
// receives the ready places use case.
func Register(e *gin.Engine, places *placesuc.UseCase) {
	r := e.Group(Prefix)
	placesrs.Register(r, places)
}
