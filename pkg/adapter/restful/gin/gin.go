// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin adapts the gin-gonic framework, so REST resources may be
// served. Requests to unknown routes are answered with 404 and the
// common {"message": ...} failure body.
package gin

import (
	"log/slog"
	"net/http"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"github.com/momeni/places/pkg/adapter/restful/gin/serdser"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New instantiates a gin Engine which uses the given middlewares and
// answers unknown routes with 404.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	e.NoRoute(func(c *gin.Context) {
		serdser.Message(c, http.StatusNotFound, serdser.MsgRouteNotFound)
	})
	return e
}

// Logger returns a middleware which logs each request using l.
func Logger(l *slog.Logger) HandlerFunc {
	return logger.New(l)
}

// Recovery returns a middleware which recovers from panics, logs them
// using l, and answers with 500.
func Recovery(l *slog.Logger) HandlerFunc {
	return recovery.New(l)
}
