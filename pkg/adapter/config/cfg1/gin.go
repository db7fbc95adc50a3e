// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"log/slog"

	"github.com/momeni/places/pkg/adapter/config/settings"
	"github.com/momeni/places/pkg/adapter/restful/gin"
)

// Gin contains the gin-gonic engine and HTTP server settings.
type Gin struct {
	Logger   *bool
	Recovery *bool
	Address  string
}

// Normalize enables the logger and recovery middlewares unless they
// are disabled explicitly. The server listens on :8080 by default.
func (g *Gin) Normalize() {
	settings.Nil2Default(&g.Logger, true)
	settings.Nil2Default(&g.Recovery, true)
	if g.Address == "" {
		g.Address = ":8080"
	}
}

// NewEngine instantiates a gin engine with the configured middlewares
// which log using the l logger.
func (c *Config) NewEngine(l *slog.Logger) *gin.Engine {
	var middlewares []gin.HandlerFunc
	if *c.Gin.Logger {
		middlewares = append(middlewares, gin.Logger(l))
	}
	if *c.Gin.Recovery {
		middlewares = append(middlewares, gin.Recovery(l))
	}
	return gin.New(middlewares...)
}
