// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by all resource packages. Failures are
// always rendered as a JSON object with a message field. Binding
// failures may also carry a fields object which maps each invalid
// field name to its error messages.
package serdser

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/places/pkg/core/cerr"
	"github.com/momeni/places/pkg/core/log"
)

// Messages which are shown instead of the internal error details for
// the server-side failures.
const (
	MsgUnknown          = "An unknown error occurred!"
	MsgInvalidInputs    = "Invalid inputs passed, please check your data."
	MsgGeocoding        = "Geocoding service is unavailable, please try again later."
	MsgStoreUnavailable = "Fetching places failed, please try again later."
	MsgPersistence      = "Saving the place failed, please try again."
	MsgRouteNotFound    = "The requested URL was not found on this server."
)

// Bind deserializes the request into req using the b binding and
// validates it. If binding fails, a 400 response is written and false
// is returned, so caller may return immediately.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	return bindErr(c, c.ShouldBindWith(req, b))
}

// BindURI deserializes the path params into req (using its uri tags)
// and validates it. Failures are answered like Bind failures.
func BindURI(c *gin.Context, req any) bool {
	return bindErr(c, c.ShouldBindUri(req))
}

func bindErr(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case nil:
		return true
	case *validator.InvalidValidationError:
		log.Error(c, "invalid validation", log.Err("err", err))
		Message(c, http.StatusInternalServerError, MsgUnknown)
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgInvalidInputs,
			"fields":  nameToErrs,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"message": MsgInvalidInputs,
			"fields": map[string][]string{
				"body": {err.Error()},
			},
		})
	}
	return false
}

// AddErr appends msgs to the name entry of the errs map, allocating
// the map if it is nil.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

// Message writes a {"message": msg} response with the status code.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// SerErr writes err as a failure response. Client-side failures show
// their own message, while server-side failures are logged and
// replaced by a fixed message for their kind.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if !errors.As(err, &ce) {
		log.Error(c, "unexpected error", log.Err("err", err))
		Message(c, http.StatusInternalServerError, MsgUnknown)
		return
	}
	if ce.HTTPStatusCode < http.StatusInternalServerError {
		Message(c, ce.HTTPStatusCode, capitalize(ce.Message()))
		return
	}
	log.Error(
		c, "request failed",
		log.Err("err", err), slog.String("kind", ce.Kind.String()),
	)
	msg := MsgUnknown
	switch ce.Kind {
	case cerr.KindGeocoding:
		msg = MsgGeocoding
	case cerr.KindStoreUnavailable:
		msg = MsgStoreUnavailable
	case cerr.KindPersistence:
		msg = MsgPersistence
	}
	Message(c, ce.HTTPStatusCode, msg)
}

// capitalize turns an error string into a sentence.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		s = string(s[0]-'a'+'A') + s[1:]
	}
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
