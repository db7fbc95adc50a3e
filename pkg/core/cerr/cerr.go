// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr defines the core errors taxonomy. Each use case failure
// is reported as an *Error which carries a Kind, the wrapped cause, and
// the HTTP status code which an adapter should answer with. Adapters
// may use errors.As in order to find the *Error in a wrapped chain.
package cerr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/momeni/places/pkg/core/geo"
)

// Kind classifies an Error, so callers may react to a failure category
// without comparing messages or status codes.
type Kind int

// Known error kinds. The zero value is reserved for errors which are
// not created by this package.
const (
	KindUnknown Kind = iota

	KindValidation       // client input is malformed or missing
	KindNotFound         // no matching record exists
	KindGeocoding        // address could not be resolved
	KindStoreUnavailable // store could not be reached or queried
	KindPersistence      // store failed to write a record
)

var kindNames = [...]string{
	KindUnknown:          "unknown",
	KindValidation:       "validation",
	KindNotFound:         "not-found",
	KindGeocoding:        "geocoding",
	KindStoreUnavailable: "store-unavailable",
	KindPersistence:      "persistence",
}

// String returns a short name of the k kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is a classified error with an HTTP status code.
type Error struct {
	Kind           Kind
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// Message returns the human-readable description of e which may be
// shown to the end-users.
func (e *Error) Message() string {
	return e.Err.Error()
}

func Validation(err error) *Error {
	return &Error{
		Kind: KindValidation, Err: err,
		HTTPStatusCode: http.StatusBadRequest,
	}
}

func NotFound(err error) *Error {
	return &Error{
		Kind: KindNotFound, Err: err,
		HTTPStatusCode: http.StatusNotFound,
	}
}

// Geocoding wraps a geocoder failure. The status code depends on the
// failure. An unresolvable address (see geo.ErrUnresolvableAddress) is
// reported as 422, while other failures are reported as 500.
func Geocoding(err error) *Error {
	status := http.StatusInternalServerError
	if errors.Is(err, geo.ErrUnresolvableAddress) {
		status = http.StatusUnprocessableEntity
	}
	return &Error{Kind: KindGeocoding, Err: err, HTTPStatusCode: status}
}

func StoreUnavailable(err error) *Error {
	return &Error{
		Kind: KindStoreUnavailable, Err: err,
		HTTPStatusCode: http.StatusInternalServerError,
	}
}

func Persistence(err error) *Error {
	return &Error{
		Kind: KindPersistence, Err: err,
		HTTPStatusCode: http.StatusInternalServerError,
	}
}

// KindOf returns the Kind of the first *Error in the err chain.
// It returns KindUnknown if err is nil or contains no *Error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
