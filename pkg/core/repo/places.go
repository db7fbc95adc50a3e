// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/momeni/places/pkg/core/model"
)

// ErrNotFound is returned (possibly wrapped) by the Places store
// methods when the asked record is absent. All other errors indicate
// that the store could not complete the operation.
var ErrNotFound = errors.New("record not found")

// Places is the durable keyed collection of places. It is implemented
// by one adapter per backend (in-memory, PostgreSQL, Elasticsearch)
// and the places use case depends on this interface alone.
// Implementations must be safe for concurrent use. Each method affects
// at most one record and is atomic with regards to that record, while
// no atomicity is promised across multiple calls.
type Places interface {
	// Insert stores p as a new record, assigning a fresh unique ID
	// to it. The assigned ID is returned and also written to p.ID.
	Insert(ctx context.Context, p *model.Place) (uuid.UUID, error)

	// FindByID returns the record with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error)

	// FindByCreator returns all records which their Creator equals
	// with the given creator in the store-native order. An empty
	// result is not an error at this level.
	FindByCreator(ctx context.Context, creator string) (
		[]model.Place, error,
	)

	// Save overwrites the record which is identified by p.ID with
	// the p contents. It returns ErrNotFound if no such record exists,
	// so a concurrently deleted record is not resurrected.
	Save(ctx context.Context, p *model.Place) error

	// Delete removes the record with the given id, or returns
	// ErrNotFound if no such record exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
