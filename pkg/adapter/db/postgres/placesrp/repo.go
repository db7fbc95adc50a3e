// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesrp provides a PostgreSQL reification of the
// repo.Places interface. Each method acquires one connection from the
// pool and runs a single statement on it, so each record change is
// atomic by the DBMS auto-committed transactions.
// The generic query functions (e.g., Insert) may be used with a
// *postgres.Tx too, when several statements must share a transaction.
package placesrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/places/pkg/adapter/db/postgres"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
)

// Repo represents a places repository over a connections pool.
type Repo struct {
	pool repo.Pool
}

// New instantiates a places Repo which acquires its connections from
// the p pool. The pool must be created by the postgres adapter package
// since its connections are unwrapped as *postgres.Conn instances.
func New(p repo.Pool) *Repo {
	return &Repo{pool: p}
}

func (places *Repo) conn(
	ctx context.Context, f func(ctx context.Context, c *postgres.Conn) error,
) error {
	return places.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return f(ctx, c.(*postgres.Conn))
	})
}

func (places *Repo) Insert(
	ctx context.Context, p *model.Place,
) (id uuid.UUID, err error) {
	err = places.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		id, err = Insert(ctx, c, p)
		return err
	})
	return
}

func (places *Repo) FindByID(
	ctx context.Context, id uuid.UUID,
) (p *model.Place, err error) {
	err = places.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		p, err = FindByID(ctx, c, id)
		return err
	})
	if err != nil {
		p = nil
	}
	return
}

func (places *Repo) FindByCreator(
	ctx context.Context, creator string,
) (pp []model.Place, err error) {
	err = places.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		pp, err = FindByCreator(ctx, c, creator)
		return err
	})
	return
}

func (places *Repo) Save(ctx context.Context, p *model.Place) error {
	return places.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		return Save(ctx, c, p)
	})
}

func (places *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return places.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		return Delete(ctx, c, id)
	})
}
