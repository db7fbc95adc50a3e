// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp provides a reification of the repo.Schema interface
// making it possible to create or drop the places schema, manage the
// database roles and their passwords, and create the places table.
package schemarp

import (
	"context"

	"github.com/momeni/places/pkg/adapter/db/postgres"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/momeni/places/pkg/core/scram"
)

// Repo represents a schema management repository.
// All role names are suffixed by roleSuffix before being used in
// queries, so several deployments may share one DBMS server.
type Repo struct {
	roleSuffix repo.Role
	hasher     scram.Hasher
}

// New instantiates a schema management Repo. The h hasher is used for
// computing the role password hashes in ChangePasswords.
func New(roleSuffix repo.Role, h scram.Hasher) *Repo {
	return &Repo{roleSuffix: roleSuffix, hasher: h}
}

type txQueryer struct {
	*postgres.Tx
	schema *Repo
}

// Tx unwraps the given repo.Tx instance, expecting to find an instance
// of *postgres.Tx as created by this adapter layer. Otherwise, it will
// panic. Unwrapped transaction will be wrapped and returned as an
// instance of repo.SchemaTxQueryer interface, so it can be used in
// the use cases layer without requiring to type assert again and again.
func (schema *Repo) Tx(tx repo.Tx) repo.SchemaTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt, schema: schema}
}

func (schema *Repo) role(r repo.Role) repo.Role {
	return r + schema.roleSuffix
}

func (tq txQueryer) DropIfExists(ctx context.Context, sn string) error {
	return DropIfExists(ctx, tq.Tx, sn)
}

func (tq txQueryer) CreateSchema(ctx context.Context, sn string) error {
	return CreateSchema(ctx, tq.Tx, sn)
}

func (tq txQueryer) CreateRoleIfNotExists(
	ctx context.Context, role repo.Role,
) error {
	return CreateRoleIfNotExists(ctx, tq.Tx, tq.schema.role(role))
}

func (tq txQueryer) GrantPrivileges(
	ctx context.Context, sn string, role repo.Role,
) error {
	return GrantPrivileges(ctx, tq.Tx, sn, tq.schema.role(role))
}

func (tq txQueryer) SetSearchPath(
	ctx context.Context, sn string, role repo.Role,
) error {
	return SetSearchPath(ctx, tq.Tx, sn, tq.schema.role(role))
}

// ChangePasswords updates the passwords of the given roles in the
// current transaction. The roles and passwords slices must have the
// same number of entries, so they can be used in pair.
func (tq txQueryer) ChangePasswords(
	ctx context.Context, roles []repo.Role, passwords []string,
) error {
	suffixed := make([]repo.Role, len(roles))
	for i, r := range roles {
		suffixed[i] = tq.schema.role(r)
	}
	return ChangePasswords(
		ctx, tq.Tx, tq.schema.hasher, suffixed, passwords,
	)
}

func (tq txQueryer) CreatePlacesTable(ctx context.Context) error {
	return CreatePlacesTable(ctx, tq.Tx)
}

func (tq txQueryer) InsertPlaces(
	ctx context.Context, pp []model.Place,
) error {
	return InsertPlaces(ctx, tq.Tx, pp)
}
