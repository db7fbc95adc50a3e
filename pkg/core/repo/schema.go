// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/places/pkg/core/model"
)

// Schema interface presents expectations from a repository which allows
// database schema and roles management. This repository creates schema
// and grant relevant privileges on them, so they may be filled by
// tables during an initialization or queried during other use cases.
type Schema interface {
	// Tx takes a Tx interface instance, unwraps it as required,
	// and returns a SchemaTxQueryer interface which (with access to the
	// implementation-dependent transaction object) can manage database
	// roles, change their passwords, or create the places table.
	Tx(Tx) SchemaTxQueryer
}

// SchemaTxQueryer interface lists all operations which may be taken
// with regards to database schema having an ongoing transaction.
// All of them are performed in the same transaction, so a failed
// initialization leaves no partially created schema behind.
type SchemaTxQueryer interface {
	// DropIfExists drops the `schema` schema with cascading if it
	// exists. That is, if `schema` does not exist, a nil error will be
	// returned without any change.
	//
	// Caller is responsible to pass a trusted schema name string.
	DropIfExists(ctx context.Context, schema string) error

	// CreateSchema tries to create the `schema` schema.
	// There must be no other schema with the `schema` name, otherwise,
	// this operation will fail.
	//
	// Caller is responsible to pass a trusted schema name string.
	CreateSchema(ctx context.Context, schema string) error

	// CreateRoleIfNotExists creates the `role` role if it does not
	// exist right now. Although the login option is enabled for the
	// created role, but no specific password will be set for it.
	// The ChangePasswords method may be used for setting a password.
	//
	// The `role` role name may be suffixed automatically based on
	// this schema queryer settings.
	CreateRoleIfNotExists(ctx context.Context, role Role) error

	// GrantPrivileges grants ALL privileges on the `schema` schema
	// to the `role` role, so it may create or access tables in that
	// schema and run relevant queries.
	GrantPrivileges(ctx context.Context, schema string, role Role) error

	// SetSearchPath alters the given database role and sets its default
	// search_path to the given schema name alone.
	SetSearchPath(ctx context.Context, schema string, role Role) error

	// ChangePasswords updates the passwords of the given roles
	// in the current transaction. The roles and passwords slices must
	// have the same number of entries, so they can be used in pair.
	ChangePasswords(
		ctx context.Context, roles []Role, passwords []string,
	) error

	// CreatePlacesTable creates the places table (and its index on
	// the creator column) in the current search_path schema.
	CreatePlacesTable(ctx context.Context) error

	// InsertPlaces inserts the pp places in the places table, updating
	// their ID fields with the assigned identifiers.
	InsertPlaces(ctx context.Context, pp []model.Place) error
}
