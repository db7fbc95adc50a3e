// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/momeni/places/pkg/adapter/db/postgres"
	"github.com/momeni/places/pkg/adapter/db/postgres/placesrp"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/momeni/places/pkg/core/scram"
)

// PasswordIters is the SCRAM iteration count for role passwords.
const PasswordIters = 15000

// DropIfExists drops the `schema` schema with cascade if it exists.
//
// Caller is responsible to pass a trusted schema name string.
func DropIfExists[Q postgres.Queryer](
	ctx context.Context, q Q, schema string,
) error {
	sn := pgx.Identifier{schema}.Sanitize()
	if _, err := q.Exec(ctx, "DROP SCHEMA IF EXISTS "+sn+" CASCADE"); err != nil {
		return fmt.Errorf("dropping schema %s: %w", sn, err)
	}
	return nil
}

// CreateSchema creates the `schema` schema which must not exist.
func CreateSchema[Q postgres.Queryer](
	ctx context.Context, q Q, schema string,
) error {
	sn := pgx.Identifier{schema}.Sanitize()
	if _, err := q.Exec(ctx, "CREATE SCHEMA "+sn); err != nil {
		return fmt.Errorf("creating schema %s: %w", sn, err)
	}
	return nil
}

// CreateRoleIfNotExists creates the `role` login role (without any
// password) unless it exists.
func CreateRoleIfNotExists[Q postgres.Queryer](
	ctx context.Context, q Q, role repo.Role,
) error {
	rows, err := q.Query(
		ctx, "SELECT 1 FROM pg_catalog.pg_roles WHERE rolname=$1",
		string(role),
	)
	if err != nil {
		return fmt.Errorf("querying pg_roles: %w", err)
	}
	exists := rows.Next()
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating pg_roles rows: %w", err)
	}
	if exists {
		return nil
	}
	rn := pgx.Identifier{string(role)}.Sanitize()
	if _, err := q.Exec(ctx, "CREATE ROLE "+rn+" WITH LOGIN"); err != nil {
		return fmt.Errorf("creating role %s: %w", rn, err)
	}
	return nil
}

// GrantPrivileges grants ALL privileges on the `schema` schema to
// the `role` role.
func GrantPrivileges[Q postgres.Queryer](
	ctx context.Context, q Q, schema string, role repo.Role,
) error {
	sn := pgx.Identifier{schema}.Sanitize()
	rn := pgx.Identifier{string(role)}.Sanitize()
	_, err := q.Exec(
		ctx, "GRANT ALL PRIVILEGES ON SCHEMA "+sn+" TO "+rn,
	)
	if err != nil {
		return fmt.Errorf("granting %s privileges to %s: %w", sn, rn, err)
	}
	return nil
}

// SetSearchPath sets the default search_path of the `role` role to
// the `schema` schema alone.
func SetSearchPath[Q postgres.Queryer](
	ctx context.Context, q Q, schema string, role repo.Role,
) error {
	sn := pgx.Identifier{schema}.Sanitize()
	rn := pgx.Identifier{string(role)}.Sanitize()
	_, err := q.Exec(ctx, "ALTER ROLE "+rn+" SET search_path TO "+sn)
	if err != nil {
		return fmt.Errorf("setting search_path of %s: %w", rn, err)
	}
	return nil
}

// ChangePasswords hashes each password with h and sets it for its
// corresponding role. Only hashes are sent to the DBMS.
func ChangePasswords[Q postgres.Queryer](
	ctx context.Context, q Q, h scram.Hasher,
	roles []repo.Role, passwords []string,
) error {
	if len(roles) != len(passwords) {
		return errors.New("roles and passwords must have the same length")
	}
	for i, role := range roles {
		hp, err := h.Hash(passwords[i], "", PasswordIters)
		if err != nil {
			return fmt.Errorf("hashing password of %q: %w", role, err)
		}
		rn := pgx.Identifier{string(role)}.Sanitize()
		// Hashes only contain printable ASCII letters without quotes.
		_, err = q.Exec(ctx, fmt.Sprintf(
			"ALTER ROLE %s WITH PASSWORD '%s'", rn, hp,
		))
		if err != nil {
			return fmt.Errorf("altering password of %s: %w", rn, err)
		}
	}
	return nil
}

// CreatePlacesTable creates the places table and its creator index in
// the first schema of the current search_path.
func CreatePlacesTable[Q postgres.Queryer](
	ctx context.Context, q Q,
) error {
	if _, err := q.Exec(ctx, `CREATE TABLE places (
    pid uuid PRIMARY KEY,
    title text NOT NULL,
    description text NOT NULL,
    address text NOT NULL,
    lat double precision NOT NULL,
    lng double precision NOT NULL,
    creator text NOT NULL CHECK (creator <> ''),
    image text NOT NULL DEFAULT ''
)`); err != nil {
		return fmt.Errorf("creating places table: %w", err)
	}
	_, err := q.Exec(ctx, "CREATE INDEX places_creator_idx ON places (creator)")
	if err != nil {
		return fmt.Errorf("creating places creator index: %w", err)
	}
	return nil
}

// InsertPlaces inserts pp places, assigning fresh IDs to them.
func InsertPlaces[Q postgres.Queryer](
	ctx context.Context, q Q, pp []model.Place,
) error {
	for i := range pp {
		if _, err := placesrp.Insert(ctx, q, &pp[i]); err != nil {
			return fmt.Errorf("inserting %q: %w", pp[i].Title, err)
		}
	}
	return nil
}
