// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schema provides the database schema verifier which can be
// used for testing purposes. It checks the places table after a
// database initialization. The schema contents are only checked when
// the expected rows can be guessed unambiguously, that is, after
// initializing the database with the development suitable data.
package schema

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/momeni/places/pkg/adapter/db/postgres"
	"github.com/momeni/places/pkg/adapter/db/postgres/placesrp"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Columns lists the expected places table columns with their types,
// as reported by the information_schema.columns view.
var Columns = map[string]string{
	"pid":         "uuid",
	"title":       "text",
	"description": "text",
	"address":     "text",
	"lat":         "double precision",
	"lng":         "double precision",
	"creator":     "text",
	"image":       "text",
}

// Verifier wraps a database connection (which must be established
// with the normal role, so its search_path contains the places schema)
// and verifies the places schema and its contents.
type Verifier struct {
	c repo.Conn // database connection which is used for testing
}

// NewVerifier instantiates a Verifier struct, wrapping the `c`
// database connection.
func NewVerifier(c repo.Conn) *Verifier {
	return &Verifier{c}
}

// VerifySchema checks that the places table has the expected columns
// in the postgres.SchemaName schema. It also inserts a place in an
// uncommitted transaction, ensuring that the normal role may write
// into the places table.
// This process failures are reported using the `t` testing argument.
func (v *Verifier) VerifySchema(ctx context.Context, t *testing.T) {
	rows, err := v.c.Query(
		ctx,
		`SELECT column_name, data_type FROM information_schema.columns
WHERE table_schema=$1 AND table_name='places'`,
		postgres.SchemaName,
	)
	require.NoError(t, err, "querying places columns")
	defer rows.Close()
	cols := make(map[string]string)
	for rows.Next() {
		var name, typ string
		require.NoError(t, rows.Scan(&name, &typ), "scanning a column")
		cols[name] = typ
	}
	require.NoError(t, rows.Err(), "iterating over columns")
	assert.Equal(t, Columns, cols, "places table columns")

	errRollback := errors.New("rollback")
	err = v.c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		pgtx := tx.(*postgres.Tx)
		p := model.DevPlaces("https://example.com/p.png")[0]
		id, err := placesrp.Insert(ctx, pgtx, &p)
		if err != nil {
			return fmt.Errorf("inserting a place: %w", err)
		}
		if _, err = placesrp.FindByID(ctx, pgtx, id); err != nil {
			return fmt.Errorf("finding the inserted place: %w", err)
		}
		return errRollback
	})
	assert.ErrorIs(t, err, errRollback, "temporary insertion")
}

// VerifyDevData checks for presence of the development suitable initial
// data and marks possible issues using the `t` testing argument.
// Presence of extra rows is acceptable.
func (v *Verifier) VerifyDevData(ctx context.Context, t *testing.T) {
	c := v.c.(*postgres.Conn)
	for _, exp := range model.DevPlaces("") {
		pp, err := placesrp.FindByCreator(ctx, c, exp.Creator)
		require.NoError(t, err, "finding places of %q", exp.Creator)
		found := false
		for _, p := range pp {
			if p.Title == exp.Title && p.Address == exp.Address {
				assert.Equal(t, exp.Location, p.Location, p.Title)
				assert.NotEmpty(t, p.Image, p.Title)
				found = true
			}
		}
		assert.True(t, found, "dev place %q is missing", exp.Title)
	}
}

// VerifyProdData checks that no place exists after a production
// initialization, because no initial data is required in production.
func (v *Verifier) VerifyProdData(ctx context.Context, t *testing.T) {
	rows, err := v.c.Query(ctx, "SELECT count(*) FROM places")
	require.NoError(t, err, "counting places")
	defer rows.Close()
	require.True(t, rows.Next(), "count(*) returns one row")
	var n int64
	require.NoError(t, rows.Scan(&n), "scanning count")
	assert.Zero(t, n, "production database must have no places")
}
