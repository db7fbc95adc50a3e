// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts a GORM database (using the pgx driver) to the
// repo.Pool, repo.Conn, and repo.Tx interfaces. Repository packages,
// such as placesrp and schemarp, unwrap those interfaces and use the
// embedded *gorm.DB instances for running their queries.
package postgres

// SchemaName is the database schema which holds the places table.
// The normal role search_path is set to this schema by the database
// initialization use case.
const SchemaName = "places1"
