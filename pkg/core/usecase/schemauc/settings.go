// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemauc

import (
	"context"

	"github.com/momeni/places/pkg/core/repo"
)

// Settings represents the database-related settings which should be
// provided by a configuration file, so an empty database may be
// initialized.
type Settings interface {
	// ConnectionPool creates a database connection pool for the `r`
	// role. The database host, port, and name are taken from this
	// Settings instance and the role password is read from a passwords
	// file in a specific passwords directory. Each non-empty and
	// non-commented line of the passwords file should conform with
	// this format:
	//
	//	host:port:dbname:role:password
	//
	// If a temporary passwords file (as created by RenewPasswords) was
	// used for establishment of a connection pool, it will be moved to
	// the main passwords file before returning.
	ConnectionPool(ctx context.Context, r repo.Role) (repo.Pool, error)

	// NewSchemaRepo instantiates a fresh Schema repository. Role
	// names may be suffixed based on the settings, so the Schema repo
	// takes the same suffix as the ConnectionPool method uses.
	NewSchemaRepo() repo.Schema

	// SchemaName returns the name of the schema which must hold the
	// places table.
	SchemaName() string

	// RenewPasswords generates new secure passwords for the given roles
	// and after recording them in a temporary file, will use the change
	// function in order to update the passwords of those roles in the
	// database too. The change function may run in a transaction which
	// is not committed yet when RenewPasswords returns, so the caller
	// must call the returned finalizer after a successful commit in
	// order to move the temporary passwords file over the main one.
	RenewPasswords(
		ctx context.Context,
		change func(
			ctx context.Context,
			roles []repo.Role,
			passwords []string,
		) error,
		roles ...repo.Role,
	) (finalizer func() error, err error)
}
