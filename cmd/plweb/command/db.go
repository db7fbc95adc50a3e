// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import "github.com/spf13/cobra"

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation in a development or production environment,
the init-dev or init-prod may be used.`,
}

const initLongMessage = `The database connection information are read from
the config file. No changes will be made to the config file itself.

The places schema will be dropped (if it exists) and created again
using the admin role. The normal role will be created (if it does not
exist) and granted access to the places schema. Passwords of both
roles are renewed, so the .pgpass file in the database pass-dir must
contain the admin role password beforehand. New passwords are written
to the .pgpass.new file before being changed in the database and
that file is moved over the .pgpass file after a successful change.
If the process fails after changing passwords and before moving the
.pgpass.new file, next connection attempts will try both files.`

func init() {
	rootCmd.AddCommand(dbCmd)
}
