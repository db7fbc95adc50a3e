// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/places/pkg/core/usecase/schemauc"
	"github.com/spf13/cobra"
)

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data,
that is, a few sample places.
` + initLongMessage,
	RunE: initDB(true),
	Args: cobra.NoArgs,
}

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data,
that is, an empty places table.
` + initLongMessage,
	RunE: initDB(false),
	Args: cobra.NoArgs,
}

func initDB(dev bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()
		c, err := loadConfig()
		if err != nil {
			return err
		}
		iduc := schemauc.NewInitDB(c, c.Usecases.Places.DevImage())
		if dev {
			err = iduc.InitDev(ctx)
		} else {
			err = iduc.InitProd(ctx)
		}
		if err != nil {
			return fmt.Errorf("initializing DB (dev=%v): %w", dev, err)
		}
		return nil
	}
}

func init() {
	dbCmd.AddCommand(initDevCmd)
	dbCmd.AddCommand(initProdCmd)
}
