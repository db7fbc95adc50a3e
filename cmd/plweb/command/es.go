// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/places/pkg/core/log"
	"github.com/momeni/places/pkg/core/model"
	"github.com/spf13/cobra"
)

var esCmd = &cobra.Command{
	Use:   "es",
	Short: "Elasticsearch management actions",
}

var esInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the places index",
	Long: `Create the places index (as named in the elastic section of the
config file) with its mapping, unless it exists already. Existing
indices and their documents are not modified. With the dev flag, the
development places are indexed too.`,
	RunE: esInit,
	Args: cobra.NoArgs,
}

var esDev bool

func esInit(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := c.NewElasticRepo()
	if err != nil {
		return err
	}
	created, err := r.EnsureIndex(ctx)
	if err != nil {
		return fmt.Errorf("creating %q index: %w", c.Elastic.Index, err)
	}
	log.Info(
		ctx, "places index is ready",
		slog.String("index", c.Elastic.Index),
		slog.Bool("created", created),
	)
	if !esDev {
		return nil
	}
	pp := model.DevPlaces(c.Usecases.Places.DevImage())
	if err = r.Seed(ctx, pp); err != nil {
		return fmt.Errorf("indexing dev places: %w", err)
	}
	return nil
}

func init() {
	esInitCmd.Flags().BoolVar(
		&esDev, "dev", false, "index the development places too",
	)
	esCmd.AddCommand(esInitCmd)
	rootCmd.AddCommand(esCmd)
}
