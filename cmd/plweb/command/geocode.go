// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode address",
	Short: "Resolve an address using the configured geocoder",
	Long: `Resolve an address using the configured geocoder and print its
latitude and longitude. It helps to check the geocoder settings (such as
the API key) before starting the web server.`,
	RunE: geocode,
	Args: cobra.ExactArgs(1),
}

func geocode(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := c.NewGeocoder()
	if err != nil {
		return fmt.Errorf("creating geocoder: %w", err)
	}
	loc, err := g.Resolve(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolving %q: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%f,%f\n", loc.Lat, loc.Lng)
	return nil
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}
