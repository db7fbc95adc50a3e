// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the places
// web project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db" and
// "es" sub-commands can be used for the store initialization actions.
//
//	./plweb [-c /path/of/main/config.yaml]           # start web server
//	./plweb db init-dev [-c /path/of/main/config.yaml]
//	./plweb db init-prod [-c /path/of/main/config.yaml]
//	./plweb es init [-c /path/of/main/config.yaml]
//	./plweb geocode "some address" [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/momeni/places/pkg/adapter/config"
	"github.com/momeni/places/pkg/adapter/config/cfg1"
	"github.com/momeni/places/pkg/adapter/restful/gin/routes"
	"github.com/momeni/places/pkg/core/log"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the graceful shutdown of the web server.
const shutdownTimeout = 10 * time.Second

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "plweb",
	Short: "A places directory web service",
	Long: `A places directory web service which lets users register
places (with a title, description, address, and image), resolves their
addresses to geographic coordinates, and serves them over a REST API.
Places may be kept in a PostgreSQL database, an Elasticsearch index,
or in memory (for development), as chosen by the config file.
Secrets such as the geocoder API key may be provided by environment
variables or a .env file in the working directory.`,
	RunE: startWebServer,
	Args: cobra.NoArgs,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	places, closer, err := c.NewPlacesRepo(ctx)
	if err != nil {
		return fmt.Errorf("creating places repo: %w", err)
	}
	defer func() {
		if err := closer(); err != nil {
			log.Warn(ctx, "closing places repo", log.Err("err", err))
		}
	}()
	g, err := c.NewGeocoder()
	if err != nil {
		return fmt.Errorf("creating geocoder: %w", err)
	}
	uc, err := c.Usecases.Places.NewUseCase(places, g)
	if err != nil {
		return fmt.Errorf("creating places use case: %w", err)
	}
	e := c.NewEngine(slog.Default())
	routes.Register(e, uc)

	srv := &http.Server{Addr: c.Gin.Address, Handler: e}
	errCh := make(chan error, 1)
	go func() {
		log.Info(
			ctx, "starting web server",
			slog.String("address", c.Gin.Address),
			slog.String("store", c.Store.Backend),
			slog.String("geocoder", c.Geocoder.Provider),
		)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err = <-errCh:
		return fmt.Errorf("running web server: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down web server")
	ctx2, cancel := context.WithTimeout(
		context.Background(), shutdownTimeout,
	)
	defer cancel()
	if err = srv.Shutdown(ctx2); err != nil {
		return fmt.Errorf("shutting down web server: %w", err)
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running web server: %w", err)
	}
	return nil
}

// loadConfig loads the configuration file and installs its logger
// as the default slog logger.
func loadConfig() (*cfg1.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(c.NewLogger(os.Stderr))
	return c, nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv, fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// loadDotEnv loads the .env file (if any) into the environment, so
// it may provide the CONFIG_FILE and secret overrides. Variables which
// are set already are not overwritten.
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env file: %v\n", err)
	}
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
