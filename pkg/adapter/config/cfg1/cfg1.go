// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cfg1 makes it possible to load configuration settings with
// version 1.x.y since all minor and patch versions (which are known)
// with the same major version, can be loaded with one implementation.
package cfg1

import (
	"fmt"
	"os"

	"github.com/momeni/places/pkg/adapter/config/vers"
	"github.com/momeni/places/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// These environment variables override their corresponding settings,
// so secrets may be kept out of the configuration file (e.g., in a
// .env file).
const (
	EnvGeocoderAPIKey = "PLWEB_GEOCODER_API_KEY"
	EnvElasticURL     = "PLWEB_ELASTIC_URL"
)

// Config contains all settings which are required by different parts
// of the project following the v1.x.y format, such as adapters or
// use cases. It is preferred to implement Config with primitive fields
// or other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration can be
// versioned and kept intact while other layers can change freely.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Elastic  Elastic  // Elasticsearch connection settings
	Store    Store    // Places store backend selection
	Geocoder Geocoder // Geocoding provider settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Logging  Logging  // slog handler settings
	Usecases Usecases // Configuration settings for supported use cases

	// Vers contains the configuration file version.
	Vers vers.Config `yaml:",inline"`
}

// Load unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Extra items in the
// data will be ignored and missing items will take their default
// values. Thereafter, the environment variable overrides are applied
// and the Config is validated and normalized in order to ensure that
// provided settings are acceptable (for example the major version
// which is reported by data settings must match with number 1 which is
// the major version of this config package).
func Load(data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	c.OverrideFromEnv()
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// OverrideFromEnv replaces the secret settings by their environment
// variables, if they are set and non-empty.
func (c *Config) OverrideFromEnv() {
	if v := os.Getenv(EnvGeocoderAPIKey); v != "" {
		c.Geocoder.APIKey = v
	}
	if v := os.Getenv(EnvElasticURL); v != "" {
		c.Elastic.URL = v
	}
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Vers.Validate(Major, Minor); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	if err := c.Store.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating store settings: %w", err)
	}
	// Database settings are only needed by the postgres backend, but
	// the db commands use them regardless of the store backend.
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	if err := c.Elastic.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating elastic settings: %w", err)
	}
	if err := c.Geocoder.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating geocoder settings: %w", err)
	}
	c.Gin.Normalize()
	if err := c.Logging.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating logging settings: %w", err)
	}
	if err := c.Usecases.Places.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating places use case settings: %w", err)
	}
	return nil
}

// Version returns the semantic version of this Config struct contents.
func (c *Config) Version() model.SemVer {
	return c.Vers.Versions.Config
}
