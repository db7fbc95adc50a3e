// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/places/pkg/adapter/config/settings"
	elasticrp "github.com/momeni/places/pkg/adapter/db/elastic/placesrp"
	memoryrp "github.com/momeni/places/pkg/adapter/db/memory/placesrp"
	pgrp "github.com/momeni/places/pkg/adapter/db/postgres/placesrp"
	"github.com/momeni/places/pkg/core/log"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
)

// Supported values of the store.backend setting.
const (
	BackendPostgres = "postgres"
	BackendElastic  = "elastic"
	BackendMemory   = "memory"
)

// Boundary values of the elastic.max-results setting.
const (
	minMaxResults = 1
	maxMaxResults = 10000 // default index.max_result_window
)

// Store selects the backend which keeps the places.
type Store struct {
	Backend string

	// Seed asks the memory backend to start with the development
	// places. Other backends are seeded by the db init-dev command.
	Seed *bool
}

// Elastic contains the Elasticsearch connection settings.
type Elastic struct {
	URL        string
	Index      string
	Sniff      *bool
	MaxResults *int `yaml:"max-results"`
}

// ValidateAndNormalize checks the backend name, defaulting to the
// postgres backend.
func (s *Store) ValidateAndNormalize() error {
	switch s.Backend {
	case "":
		s.Backend = BackendPostgres
	case BackendPostgres, BackendElastic, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend: %q", s.Backend)
	}
	settings.Nil2Default(&s.Seed, false)
	return nil
}

// ValidateAndNormalize fills the default Elasticsearch settings and
// clamps the max-results into its acceptable range.
func (e *Elastic) ValidateAndNormalize() error {
	if e.URL == "" {
		e.URL = "http://127.0.0.1:9200"
	}
	if e.Index == "" {
		e.Index = "places"
	}
	settings.Nil2Default(&e.Sniff, false)
	settings.Nil2Default(&e.MaxResults, elasticrp.DefaultMaxResults)
	minb, maxb := minMaxResults, maxMaxResults
	if err := settings.VerifyRange(&e.MaxResults, &minb, &maxb); err != nil {
		log.Warn(
			context.Background(), "elastic.max-results was clamped",
			log.Err("err", err), slog.Int("max-results", *e.MaxResults),
		)
	}
	return nil
}

// NewElasticRepo creates an Elasticsearch client and returns a places
// repository over its configured index.
func (c *Config) NewElasticRepo() (*elasticrp.Repo, error) {
	e := c.Elastic
	client, err := elasticrp.NewClient(e.URL, *e.Sniff)
	if err != nil {
		return nil, fmt.Errorf("elasticrp.NewClient(%q): %w", e.URL, err)
	}
	return elasticrp.New(client, e.Index, *e.MaxResults), nil
}

// NewPlacesRepo instantiates the configured places repository.
// The returned closer releases its resources and must be called when
// the repository is not needed anymore.
func (c *Config) NewPlacesRepo(
	ctx context.Context,
) (places repo.Places, closer func() error, err error) {
	switch c.Store.Backend {
	case BackendPostgres:
		p, err := c.ConnectionPool(ctx, repo.NormalRole)
		if err != nil {
			return nil, nil, fmt.Errorf("creating pool: %w", err)
		}
		return pgrp.New(p), p.Close, nil
	case BackendElastic:
		r, err := c.NewElasticRepo()
		if err != nil {
			return nil, nil, err
		}
		if err = r.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("checking places index: %w", err)
		}
		return r, noOpCloser, nil
	case BackendMemory:
		r := memoryrp.New()
		if *c.Store.Seed {
			pp := model.DevPlaces(c.Usecases.Places.DevImage())
			if err := r.Seed(ctx, pp); err != nil {
				return nil, nil, fmt.Errorf("seeding: %w", err)
			}
		}
		return r, noOpCloser, nil
	default:
		return nil, nil, fmt.Errorf(
			"unknown store backend: %q", c.Store.Backend,
		)
	}
}

func noOpCloser() error {
	return nil
}
