// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemauc provides the database initialization use case.
// It (re)creates the places schema and the normal role using the admin
// role, renews the passwords of both roles, and then creates the
// places table using the normal role. The development initialization
// also inserts a few sample places.
package schemauc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/places/pkg/core/log"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
)

// InitDBUseCase represents the database initialization use case. It may
// be used to initialize database with development or production
// suitable data as asked by the InitDev and InitProd methods.
type InitDBUseCase struct {
	settings   Settings    // target settings
	schemaRepo repo.Schema // schema management repo
	devImage   string      // image URL of the development places
}

// NewInitDB creates an InitDBUseCase instance, using the `ss` settings
// in order to find the target database connection information and
// to create the schema management repository. The devImage is used
// as the image URL of places which are inserted by InitDev.
func NewInitDB(ss Settings, devImage string) *InitDBUseCase {
	return &InitDBUseCase{
		settings:   ss,
		schemaRepo: ss.NewSchemaRepo(),
		devImage:   devImage,
	}
}

// InitProd drops the places schema (if it exists) and creates it
// again using the admin role. It also creates the normal role (if it
// does not exist), grants it privileges on the created schema, sets
// its search_path, and renews passwords of both admin and normal roles.
// These operations are performed in a single transaction. Thereafter,
// it connects using the normal role and creates the empty places table.
func (iduc *InitDBUseCase) InitProd(ctx context.Context) error {
	return iduc.initDB(ctx, nil)
}

// InitDev works like InitProd, but it also inserts the development
// places (see model.DevPlaces) in the same transaction which creates
// the places table.
func (iduc *InitDBUseCase) InitDev(ctx context.Context) error {
	return iduc.initDB(ctx, model.DevPlaces(iduc.devImage))
}

func (iduc *InitDBUseCase) initDB(
	ctx context.Context, pp []model.Place,
) error {
	if err := iduc.dropAndCreateAgain(ctx); err != nil {
		return fmt.Errorf("dropping/recreating schema: %w", err)
	}
	p, err := iduc.settings.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for normal role: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := iduc.schemaRepo.Tx(tx)
			if err := q.CreatePlacesTable(ctx); err != nil {
				return fmt.Errorf("creating places table: %w", err)
			}
			if len(pp) == 0 {
				return nil
			}
			if err := q.InsertPlaces(ctx, pp); err != nil {
				return fmt.Errorf("inserting dev places: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("normal connection: %w", err)
	}
	log.Info(
		ctx, "database is initialized",
		slog.String("schema", iduc.settings.SchemaName()),
		slog.Int("places", len(pp)),
	)
	return nil
}

func (iduc *InitDBUseCase) dropAndCreateAgain(
	ctx context.Context,
) error {
	p, err := iduc.settings.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for admin: %w", err)
	}
	defer p.Close()
	var finalizer func() error
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := iduc.schemaRepo.Tx(tx)
			sn := iduc.settings.SchemaName()
			if err := q.DropIfExists(ctx, sn); err != nil {
				return fmt.Errorf("dropping %q: %w", sn, err)
			}
			if err := q.CreateSchema(ctx, sn); err != nil {
				return fmt.Errorf("creating %q: %w", sn, err)
			}
			if err := q.CreateRoleIfNotExists(
				ctx, repo.NormalRole,
			); err != nil {
				return fmt.Errorf("creating normal role: %w", err)
			}
			if err := q.GrantPrivileges(
				ctx, sn, repo.NormalRole,
			); err != nil {
				return fmt.Errorf("granting normal role privs: %w", err)
			}
			if err := q.SetSearchPath(
				ctx, sn, repo.NormalRole,
			); err != nil {
				return fmt.Errorf(
					"setting search_path of normal role to %q: %w",
					sn, err,
				)
			}
			finalizer, err = iduc.settings.RenewPasswords(
				ctx, q.ChangePasswords, repo.AdminRole, repo.NormalRole,
			)
			if err != nil {
				return fmt.Errorf("RenewPasswords: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("admin connection: %w", err)
	}
	if err := finalizer(); err != nil {
		return fmt.Errorf("finalizing passwords renewal: %w", err)
	}
	return nil
}
