// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemauc_test

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/momeni/places/internal/test/dbcontainer"
	"github.com/momeni/places/internal/test/schema"
	"github.com/momeni/places/pkg/adapter/config/cfg1"
	"github.com/momeni/places/pkg/adapter/config/vers"
	"github.com/momeni/places/pkg/adapter/db/postgres"
	"github.com/momeni/places/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/places/pkg/adapter/hash/scram"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/momeni/places/pkg/core/usecase/schemauc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type InitDBTestSuite struct {
	Ctx  context.Context
	Pool *postgres.Pool
	Port int

	dbDir  string
	hasher *scram.Mechanism
}

func TestInitDBTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	u, err := url.Parse(pg.ConnectionString())
	if ok := assert.NoError(t, err, "parsing DB container URL"); !ok {
		return
	}
	p, err := strconv.Atoi(u.Port())
	if ok := assert.NoError(t, err, "parsing DB container port"); !ok {
		return
	}
	idts := &InitDBTestSuite{
		Ctx:    ctx,
		Pool:   pool,
		Port:   p,
		dbDir:  t.TempDir(),
		hasher: scram.SHA256(),
	}
	// parallel subtests are grouped, so they finish before the
	// container is shut down
	t.Run("initialization", func(t *testing.T) {
		for _, mode := range []string{"dev", "prod"} {
			mode := mode
			t.Run(mode, func(t *testing.T) {
				t.Parallel()
				idts.TestInit(t, mode)
			})
		}
	})
}

func (idts *InitDBTestSuite) TestInit(t *testing.T, mode string) {
	r := require.New(t)
	c := idts.newConfig(t, "initdb_"+mode)
	iduc := schemauc.NewInitDB(c, "https://example.com/p.png")
	// initializing twice ensures that renewed passwords are usable
	// and an existing schema is dropped
	for i := 0; i < 2; i++ {
		var err error
		if mode == "dev" {
			err = iduc.InitDev(idts.Ctx)
		} else {
			err = iduc.InitProd(idts.Ctx)
		}
		r.NoError(err, "initializing database in %s mode (#%d)", mode, i)
	}
	_, err := os.Stat(filepath.Join(c.Database.PassDir, ".pgpass.new"))
	r.True(os.IsNotExist(err), ".pgpass.new must be moved")

	p, err := c.ConnectionPool(idts.Ctx, repo.NormalRole)
	r.NoError(err, "creating connection pool")
	defer p.Close()
	err = p.Conn(idts.Ctx, func(ctx context.Context, c repo.Conn) error {
		v := schema.NewVerifier(c)
		v.VerifySchema(ctx, t)
		if mode == "dev" {
			v.VerifyDevData(ctx, t)
		} else {
			v.VerifyProdData(ctx, t)
		}
		return nil
	})
	r.NoError(err, "verifying database schema")
}

// newConfig creates an empty database and an admin role, both named
// after the name argument, and returns a validated configuration
// which refers to them.
func (idts *InitDBTestSuite) newConfig(
	t *testing.T, name string,
) *cfg1.Config {
	a := assert.New(t)
	roleSuffix := repo.Role("_" + name)
	u := repo.AdminRole + roleSuffix
	p := idts.randPass(a)
	err := idts.Pool.Conn(
		idts.Ctx, func(ctx context.Context, c repo.Conn) error {
			// The database and role creation DDL statements do not
			// support parameterized queries, nevertheless, the `name`
			// and `u` variables are trusted.
			if _, err := c.Exec(
				ctx, "CREATE DATABASE "+name,
			); err != nil {
				return fmt.Errorf("creating %q database: %w", name, err)
			}
			hp, err := idts.hasher.Hash(p, "", schemarp.PasswordIters)
			if err != nil {
				return fmt.Errorf(
					"computing scram hash of password: %w", err,
				)
			}
			if _, err := c.Exec(
				ctx,
				fmt.Sprintf(
					`CREATE ROLE %s
WITH SUPERUSER LOGIN PASSWORD '%s';
GRANT ALL PRIVILEGES ON DATABASE %s TO %[1]s`,
					u, hp, name,
				),
			); err != nil {
				return fmt.Errorf("creating %q role: %w", u, err)
			}
			return nil
		},
	)
	if !a.NoError(err, "main connection error") {
		a.FailNow("failed to get a connection with superuser role")
	}
	d := filepath.Join(idts.dbDir, name)
	err = os.Mkdir(d, 0o700)
	if !a.NoError(err, "creating %q dir", d) {
		a.FailNow("cannot create top database dir")
	}
	line := fmt.Sprintf(
		"127.0.0.1:%d:%s:%s:%s\n", idts.Port, name, u, p,
	)
	pgpass := filepath.Join(d, ".pgpass")
	err = os.WriteFile(pgpass, []byte(line), 0o600)
	if !a.NoError(err, "writing %q file", pgpass) {
		a.FailNow("cannot write .pgpass file")
	}
	c := &cfg1.Config{
		Database: cfg1.Database{
			Host:       "127.0.0.1",
			Port:       idts.Port,
			Name:       name,
			PassDir:    d,
			RoleSuffix: roleSuffix,
		},
		Vers: vers.Config{
			Versions: vers.Versions{Config: cfg1.Version},
		},
	}
	err = c.ValidateAndNormalize()
	if !a.NoError(err, "validating *cfg1.Config instance") {
		a.FailNow("invalid configuration")
	}
	return c
}

func (idts *InitDBTestSuite) randPass(a *assert.Assertions) string {
	b := make([]byte, 8)
	_, err := rand.Read(b)
	if !a.NoError(err, "generating a random password") {
		a.FailNow("cannot read random bytes")
	}
	return fmt.Sprintf("%x", b)
}
