// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrp_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/places/internal/test/dbcontainer"
	"github.com/momeni/places/pkg/adapter/db/postgres"
	"github.com/momeni/places/pkg/adapter/db/postgres/placesrp"
	"github.com/momeni/places/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var _ repo.Places = (*placesrp.Repo)(nil)

type PlacesRepoTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool
	Repo *placesrp.Repo
}

func TestPlacesRepoTestSuite(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return schemarp.CreatePlacesTable(ctx, c.(*postgres.Conn))
	})
	require.NoError(t, err, "creating places table")
	suite.Run(t, &PlacesRepoTestSuite{
		Ctx:  ctx,
		Pool: pool,
		Repo: placesrp.New(pool),
	})
}

func (prts *PlacesRepoTestSuite) SetupTest() {
	err := prts.Pool.Conn(
		prts.Ctx, func(ctx context.Context, c repo.Conn) error {
			_, err := c.Exec(ctx, "DELETE FROM places")
			return err
		},
	)
	prts.Require().NoError(err, "cleaning places table")
}

func (prts *PlacesRepoTestSuite) TestInsertAndFind() {
	pp := model.DevPlaces("https://example.com/a.png")
	for i := range pp {
		id, err := prts.Repo.Insert(prts.Ctx, &pp[i])
		prts.Require().NoError(err)
		prts.Equal(id, pp[i].ID)
		prts.NotEqual(uuid.Nil, id)
	}
	for _, p := range pp {
		found, err := prts.Repo.FindByID(prts.Ctx, p.ID)
		prts.Require().NoError(err)
		prts.Equal(p.Title, found.Title)
		prts.Equal(p.Address, found.Address)
		prts.InDelta(p.Location.Lat, found.Location.Lat, 1e-9)
		prts.InDelta(p.Location.Lng, found.Location.Lng, 1e-9)
		prts.Equal(p.Creator, found.Creator)
		prts.Equal(p.Image, found.Image)
	}
	_, err := prts.Repo.FindByID(prts.Ctx, uuid.New())
	prts.ErrorIs(err, repo.ErrNotFound)
}

func (prts *PlacesRepoTestSuite) TestFindByCreator() {
	for _, title := range []string{"A", "B"} {
		p := &model.Place{Title: title, Creator: "u1", Address: "x"}
		_, err := prts.Repo.Insert(prts.Ctx, p)
		prts.Require().NoError(err)
	}
	other := &model.Place{Title: "C", Creator: "u2", Address: "y"}
	_, err := prts.Repo.Insert(prts.Ctx, other)
	prts.Require().NoError(err)

	pp, err := prts.Repo.FindByCreator(prts.Ctx, "u1")
	prts.Require().NoError(err)
	prts.Len(pp, 2)
	pp, err = prts.Repo.FindByCreator(prts.Ctx, "nobody")
	prts.Require().NoError(err)
	prts.Empty(pp)
}

func (prts *PlacesRepoTestSuite) TestSaveAndDelete() {
	p := &model.Place{
		Title: "Old", Description: "d", Address: "x", Creator: "u1",
		Image: "https://example.com/a.png",
	}
	_, err := prts.Repo.Insert(prts.Ctx, p)
	prts.Require().NoError(err)
	p.Title, p.Description = "New", ""
	prts.Require().NoError(prts.Repo.Save(prts.Ctx, p))
	found, err := prts.Repo.FindByID(prts.Ctx, p.ID)
	prts.Require().NoError(err)
	prts.Equal("New", found.Title)
	prts.Empty(found.Description)

	prts.Require().NoError(prts.Repo.Delete(prts.Ctx, p.ID))
	prts.ErrorIs(prts.Repo.Delete(prts.Ctx, p.ID), repo.ErrNotFound)
	prts.ErrorIs(prts.Repo.Save(prts.Ctx, p), repo.ErrNotFound)
	_, err = prts.Repo.FindByID(prts.Ctx, p.ID)
	prts.ErrorIs(err, repo.ErrNotFound)
}
