// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrp_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/momeni/places/pkg/adapter/db/elastic/placesrp"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

var _ repo.Places = (*placesrp.Repo)(nil)

type ElasticRepoTestSuite struct {
	suite.Suite

	Ctx    context.Context
	Fake   *fakeES
	Server *httptest.Server
	Repo   *placesrp.Repo
}

func TestElasticRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ElasticRepoTestSuite))
}

func (erts *ElasticRepoTestSuite) SetupTest() {
	erts.Ctx = context.Background()
	erts.Fake, erts.Server = newFakeES()
	c, err := placesrp.NewClient(erts.Server.URL, false)
	erts.Require().NoError(err, "creating elastic client")
	erts.Repo = placesrp.New(c, "places", 0)
	created, err := erts.Repo.EnsureIndex(erts.Ctx)
	erts.Require().NoError(err)
	erts.True(created)
}

func (erts *ElasticRepoTestSuite) TearDownTest() {
	erts.Server.Close()
}

func (erts *ElasticRepoTestSuite) TestEnsureIndexIsIdempotent() {
	created, err := erts.Repo.EnsureIndex(erts.Ctx)
	erts.Require().NoError(err)
	erts.False(created)
	erts.Contains(erts.Fake.indices["places"], `"geo_point"`)
	erts.NoError(erts.Repo.Ping(erts.Ctx))
}

func (erts *ElasticRepoTestSuite) TestPingMissingIndex() {
	c, err := placesrp.NewClient(erts.Server.URL, false)
	erts.Require().NoError(err)
	r := placesrp.New(c, "other", 10)
	erts.ErrorIs(r.Ping(erts.Ctx), placesrp.ErrIndexMissing)
}

func (erts *ElasticRepoTestSuite) TestInsertAndFind() {
	pp := model.DevPlaces("https://example.com/a.png")
	erts.Require().NoError(erts.Repo.Seed(erts.Ctx, pp))
	for _, p := range pp {
		erts.NotEqual(uuid.Nil, p.ID)
		found, err := erts.Repo.FindByID(erts.Ctx, p.ID)
		erts.Require().NoError(err)
		erts.Equal(p, *found)
	}
	_, err := erts.Repo.FindByID(erts.Ctx, uuid.New())
	erts.ErrorIs(err, repo.ErrNotFound)
}

func (erts *ElasticRepoTestSuite) TestFindByCreator() {
	var ids []uuid.UUID
	for _, title := range []string{"A", "B", "C"} {
		p := &model.Place{Title: title, Creator: "u1", Address: "x"}
		id, err := erts.Repo.Insert(erts.Ctx, p)
		erts.Require().NoError(err)
		ids = append(ids, id)
	}
	other := &model.Place{Title: "D", Creator: "u2", Address: "y"}
	_, err := erts.Repo.Insert(erts.Ctx, other)
	erts.Require().NoError(err)

	pp, err := erts.Repo.FindByCreator(erts.Ctx, "u1")
	erts.Require().NoError(err)
	erts.Require().Len(pp, 3)
	for i, p := range pp {
		erts.Equal(ids[i], p.ID)
	}
	pp, err = erts.Repo.FindByCreator(erts.Ctx, "nobody")
	erts.Require().NoError(err)
	erts.Empty(pp)
}

func (erts *ElasticRepoTestSuite) TestSaveAndDelete() {
	p := &model.Place{
		Title: "Old", Description: "d", Address: "x", Creator: "u1",
		Location: model.Coordinate{Lat: 1.5, Lng: -2.5},
	}
	_, err := erts.Repo.Insert(erts.Ctx, p)
	erts.Require().NoError(err)
	p.Title = "New"
	erts.Require().NoError(erts.Repo.Save(erts.Ctx, p))
	found, err := erts.Repo.FindByID(erts.Ctx, p.ID)
	erts.Require().NoError(err)
	erts.Equal(*p, *found)

	erts.Require().NoError(erts.Repo.Delete(erts.Ctx, p.ID))
	erts.ErrorIs(erts.Repo.Delete(erts.Ctx, p.ID), repo.ErrNotFound)
	erts.ErrorIs(erts.Repo.Save(erts.Ctx, p), repo.ErrNotFound)
	_, err = erts.Repo.FindByID(erts.Ctx, p.ID)
	erts.ErrorIs(err, repo.ErrNotFound)
}
