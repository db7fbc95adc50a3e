// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gogin "github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/places/pkg/adapter/db/memory/placesrp"
	"github.com/momeni/places/pkg/adapter/geocoding/static"
	"github.com/momeni/places/pkg/adapter/restful/gin"
	"github.com/momeni/places/pkg/adapter/restful/gin/placesrs"
	"github.com/momeni/places/pkg/adapter/restful/gin/routes"
	"github.com/momeni/places/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/usecase/placesuc"
	"github.com/stretchr/testify/suite"
)

const (
	centennial = "941 Progress Ave, Scarborough, ON M1G 3T8"
	ikea       = "15 Provost Dr, North York, ON M2K 2X9"
)

type GinTestSuite struct {
	suite.Suite

	Ctx   context.Context
	Store *placesrp.Repo
	Gin   *gin.Engine
}

func TestGinTestSuite(t *testing.T) {
	gogin.SetMode(gogin.TestMode)
	suite.Run(t, &GinTestSuite{Ctx: context.Background()})
}

func (gts *GinTestSuite) SetupTest() {
	gts.Store = placesrp.New()
	uc, err := placesuc.New(gts.Store, static.NewDev())
	gts.Require().NoError(err, "cannot instantiate places use case")
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	gts.Gin = gin.New(gin.Logger(l), gin.Recovery(l))
	gts.Require().NotNil(gts.Gin, "cannot instantiate Gin engine")
	routes.Register(gts.Gin, uc)
}

type placeResp struct {
	Message string          `json:"message"`
	Place   *placesrs.Place `json:"place"`
}

type placesResp struct {
	Message string            `json:"message"`
	Places  []*placesrs.Place `json:"places"`
}

type failureResp struct {
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields"`
}

func (gts *GinTestSuite) send(
	method, path string, body any, res any,
) int {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		gts.Require().NoError(err, "cannot marshal request body")
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, path, r)
	gts.Require().NoError(err, "cannot create %s request", method)
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	gts.Gin.ServeHTTP(w, req)
	gts.Require().NoError(
		json.Unmarshal(w.Body.Bytes(), res), "body is not json",
	)
	return w.Code
}

func (gts *GinTestSuite) TestLifecycle() {
	var created placeResp
	code := gts.send(http.MethodPost, "/api/places", map[string]string{
		"title":       "Centennial College",
		"description": "A school.",
		"address":     centennial,
		"creator":     "u1",
	}, &created)
	gts.Require().Equal(http.StatusCreated, code)
	p := created.Place
	gts.Require().NotNil(p)
	_, err := uuid.Parse(p.ID)
	gts.NoError(err, "id must be a UUID")
	gts.Equal(placesrs.Coordinate{Lat: 43.7852043, Lng: -79.230744}, p.Location)
	gts.Equal(placesuc.DefaultImage, p.Image)

	var fetched placeResp
	code = gts.send(http.MethodGet, "/api/places/"+p.ID, nil, &fetched)
	gts.Equal(http.StatusOK, code)
	gts.Equal(p, fetched.Place)

	var updated placeResp
	code = gts.send(http.MethodPatch, "/api/places/"+p.ID, map[string]string{
		"title": "CC", "description": "Still a school.",
	}, &updated)
	gts.Equal(http.StatusOK, code)
	gts.Equal("CC", updated.Place.Title)
	gts.Equal("Still a school.", updated.Place.Description)
	gts.Equal(p.Address, updated.Place.Address)
	gts.Equal(p.Location, updated.Place.Location)

	var deleted failureResp
	code = gts.send(http.MethodDelete, "/api/places/"+p.ID, nil, &deleted)
	gts.Equal(http.StatusOK, code)
	gts.Equal("Deleted place.", deleted.Message)

	var missing failureResp
	code = gts.send(http.MethodGet, "/api/places/"+p.ID, nil, &missing)
	gts.Equal(http.StatusNotFound, code)
	gts.NotEmpty(missing.Message)
	code = gts.send(http.MethodDelete, "/api/places/"+p.ID, nil, &missing)
	gts.Equal(http.StatusNotFound, code)
}

func (gts *GinTestSuite) TestPlacesByCreator() {
	pp := model.DevPlaces("https://example.com/a.png")
	pp[1].Creator = pp[0].Creator
	gts.Require().NoError(gts.Store.Seed(gts.Ctx, pp))

	var listed placesResp
	code := gts.send(
		http.MethodGet, "/api/places/user/"+pp[0].Creator, nil, &listed,
	)
	gts.Equal(http.StatusOK, code)
	gts.Require().Len(listed.Places, 2)
	gts.Equal(pp[0].ID.String(), listed.Places[0].ID)
	gts.Equal(pp[1].ID.String(), listed.Places[1].ID)

	var missing failureResp
	code = gts.send(http.MethodGet, "/api/places/user/nobody", nil, &missing)
	gts.Equal(http.StatusNotFound, code)
	gts.NotEmpty(missing.Message)
}

func (gts *GinTestSuite) TestBadRequest() {
	for _, tc := range []struct {
		name    string
		method  string
		path    string
		body    any
		message string
		field   string
	}{
		{
			name:    "create with empty fields",
			method:  http.MethodPost,
			path:    "/api/places",
			body:    map[string]string{"title": "T", "address": " "},
			message: "Invalid inputs passed, description, address, creator must be non-empty.",
		},
		{
			name:   "create with invalid image",
			method: http.MethodPost,
			path:   "/api/places",
			body: map[string]string{
				"title": "T", "description": "D", "address": ikea,
				"creator": "u1", "image": "not a url",
			},
			message: serdser.MsgInvalidInputs,
			field:   "Image",
		},
		{
			name:    "create without body",
			method:  http.MethodPost,
			path:    "/api/places",
			message: serdser.MsgInvalidInputs,
			field:   "body",
		},
		{
			name:    "list with too long creator id",
			method:  http.MethodGet,
			path:    "/api/places/user/" + strings.Repeat("u", 201),
			message: serdser.MsgInvalidInputs,
			field:   "Creator",
		},
		{
			name:    "update with empty title",
			method:  http.MethodPatch,
			path:    "/api/places/" + uuid.NewString(),
			body:    map[string]string{"description": "D"},
			message: "Invalid inputs passed, title must be non-empty.",
		},
	} {
		gts.Run(tc.name, func() {
			var res failureResp
			code := gts.send(tc.method, tc.path, tc.body, &res)
			gts.Equal(http.StatusBadRequest, code)
			gts.Equal(tc.message, res.Message)
			if tc.field != "" {
				gts.NotEmpty(res.Fields[tc.field], "fields: %v", res.Fields)
			}
		})
	}
	pp, err := gts.Store.FindByCreator(gts.Ctx, "u1")
	gts.NoError(err)
	gts.Empty(pp, "rejected drafts must not be stored")
}

func (gts *GinTestSuite) TestUnresolvableAddress() {
	var res failureResp
	code := gts.send(http.MethodPost, "/api/places", map[string]string{
		"title": "T", "description": "D", "address": "Nowhere 0",
		"creator": "u1",
	}, &res)
	gts.Equal(http.StatusUnprocessableEntity, code)
	gts.Contains(res.Message, "Could not find location")
}

func (gts *GinTestSuite) TestMalformedPlaceID() {
	for _, method := range []string{
		http.MethodGet, http.MethodPatch, http.MethodDelete,
	} {
		var res failureResp
		code := gts.send(method, "/api/places/not-a-uuid", nil, &res)
		gts.Equal(http.StatusNotFound, code, method)
		gts.Equal(placesrs.MsgPlaceNotFound, res.Message, method)
	}
}

func (gts *GinTestSuite) TestUnknownRoute() {
	for _, path := range []string{"/", "/api/cars", "/api/places/a/b/c"} {
		var res failureResp
		code := gts.send(http.MethodGet, path, nil, &res)
		gts.Equal(http.StatusNotFound, code, path)
		gts.Equal(serdser.MsgRouteNotFound, res.Message, path)
	}
}
