// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesrp provides an Elasticsearch reification of the
// repo.Places interface. Each place is kept as one document whose _id
// is the place ID. Writes ask for a wait_for refresh, so a subsequent
// search (e.g., FindByCreator) observes them.
package placesrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
	"github.com/olivere/elastic/v7"
)

// DefaultMaxResults bounds the number of FindByCreator results
// when no other value is configured.
const DefaultMaxResults = 1000

// Repo represents a places repository over an Elasticsearch index.
type Repo struct {
	client     *elastic.Client
	index      string
	maxResults int
	now        func() time.Time
}

// New instantiates a places Repo which keeps its documents in the
// index index. A non-positive maxResults is replaced by
// DefaultMaxResults.
func New(c *elastic.Client, index string, maxResults int) *Repo {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Repo{
		client:     c,
		index:      index,
		maxResults: maxResults,
		now:        time.Now,
	}
}

// NewClient creates an Elasticsearch client for the url server.
// Sniffing is only useful for clusters whose node addresses are
// reachable from this process, so it is enabled on demand.
// Responses are decoded with the goccy/go-json package.
func NewClient(url string, sniff bool) (*elastic.Client, error) {
	c, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(sniff),
		elastic.SetHealthcheck(false),
		elastic.SetDecoder(decoder{}),
	)
	if err != nil {
		return nil, fmt.Errorf("elastic.NewClient(%q): %w", url, err)
	}
	return c, nil
}

type decoder struct{}

func (decoder) Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// EnsureIndex creates the places index with the Mapping mapping unless
// it exists. It returns true if the index was created.
func (places *Repo) EnsureIndex(ctx context.Context) (bool, error) {
	exists, err := places.client.IndexExists(places.index).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("checking %q index: %w", places.index, err)
	}
	if exists {
		return false, nil
	}
	_, err = places.client.CreateIndex(places.index).
		BodyString(Mapping).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("creating %q index: %w", places.index, err)
	}
	return true, nil
}

func (places *Repo) Insert(
	ctx context.Context, p *model.Place,
) (uuid.UUID, error) {
	id := uuid.New()
	_, err := places.client.Index().
		Index(places.index).
		Id(id.String()).
		OpType("create").
		BodyJson(fromModel(p, places.now())).
		Refresh("wait_for").
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("indexing place: %w", err)
	}
	p.ID = id
	return id, nil
}

func (places *Repo) FindByID(
	ctx context.Context, id uuid.UUID,
) (*model.Place, error) {
	res, err := places.client.Get().
		Index(places.index).
		Id(id.String()).
		Do(ctx)
	switch {
	case elastic.IsNotFound(err):
		return nil, repo.ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("getting place: %w", err)
	case !res.Found:
		return nil, repo.ErrNotFound
	}
	var d document
	if err := json.Unmarshal(res.Source, &d); err != nil {
		return nil, fmt.Errorf("decoding place %q: %w", res.Id, err)
	}
	return d.Model(id), nil
}

// FindByCreator returns the places of creator in their creation order.
// At most maxResults places are returned.
func (places *Repo) FindByCreator(
	ctx context.Context, creator string,
) ([]model.Place, error) {
	res, err := places.client.Search().
		Index(places.index).
		Query(elastic.NewTermQuery("creator", creator)).
		Sort("created", true).
		Size(places.maxResults).
		Do(ctx)
	if err != nil {
		if elastic.IsNotFound(err) {
			return []model.Place{}, nil // no index, no places
		}
		return nil, fmt.Errorf("searching places: %w", err)
	}
	pp := make([]model.Place, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		id, err := uuid.Parse(hit.Id)
		if err != nil {
			return nil, fmt.Errorf("parsing place id %q: %w", hit.Id, err)
		}
		var d document
		if err := json.Unmarshal(hit.Source, &d); err != nil {
			return nil, fmt.Errorf("decoding place %q: %w", hit.Id, err)
		}
		pp = append(pp, *d.Model(id))
	}
	return pp, nil
}

// Save updates the mutable fields of the p.ID document. The created
// field is kept, so the creation order does not change.
func (places *Repo) Save(ctx context.Context, p *model.Place) error {
	d := fromModel(p, time.Time{})
	_, err := places.client.Update().
		Index(places.index).
		Id(p.ID.String()).
		Doc(map[string]any{
			"title":       d.Title,
			"description": d.Description,
			"address":     d.Address,
			"location":    d.Location,
			"creator":     d.Creator,
			"image":       d.Image,
		}).
		Refresh("wait_for").
		Do(ctx)
	switch {
	case elastic.IsNotFound(err):
		return repo.ErrNotFound
	case err != nil:
		return fmt.Errorf("updating place: %w", err)
	}
	return nil
}

func (places *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := places.client.Delete().
		Index(places.index).
		Id(id.String()).
		Refresh("wait_for").
		Do(ctx)
	switch {
	case elastic.IsNotFound(err):
		return repo.ErrNotFound
	case err != nil:
		return fmt.Errorf("deleting place: %w", err)
	case res != nil && res.Result == "not_found":
		return repo.ErrNotFound
	}
	return nil
}

// Seed inserts the given places, assigning them fresh IDs.
func (places *Repo) Seed(ctx context.Context, pp []model.Place) error {
	for i := range pp {
		if _, err := places.Insert(ctx, &pp[i]); err != nil {
			return fmt.Errorf("inserting %q: %w", pp[i].Title, err)
		}
	}
	return nil
}

// ErrIndexMissing is returned by Ping if the places index is absent.
var ErrIndexMissing = errors.New("places index is missing")

// Ping checks that the places index exists, so a misconfigured
// server is reported before serving requests.
func (places *Repo) Ping(ctx context.Context) error {
	exists, err := places.client.IndexExists(places.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("checking %q index: %w", places.index, err)
	}
	if !exists {
		return fmt.Errorf("%q: %w", places.index, ErrIndexMissing)
	}
	return nil
}
