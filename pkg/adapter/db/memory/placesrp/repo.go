// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesrp provides an in-memory reification of the
// repo.Places interface. It keeps places in the process memory, so it
// is suitable for tests and development runs, but not for production.
// Records are kept in their insertion order, which is reported as the
// store-native order by FindByCreator.
package placesrp

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
)

// Repo represents an in-memory places repository.
// It is safe for concurrent use.
type Repo struct {
	mutex sync.RWMutex
	ids   []uuid.UUID // insertion order
	data  map[uuid.UUID]model.Place
}

// New instantiates an empty in-memory places Repo.
func New() *Repo {
	return &Repo{data: make(map[uuid.UUID]model.Place)}
}

// Insert stores a copy of p with a fresh random ID and updates p.ID.
func (r *Repo) Insert(
	_ context.Context, p *model.Place,
) (uuid.UUID, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	id := uuid.New()
	for _, found := r.data[id]; found; _, found = r.data[id] {
		id = uuid.New()
	}
	p.ID = id
	r.data[id] = *p
	r.ids = append(r.ids, id)
	return id, nil
}

// FindByID returns a copy of the id place or repo.ErrNotFound.
func (r *Repo) FindByID(
	_ context.Context, id uuid.UUID,
) (*model.Place, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	p, found := r.data[id]
	if !found {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

// FindByCreator returns copies of the creator places in their
// insertion order.
func (r *Repo) FindByCreator(
	_ context.Context, creator string,
) ([]model.Place, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var pp []model.Place
	for _, id := range r.ids {
		if p := r.data[id]; p.Creator == creator {
			pp = append(pp, p)
		}
	}
	return pp, nil
}

// Save overwrites the p.ID place with a copy of p.
func (r *Repo) Save(_ context.Context, p *model.Place) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, found := r.data[p.ID]; !found {
		return repo.ErrNotFound
	}
	r.data[p.ID] = *p
	return nil
}

// Delete removes the id place.
func (r *Repo) Delete(_ context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, found := r.data[id]; !found {
		return repo.ErrNotFound
	}
	delete(r.data, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

// Seed inserts the given places, so a development instance may start
// with some records. Assigned IDs are written back to the pp items.
func (r *Repo) Seed(ctx context.Context, pp []model.Place) error {
	for i := range pp {
		if _, err := r.Insert(ctx, &pp[i]); err != nil {
			return err
		}
	}
	return nil
}
