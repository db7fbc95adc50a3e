// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/momeni/places/pkg/adapter/db/postgres"
	"github.com/momeni/places/pkg/core/model"
	"github.com/momeni/places/pkg/core/repo"
)

// gPlace is the places table row. The model.Coordinate is embedded,
// so its fields are stored in the lat and lng columns.
type gPlace struct {
	PID         uuid.UUID `gorm:"primaryKey;type:uuid;column:pid"`
	Title       string
	Description string
	Address     string
	Location    model.Coordinate `gorm:"embedded"`
	Creator     string
	Image       string
}

func (gp *gPlace) TableName() string {
	return "places"
}

func (gp *gPlace) Model() *model.Place {
	return &model.Place{
		ID:          gp.PID,
		Title:       gp.Title,
		Description: gp.Description,
		Address:     gp.Address,
		Location:    gp.Location,
		Creator:     gp.Creator,
		Image:       gp.Image,
	}
}

func fromModel(p *model.Place) *gPlace {
	return &gPlace{
		PID:         p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    p.Location,
		Creator:     p.Creator,
		Image:       p.Image,
	}
}

// Insert stores p with a fresh random pid and updates p.ID.
func Insert[Q postgres.Queryer](
	ctx context.Context, q Q, p *model.Place,
) (uuid.UUID, error) {
	gp := fromModel(p)
	gp.PID = uuid.New()
	if err := q.GORM(ctx).Create(gp).Error; err != nil {
		return uuid.Nil, fmt.Errorf("insert: %w", err)
	}
	p.ID = gp.PID
	return gp.PID, nil
}

func FindByID[Q postgres.Queryer](
	ctx context.Context, q Q, id uuid.UUID,
) (*model.Place, error) {
	var gp []gPlace
	err := q.GORM(ctx).Where("pid=?", id).Limit(1).Find(&gp).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gp) == 0 {
		return nil, repo.ErrNotFound
	}
	return gp[0].Model(), nil
}

// FindByCreator queries places of creator without an ORDER BY clause,
// so rows are returned in their physical (store-native) order.
func FindByCreator[Q postgres.Queryer](
	ctx context.Context, q Q, creator string,
) ([]model.Place, error) {
	var gp []gPlace
	err := q.GORM(ctx).Where("creator=?", creator).Find(&gp).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	pp := make([]model.Place, 0, len(gp))
	for i := range gp {
		pp = append(pp, *gp[i].Model())
	}
	return pp, nil
}

// Save updates all columns of the p.ID row. Zero values (such as an
// empty image) are written too, since columns are selected explicitly.
func Save[Q postgres.Queryer](
	ctx context.Context, q Q, p *model.Place,
) error {
	gdb := q.GORM(ctx).Model(&gPlace{}).Where("pid=?", p.ID).Select(
		"title", "description", "address", "lat", "lng",
		"creator", "image",
	).Updates(fromModel(p))
	if err := gdb.Error; err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if gdb.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func Delete[Q postgres.Queryer](
	ctx context.Context, q Q, id uuid.UUID,
) error {
	gdb := q.GORM(ctx).Where("pid=?", id).Delete(&gPlace{})
	if err := gdb.Error; err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if gdb.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
