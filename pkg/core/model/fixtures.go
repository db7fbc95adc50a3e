// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// DevPlaces returns a fresh slice of places which are suitable for
// filling a development database. IDs are left zero, so the store
// may assign them while inserting these records. All of them use the
// given image URL.
func DevPlaces(image string) []Place {
	pp := []Place{
		{
			Title:       "Centennial College",
			Description: "One of the best school in the GTA.",
			Address:     "941 Progress Ave, Scarborough, ON M1G 3T8",
			Location:    Coordinate{Lat: 43.7852043, Lng: -79.230744},
			Creator:     "patrick",
		},
		{
			Title:       "Walmart Supercentre",
			Description: "One of the best store in the GTA.",
			Address:     "1900 Eglinton Ave E, Scarborough, ON M1L 2L9",
			Location:    Coordinate{Lat: 43.728196, Lng: -79.3338431},
			Creator:     "edwin",
		},
		{
			Title:       "IKEA North York",
			Description: "One of the best furniture store in the GTA.",
			Address:     "15 Provost Dr, North York, ON M2K 2X9",
			Location:    Coordinate{Lat: 43.7672862, Lng: -79.373602},
			Creator:     "engracia",
		},
	}
	for i := range pp {
		pp[i].Image = image
	}
	return pp
}
