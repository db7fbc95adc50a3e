// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scram_test

import (
	"strings"
	"testing"

	"github.com/momeni/places/pkg/adapter/hash/scram"
	corescram "github.com/momeni/places/pkg/core/scram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ corescram.Hasher = (*scram.Mechanism)(nil)

func TestHashFormat(t *testing.T) {
	salt := "c2FsdHNhbHRzYWx0" // "saltsaltsalt"
	for _, m := range []*scram.Mechanism{scram.SHA1(), scram.SHA256()} {
		h, err := m.Hash("secret", salt, 4096)
		require.NoError(t, err, m.Name())
		assert.True(t, strings.HasPrefix(h, m.Name()+"$4096:"+salt+"$"))
		keys := strings.SplitN(h, "$", 3)[2]
		assert.Len(t, strings.Split(keys, ":"), 2)

		again, err := m.Hash("secret", salt, 4096)
		require.NoError(t, err)
		assert.Equal(t, h, again, "same salt must give the same hash")
	}
}

func TestHashRandomSalt(t *testing.T) {
	m := scram.SHA256()
	h1, err := m.Hash("secret", "", 15000)
	require.NoError(t, err)
	h2, err := m.Hash("secret", "", 15000)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashRejectsBadInputs(t *testing.T) {
	m := scram.SHA256()
	_, err := m.Hash("", "", 4096)
	assert.Error(t, err)
	_, err = m.Hash("secret", "", 100)
	assert.Error(t, err)
	_, err = m.Hash("secret", "not base64!", 4096)
	assert.Error(t, err)
}

func TestByName(t *testing.T) {
	m, err := scram.ByName("scram-sha-256")
	require.NoError(t, err)
	assert.Equal(t, "SCRAM-SHA-256", m.Name())
	m, err = scram.ByName("SHA1")
	require.NoError(t, err)
	assert.Equal(t, "SCRAM-SHA-1", m.Name())
	_, err = scram.ByName("md5")
	assert.Error(t, err)
}
