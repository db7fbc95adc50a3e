// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/momeni/places/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ExampleDuration_Marshal() {
	for _, d := range []time.Duration{
		0, 90 * time.Second, 2 * time.Hour, 2*time.Hour + 3*time.Minute,
	} {
		sd := settings.Duration(d)
		fmt.Println(*sd.Marshal())
	}
	// Output:
	// 0s
	// 1m30s
	// 2h
	// 2h3m
}

func TestDurationYAML(t *testing.T) {
	var v struct {
		Timeout *settings.Duration `yaml:"timeout"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 1m30s\n"), &v))
	require.NotNil(t, v.Timeout)
	assert.Equal(t, 90*time.Second, time.Duration(*v.Timeout))
	assert.Error(t, yaml.Unmarshal([]byte("timeout: soon\n"), &v))
}

func TestVerifyRange(t *testing.T) {
	minb, maxb := 2, 5
	var nilValue *int
	assert.Nil(t, settings.VerifyRange(&nilValue, &minb, &maxb))

	v := 1
	pv := &v
	err := settings.VerifyRange(&pv, &minb, &maxb)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, 1, err.Value)
	assert.Equal(t, 2, err.Bound)
	assert.Equal(t, "1 is less than min (2)", err.Error())
	assert.Equal(t, 2, *pv)

	v = 9
	err = settings.VerifyRange(&pv, &minb, &maxb)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, "9 is greater than max (5)", err.Error())
	assert.Equal(t, 5, *pv)

	v = 3
	assert.Nil(t, settings.VerifyRange(&pv, &minb, &maxb))
	assert.Equal(t, 3, *pv)

	err = settings.VerifyRange(&pv, &maxb, &minb)
	require.NotNil(t, err)
	assert.True(t, err.InvalidRange)
}

func TestInitializers(t *testing.T) {
	var b *bool
	settings.Nil2Zero(&b)
	require.NotNil(t, b)
	assert.False(t, *b)

	var s *string
	settings.Nil2Default(&s, "x")
	require.NotNil(t, s)
	assert.Equal(t, "x", *s)
	settings.Nil2Default(&s, "y")
	assert.Equal(t, "x", *s)
}
