// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package google

import (
	"net/url"
	"strings"
)

func redact(err error, apiKey string) string {
	msg := err.Error()
	for _, k := range []string{apiKey, url.QueryEscape(apiKey)} {
		msg = strings.ReplaceAll(msg, k, "REDACTED")
	}
	return msg
}
