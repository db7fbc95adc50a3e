// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram computes SCRAM-SHA-256 and SCRAM-SHA-1 password hashes
// for the PostgreSQL roles which are (re)created by the db init-dev
// and db init-prod commands. Hashing happens in this process, so the
// plaintext role passwords are never sent to the DBMS (or its logs).
package scram

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/xdg-go/scram"
)

// MinIters is the minimum accepted iteration count, as RFC 5802 asks.
const MinIters = 4096

// Mechanism is a SCRAM hasher with a fixed underlying hash function.
// It implements the pkg/core/scram.Hasher interface.
type Mechanism struct {
	hashGenerator scram.HashGeneratorFcn
	outLen        int // bytes
	name          string
}

// SHA1 returns a new Mechanism using SHA1.
func SHA1() *Mechanism {
	return &Mechanism{
		hashGenerator: scram.SHA1,
		outLen:        160 / 8,
		name:          "SCRAM-SHA-1",
	}
}

// SHA256 returns a new Mechanism using SHA256.
func SHA256() *Mechanism {
	return &Mechanism{
		hashGenerator: scram.SHA256,
		outLen:        256 / 8,
		name:          "SCRAM-SHA-256",
	}
}

// ByName returns the Mechanism which is identified by the name
// argument, case-insensitively. Accepted names are the standard
// mechanism names (e.g., SCRAM-SHA-256) and the PostgreSQL
// password_encryption values (e.g., scram-sha-256).
func ByName(name string) (*Mechanism, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SCRAM-SHA-256", "SHA256", "SHA-256":
		return SHA256(), nil
	case "SCRAM-SHA-1", "SHA1", "SHA-1":
		return SHA1(), nil
	default:
		return nil, fmt.Errorf("unsupported scram mechanism: %q", name)
	}
}

// Name returns the standard name of m mechanism.
func (m *Mechanism) Name() string {
	return m.name
}

// Hash computes a hash string in the standard SCRAM format:
//
//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
//
// The pass argument must be non-empty and is normalized by SASLprep.
// The salt must be base64 encoded, or empty in order to use a fresh
// random salt. The iters must be at least MinIters.
func (m *Mechanism) Hash(pass, salt string, iters int) (string, error) {
	switch {
	case pass == "":
		return "", errors.New("password must be non-empty")
	case iters < MinIters:
		return "", fmt.Errorf("iters (%d) is less than %d", iters, MinIters)
	}
	if salt == "" {
		saltBytes := make([]byte, m.outLen)
		if _, err := rand.Read(saltBytes); err != nil {
			return "", fmt.Errorf("creating random salt: %w", err)
		}
		salt = base64.StdEncoding.EncodeToString(saltBytes)
	}
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decoding base64 salt: %w", err)
	}
	c, err := m.hashGenerator.NewClient("plweb", pass, "")
	if err != nil {
		return "", fmt.Errorf("creating SCRAM client: %w", err)
	}
	sc := c.GetStoredCredentials(scram.KeyFactors{
		Salt:  string(saltBytes),
		Iters: iters,
	})
	return fmt.Sprintf(
		"%s$%d:%s$%s:%s",
		m.name,
		iters, salt,
		base64.StdEncoding.EncodeToString(sc.StoredKey),
		base64.StdEncoding.EncodeToString(sc.ServerKey),
	), nil
}
