// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

type ConnHandler func(context.Context, Conn) error

// Pool is a database connections pool. The Conn method acquires one
// connection, passes it to the handler, and releases it afterwards.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
	Close() error
}
