// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the relay has no
// listen address, which leaves the push transport nothing to deliver to.
var errNoHandlersAreCreated = errors.New("no handlers are created")
