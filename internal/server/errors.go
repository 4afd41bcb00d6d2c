// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler   = errors.New("lookup server needs an HTTP handler")
	errNoListenAddress = errors.New("lookup server needs a listen address")
)
